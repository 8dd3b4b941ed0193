package translate

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Request is a single translation call. Source may be left empty to let the
// provider detect it, unless NoAutoDetect is set.
type Request struct {
	Text         string
	Source       string
	Target       string
	NoAutoDetect bool
}

// Validate runs the checks that must pass before any remote call is made.
func (r *Request) Validate() error {
	if r.Target == "" {
		return fmt.Errorf("%w: no target language set", ErrConfiguration)
	}
	if err := checkLang(r.Target); err != nil {
		return err
	}

	if r.Source == "" {
		if r.NoAutoDetect {
			return fmt.Errorf("%w: no source language, autodetect disabled", ErrConfiguration)
		}
		return nil
	}

	return checkLang(r.Source)
}

// NeedsDetection reports whether the source language has to be detected first.
func (r *Request) NeedsDetection() bool {
	return r.Source == "" && !r.NoAutoDetect
}

// checkLang rejects codes that are not well-formed tags. Well-formed but
// unregistered subtags pass, the backend has the final word on those.
func checkLang(code string) error {
	_, err := language.Parse(code)
	if err == nil {
		return nil
	}

	var unknown language.ValueError
	if errors.As(err, &unknown) {
		return nil
	}

	return fmt.Errorf("%w: invalid language code %q: %v", ErrConfiguration, code, err)
}
