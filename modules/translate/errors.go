package translate

import "errors"

var (
	// ErrConfiguration is returned before any network call when the client or request is incomplete.
	ErrConfiguration = errors.New("configuration error")
	// ErrDetection is returned when the backend answered without a usable language.
	ErrDetection = errors.New("detection error")
	// ErrTransport covers network failures and non-OK responses.
	ErrTransport = errors.New("transport error")
	// ErrDecode is returned when the response body is not the expected JSON.
	ErrDecode = errors.New("decode error")
)
