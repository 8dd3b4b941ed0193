package google

import (
	"net/url"
	"strings"
)

type queryParam struct {
	key   string
	value string
}

func attachKey(base string, key string) string {
	return buildRequestURL(base, queryParam{"key", key})
}

// buildRequestURL appends params to base in the order given.
func buildRequestURL(base string, params ...queryParam) string {
	if len(params) == 0 {
		return base
	}

	var b strings.Builder
	b.WriteString(base)

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	for _, p := range params {
		b.WriteString(sep)
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
		sep = "&"
	}

	return b.String()
}
