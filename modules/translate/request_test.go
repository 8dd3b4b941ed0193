package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{
			name: "source and target",
			req:  Request{Text: "Hello", Source: "en", Target: "es"},
		},
		{
			name: "auto detect",
			req:  Request{Text: "Hello", Target: "es"},
		},
		{
			name: "region subtag",
			req:  Request{Text: "Hello", Source: "en", Target: "zh-TW"},
		},
		{
			name:    "missing target",
			req:     Request{Text: "Hello", Source: "en"},
			wantErr: "configuration error: no target language set",
		},
		{
			name:    "missing target wins over missing source",
			req:     Request{Text: "Hello", NoAutoDetect: true},
			wantErr: "configuration error: no target language set",
		},
		{
			name:    "no source with autodetect disabled",
			req:     Request{Text: "Hello", Target: "es", NoAutoDetect: true},
			wantErr: "configuration error: no source language, autodetect disabled",
		},
		{
			name:    "malformed target",
			req:     Request{Text: "Hello", Target: "e$"},
			wantErr: `configuration error: invalid language code "e$"`,
		},
		{
			name:    "malformed source",
			req:     Request{Text: "Hello", Source: "not a tag", Target: "es"},
			wantErr: `configuration error: invalid language code "not a tag"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRequestNeedsDetection(t *testing.T) {
	assert.True(t, (&Request{Target: "es"}).NeedsDetection())
	assert.False(t, (&Request{Source: "en", Target: "es"}).NeedsDetection())
	assert.False(t, (&Request{Target: "es", NoAutoDetect: true}).NeedsDetection())
}
