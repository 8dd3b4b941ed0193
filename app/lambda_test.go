package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/candinya/translate-layer/modules/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLambda(t *testing.T) {
	disabled := false

	tests := []struct {
		name     string
		provider *fakeProvider
		request  LambdaRequest
		want     LambdaResponse
	}{
		{
			name:     "translate",
			provider: &fakeProvider{translated: strPtr("Hola")},
			request:  LambdaRequest{Text: "Hello", SourceLang: "en", TargetLang: "es"},
			want:     LambdaResponse{Translation: strPtr("Hola")},
		},
		{
			name:     "detect only",
			provider: &fakeProvider{lang: "en"},
			request:  LambdaRequest{Text: "Hello", DetectOnly: true},
			want:     LambdaResponse{Language: "en"},
		},
		{
			name:     "missing text",
			provider: &fakeProvider{},
			request:  LambdaRequest{TargetLang: "es"},
			want:     LambdaResponse{Error: "text is required"},
		},
		{
			name:     "autodetect disabled",
			provider: &fakeProvider{},
			request:  LambdaRequest{Text: "Hello", TargetLang: "es", AutoDetect: &disabled},
			want:     LambdaResponse{Error: "configuration error: no source language, autodetect disabled"},
		},
		{
			name:     "provider failure",
			provider: &fakeProvider{err: fmt.Errorf("%w: bad status code 500", translate.ErrTransport)},
			request:  LambdaRequest{Text: "Hello", SourceLang: "en", TargetLang: "es"},
			want:     LambdaResponse{Error: "transport error: bad status code 500"},
		},
		{
			name:     "no translation",
			provider: &fakeProvider{},
			request:  LambdaRequest{Text: "Hello", SourceLang: "en", TargetLang: "es"},
			want:     LambdaResponse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, tt.provider, nil)
			res, err := a.handleLambda(context.Background(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, res)
		})
	}
}

func TestHandleLambdaDefaultTarget(t *testing.T) {
	tp := &fakeProvider{translated: strPtr("Hello")}
	a := newTestApp(t, tp, nil)

	_, err := a.handleLambda(context.Background(), LambdaRequest{Text: "Hola"})
	require.NoError(t, err)
	assert.Equal(t, "en", tp.lastReq.Target)
	assert.Empty(t, tp.lastReq.Source)
}

func TestHandleLambdaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestApp(t, &fakeProvider{err: fmt.Errorf("%w: context canceled", translate.ErrTransport)}, nil)
	_, err := a.handleLambda(ctx, LambdaRequest{Text: "Hello", SourceLang: "en", TargetLang: "es"})
	assert.ErrorIs(t, err, context.Canceled)
}
