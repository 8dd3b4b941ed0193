package app

import (
	"context"

	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
)

// LambdaRequest is the invocation payload of the Lambda entry point.
type LambdaRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang,omitempty"`
	TargetLang string `json:"targetLang,omitempty"`
	AutoDetect *bool  `json:"autoDetect,omitempty"`
	DetectOnly bool   `json:"detectOnly,omitempty"`
}

// LambdaResponse carries either a result or an error message, never both.
type LambdaResponse struct {
	Translation *string `json:"translation,omitempty"`
	Language    string  `json:"language,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// handleLambda reports failures in the response body, the invocation itself
// only fails on a cancelled context.
func (a *app) handleLambda(ctx context.Context, req LambdaRequest) (*LambdaResponse, error) {
	if req.Text == "" {
		return &LambdaResponse{Error: "text is required"}, nil
	}

	if req.DetectOnly {
		lang, err := a.tp.Detect(ctx, req.Text)
		if err != nil {
			return a.lambdaError(ctx, err)
		}
		return &LambdaResponse{Language: lang}, nil
	}

	treq := &translate.Request{
		Text:   req.Text,
		Source: req.SourceLang,
		Target: req.TargetLang,
	}
	if treq.Target == "" {
		treq.Target = a.cfg.Translate.DefaultLang
	}
	if req.AutoDetect != nil {
		treq.NoAutoDetect = !*req.AutoDetect
	}

	translated, err := a.translateText(ctx, treq)
	if err != nil {
		return a.lambdaError(ctx, err)
	}

	return &LambdaResponse{Translation: translated}, nil
}

func (a *app) lambdaError(ctx context.Context, err error) (*LambdaResponse, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	a.l.Warn("lambda request failed", zap.Error(err))
	return &LambdaResponse{Error: err.Error()}, nil
}
