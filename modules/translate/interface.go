package translate

import "context"

type Provider interface {
	// Translate returns nil without error when the backend answered with no translation.
	Translate(ctx context.Context, req *Request) (*string, error)
	Detect(ctx context.Context, text string) (string, error)
}
