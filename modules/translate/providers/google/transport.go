package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
)

// Transport performs a GET against url and decodes the JSON body into v.
// Implementations report failures wrapped in translate.ErrTransport or
// translate.ErrDecode.
type Transport interface {
	Get(ctx context.Context, url string, v any) error
}

type httpTransport struct {
	l *zap.Logger

	client *http.Client
}

// Error envelope returned by the API alongside non-200 statuses
type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newHTTPTransport(timeout time.Duration, randomUserAgent bool, l *zap.Logger) *httpTransport {
	var rt http.RoundTripper = http.DefaultTransport
	if randomUserAgent {
		rt = &userAgentTransport{
			next:  rt,
			faker: gofakeit.NewCrypto(),
		}
	}

	return &httpTransport{
		l: l,
		client: &http.Client{
			Timeout:   timeout,
			Transport: rt,
		},
	}
}

func (t *httpTransport) Get(ctx context.Context, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", translate.ErrTransport, unwrapURLError(err))
	}

	res, err := t.client.Do(req)
	if err != nil {
		// url.Error carries the request URL, which holds the key
		return fmt.Errorf("%w: failed to execute request: %v", translate.ErrTransport, unwrapURLError(err))
	}

	defer res.Body.Close() // Ignore errors

	if res.StatusCode != http.StatusOK {
		t.l.Debug("response status not OK", zap.Int("status", res.StatusCode))
		return statusError(res)
	}

	err = json.NewDecoder(res.Body).Decode(v)
	if err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", translate.ErrDecode, err)
	}

	return nil
}

func statusError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))

	var apiErr apiErrorBody
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("%w: bad status code %d: %s", translate.ErrTransport, res.StatusCode, apiErr.Error.Message)
	}

	return fmt.Errorf("%w: bad status code %d", translate.ErrTransport, res.StatusCode)
}

func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// userAgentTransport sets a generated User-Agent on every outgoing request.
type userAgentTransport struct {
	next  http.RoundTripper
	faker *gofakeit.Faker
}

func (u *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", u.faker.UserAgent())
	return u.next.RoundTrip(req)
}
