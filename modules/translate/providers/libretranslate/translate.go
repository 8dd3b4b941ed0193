package libretranslate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
)

type libreTranslateRequestBody struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponseBody struct {
	TranslatedText string `json:"translatedText"`
}

type libreDetectRequestBody struct {
	Q      string `json:"q"`
	APIKey string `json:"api_key,omitempty"`
}

type libreDetectResponseBody []struct {
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

type libreErrorBody struct {
	Error string `json:"error"`
}

func (t *lt) Translate(ctx context.Context, r *translate.Request) (*string, error) {
	err := r.Validate()
	if err != nil {
		return nil, err
	}

	source := r.Source
	if r.NeedsDetection() {
		source, err = t.Detect(ctx, r.Text)
		if err != nil {
			return nil, err
		}
	}

	// Prepare request body
	reqBody := &libreTranslateRequestBody{
		Q:      r.Text,
		Source: source,
		Target: r.Target,
	}

	if t.key != nil {
		reqBody.APIKey = *t.key
	}

	t.l.Debug("translate request", zap.String("source", source), zap.String("target", r.Target))

	var resBody libreTranslateResponseBody
	err = t.post(ctx, "/translate", reqBody, &resBody)
	if err != nil {
		return nil, err
	}

	t.l.Debug("translate response", zap.Any("body", resBody))

	if resBody.TranslatedText == "" {
		return nil, nil
	}

	return &resBody.TranslatedText, nil
}

func (t *lt) Detect(ctx context.Context, text string) (string, error) {
	reqBody := &libreDetectRequestBody{
		Q: text,
	}

	if t.key != nil {
		reqBody.APIKey = *t.key
	}

	var resBody libreDetectResponseBody
	err := t.post(ctx, "/detect", reqBody, &resBody)
	if err != nil {
		return "", err
	}

	t.l.Debug("detect response", zap.Any("body", resBody))

	if len(resBody) == 0 || resBody[0].Language == "" {
		return "", fmt.Errorf("%w: could not detect language", translate.ErrDetection)
	}

	return resBody[0].Language, nil
}

func (t *lt) post(ctx context.Context, path string, reqBody any, resBody any) error {
	reqBodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request body: %v", translate.ErrTransport, err)
	}

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url+path, bytes.NewReader(reqBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", translate.ErrTransport, err)
	}

	req.Header.Set("Content-Type", "application/json")

	// Execute request
	res, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", translate.ErrTransport, err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
		var errBody libreErrorBody
		if json.Unmarshal(b, &errBody) == nil && errBody.Error != "" {
			return fmt.Errorf("%w: bad status code %d: %s", translate.ErrTransport, res.StatusCode, errBody.Error)
		}
		return fmt.Errorf("%w: bad status code %d", translate.ErrTransport, res.StatusCode)
	}

	err = json.NewDecoder(res.Body).Decode(resBody)
	if err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", translate.ErrDecode, err)
	}

	return nil
}
