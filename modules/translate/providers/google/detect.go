package google

import (
	"context"
	"fmt"

	"github.com/candinya/translate-layer/modules/translate"
	"go.uber.org/zap"
)

type detection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	IsReliable bool    `json:"isReliable"`
}

type detectResponseBody struct {
	Data struct {
		Detections [][]detection `json:"detections"`
	} `json:"data"`
}

// Detect returns the most likely language of text, the first candidate of
// the first detection group.
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	requestURL := buildRequestURL(c.detectURL, queryParam{"q", text})

	c.l.Debug("detect request", zap.Int("length", len(text)))

	var resBody detectResponseBody
	err := c.transport.Get(ctx, requestURL, &resBody)
	if err != nil {
		return "", err
	}

	detections := resBody.Data.Detections
	if len(detections) == 0 || len(detections[0]) == 0 || detections[0][0].Language == "" {
		return "", fmt.Errorf("%w: could not detect language", translate.ErrDetection)
	}

	best := detections[0][0]
	c.l.Debug("detect response",
		zap.String("language", best.Language),
		zap.Float64("confidence", best.Confidence),
		zap.Bool("reliable", best.IsReliable),
	)

	return best.Language, nil
}
