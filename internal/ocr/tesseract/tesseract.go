// Package tesseract implements ocr.Recognizer with the Tesseract engine.
// It needs libtesseract at build time; only the server binary imports it.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/mmynk/dutchie/internal/ocr"
	"github.com/mmynk/dutchie/internal/receipt"
)

// Recognizer runs Tesseract on receipt images.
type Recognizer struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

var _ ocr.Recognizer = (*Recognizer)(nil)

// New constructs a Tesseract-backed recognizer for the given languages.
func New(languages ...string) *Recognizer {
	return &Recognizer{languages: languages, clientFactory: gosseract.NewClient}
}

// Recognize performs OCR on one image. A fresh client is used per call, so
// Recognize is safe for concurrent use.
func (r *Recognizer) Recognize(ctx context.Context, image []byte) (ocr.Result, error) {
	if err := ctx.Err(); err != nil {
		return ocr.Result{}, err
	}

	c := r.clientFactory()
	defer c.Close()

	if len(r.languages) > 0 {
		if err := c.SetLanguage(r.languages...); err != nil {
			return ocr.Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	// Single column of text: keeps a receipt's description and price apart.
	if err := c.SetPageSegMode(gosseract.PSM_SINGLE_COLUMN); err != nil {
		return ocr.Result{}, fmt.Errorf("set page segmentation: %w", err)
	}
	if err := c.SetImageFromBytes(image); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize text: %w", err)
	}

	return ocr.Result{
		Text:  strings.TrimSpace(text),
		Words: extractWords(c),
	}, nil
}

func extractWords(c *gosseract.Client) []receipt.Word {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return nil
	}
	words := make([]receipt.Word, 0, len(boxes))
	for _, b := range boxes {
		if strings.TrimSpace(b.Word) == "" {
			continue
		}
		words = append(words, receipt.Word{
			Text: b.Word,
			X:    float64(b.Box.Min.X) + float64(b.Box.Dx())/2,
			Y:    float64(b.Box.Min.Y) + float64(b.Box.Dy())/2,
		})
	}
	return words
}
