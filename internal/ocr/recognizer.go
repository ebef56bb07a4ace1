// Package ocr defines how receipt images become text. Engines implement
// Recognizer; this package adds a circuit breaker, instrumentation and
// bounded batch recognition around any of them.
package ocr

import (
	"context"
	"errors"

	"github.com/mmynk/dutchie/internal/receipt"
)

// ErrUnavailable is returned while the OCR engine is considered down.
var ErrUnavailable = errors.New("ocr engine unavailable")

// Recognizer turns one image into text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (Result, error)
}

// RecognizerFunc adapts a function to Recognizer.
type RecognizerFunc func(ctx context.Context, image []byte) (Result, error)

func (f RecognizerFunc) Recognize(ctx context.Context, image []byte) (Result, error) {
	return f(ctx, image)
}

// Result is the engine's plain text plus, when available, each word with
// the center of its bounding box.
type Result struct {
	Text  string
	Words []receipt.Word
}

// Layout returns the text to feed the receipt extractor. With useWords set
// and word boxes present, lines are rebuilt from word positions; otherwise
// the engine's own line breaks are kept.
func (r Result) Layout(useWords bool, tolerance float64) string {
	if useWords && len(r.Words) > 0 {
		return receipt.ReconstructLines(r.Words, tolerance)
	}
	return r.Text
}
