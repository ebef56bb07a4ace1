package ocr

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("ocr")

// ObserveFunc receives the outcome of one recognition: "ok", "error" or
// "unavailable".
type ObserveFunc func(result string, d time.Duration)

// Instrument wraps next with a trace span and reports each outcome to
// observe. A nil observe only traces.
func Instrument(next Recognizer, observe ObserveFunc) Recognizer {
	return RecognizerFunc(func(ctx context.Context, image []byte) (Result, error) {
		ctx, span := tracer.Start(ctx, "OCR.Recognize")
		defer span.End()
		span.SetAttributes(attribute.Int("image.bytes", len(image)))

		start := time.Now()
		res, err := next.Recognize(ctx, image)
		elapsed := time.Since(start)

		result := "ok"
		switch {
		case errors.Is(err, ErrUnavailable):
			result = "unavailable"
		case err != nil:
			result = "error"
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, result)
		} else {
			span.SetAttributes(attribute.Int("ocr.words", len(res.Words)))
		}

		if observe != nil {
			observe(result, elapsed)
		}
		return res, err
	})
}
