package ocr

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RecognizeAll recognizes images concurrently, at most limit at a time,
// and returns results in input order. The first failure cancels the rest.
func RecognizeAll(ctx context.Context, r Recognizer, images [][]byte, limit int) ([]Result, error) {
	if limit < 1 {
		limit = 1
	}
	results := make([]Result, len(images))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, img := range images {
		g.Go(func() error {
			res, err := r.Recognize(gCtx, img)
			if err != nil {
				return fmt.Errorf("image %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
