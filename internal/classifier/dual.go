package classifier

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"docforensics/internal/logging"
	"docforensics/internal/port"
)

// DualClassifier runs a primary and a secondary classifier in parallel and
// returns both raw answers. The primary's answer takes precedence when the
// two are merged; if only one succeeds its answer is returned alone.
type DualClassifier struct {
	primary   port.DocumentClassifier
	secondary port.DocumentClassifier
	log       *slog.Logger
}

// NewDualClassifier creates a DualClassifier from primary and secondary classifiers.
func NewDualClassifier(primary, secondary port.DocumentClassifier) *DualClassifier {
	return &DualClassifier{
		primary:   primary,
		secondary: secondary,
		log:       logging.New("classifier.dual"),
	}
}

func (d *DualClassifier) Classify(ctx context.Context, input port.ClassifyInput) (*port.ClassifyOutput, error) {
	var (
		pOut, sOut *port.ClassifyOutput
		pErr, sErr error
	)

	// Each side records its own error so one failure does not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		pOut, pErr = d.primary.Classify(ctx, input)
		return nil
	})
	g.Go(func() error {
		sOut, sErr = d.secondary.Classify(ctx, input)
		return nil
	})
	_ = g.Wait()

	switch {
	case pErr != nil && sErr != nil:
		return nil, fmt.Errorf("both classifiers failed: primary: %w; secondary: %v", pErr, sErr)
	case pErr != nil:
		d.log.Warn("primary classifier failed, using secondary only", "error", pErr)
		return sOut, nil
	case sErr != nil:
		d.log.Warn("secondary classifier failed, using primary only", "error", sErr)
		return pOut, nil
	}

	out := *pOut
	out.SecondaryRawText = sOut.RawText
	out.SecondaryModel = sOut.ModelUsed
	return &out, nil
}
