// Package portfolio aggregates the user's saved reports and profile into the
// portfolio view. The two fetches are independent: either half may fail and
// only degrades its own section, never the whole view.
package portfolio

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pharmascout/internal/model"
)

// Gateway is the slice of the API client the aggregator needs.
type Gateway interface {
	Reports(ctx context.Context) ([]model.Report, error)
	Profile(ctx context.Context) (*model.UserProfile, error)
}

// View is the aggregated result. Reports is empty when that half failed;
// Profile is nil when that half failed.
type View struct {
	Reports []model.Report
	Profile *model.UserProfile
}

// Summary holds the derived portfolio statistics. Recomputed from the report
// list on every call, never cached.
type Summary struct {
	TotalReports       int
	HighPotentialCount int
	TopArea            string
}

// Aggregator fetches and summarizes the portfolio.
type Aggregator struct {
	gw     Gateway
	logger *zap.Logger
}

// NewAggregator creates an aggregator. A nil logger is replaced with a no-op
// one.
func NewAggregator(gw Gateway, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{gw: gw, logger: logger}
}

// Fetch runs the reports and profile calls concurrently and waits for both
// to settle. A failed half is logged and left empty; Fetch itself only fails
// for nothing. Reports are returned most-recently-created first (the service
// returns creation order).
func (a *Aggregator) Fetch(ctx context.Context) View {
	var view View

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reports, err := a.gw.Reports(ctx)
		if err != nil {
			a.logger.Warn("reports fetch failed", zap.Error(err))
			return nil
		}
		view.Reports = reverse(reports)
		return nil
	})
	g.Go(func() error {
		profile, err := a.gw.Profile(ctx)
		if err != nil {
			a.logger.Warn("profile fetch failed", zap.Error(err))
			return nil
		}
		view.Profile = profile
		return nil
	})
	_ = g.Wait()

	return view
}

// Summarize derives the portfolio statistics from a report list. High
// potential means an overall score strictly above 75. TopArea is still a
// placeholder derivation, matching the product's current behavior.
func Summarize(reports []model.Report) Summary {
	s := Summary{TotalReports: len(reports), TopArea: "N/A"}
	for _, r := range reports {
		if r.Scores.OverallScore > 75 {
			s.HighPotentialCount++
		}
	}
	if len(reports) > 0 {
		s.TopArea = "Metabolic"
	}
	return s
}

func reverse(reports []model.Report) []model.Report {
	out := make([]model.Report, len(reports))
	for i, r := range reports {
		out[len(reports)-1-i] = r
	}
	return out
}
