package portfolio

import (
	"context"
	"errors"
	"testing"

	"pharmascout/internal/model"
)

type fakeGateway struct {
	reports    []model.Report
	reportsErr error
	profile    *model.UserProfile
	profileErr error
}

func (f *fakeGateway) Reports(ctx context.Context) ([]model.Report, error) {
	return f.reports, f.reportsErr
}

func (f *fakeGateway) Profile(ctx context.Context) (*model.UserProfile, error) {
	return f.profile, f.profileErr
}

func reportWithScore(query string, score int) model.Report {
	return model.Report{
		JobID:  query + "-job",
		Query:  query,
		Scores: model.ScoreCard{OverallScore: score},
	}
}

func TestFetchReversesReportOrder(t *testing.T) {
	gw := &fakeGateway{
		reports: []model.Report{
			reportWithScore("oldest", 10),
			reportWithScore("middle", 20),
			reportWithScore("newest", 30),
		},
		profile: &model.UserProfile{FirstName: "Ada"},
	}
	view := NewAggregator(gw, nil).Fetch(context.Background())

	if len(view.Reports) != 3 {
		t.Fatalf("reports = %d", len(view.Reports))
	}
	if view.Reports[0].Query != "newest" || view.Reports[2].Query != "oldest" {
		t.Errorf("order = %q, %q, %q; want most-recent first",
			view.Reports[0].Query, view.Reports[1].Query, view.Reports[2].Query)
	}
	if view.Profile == nil || view.Profile.FirstName != "Ada" {
		t.Errorf("profile = %+v", view.Profile)
	}
}

func TestFetchReportsFailureDegradesOnlyReports(t *testing.T) {
	gw := &fakeGateway{
		reportsErr: errors.New("boom"),
		profile:    &model.UserProfile{FirstName: "Ada"},
	}
	view := NewAggregator(gw, nil).Fetch(context.Background())

	if len(view.Reports) != 0 {
		t.Errorf("reports = %+v, want empty", view.Reports)
	}
	if view.Profile == nil {
		t.Error("profile half must survive a reports failure")
	}
}

func TestFetchProfileFailureDegradesOnlyProfile(t *testing.T) {
	gw := &fakeGateway{
		reports:    []model.Report{reportWithScore("q", 50)},
		profileErr: errors.New("boom"),
	}
	view := NewAggregator(gw, nil).Fetch(context.Background())

	if view.Profile != nil {
		t.Errorf("profile = %+v, want nil", view.Profile)
	}
	if len(view.Reports) != 1 {
		t.Error("reports half must survive a profile failure")
	}
}

func TestFetchBothHalvesFailing(t *testing.T) {
	gw := &fakeGateway{
		reportsErr: errors.New("boom"),
		profileErr: errors.New("boom"),
	}
	view := NewAggregator(gw, nil).Fetch(context.Background())
	if len(view.Reports) != 0 || view.Profile != nil {
		t.Errorf("view = %+v, want empty", view)
	}
}

func TestSummarize(t *testing.T) {
	reports := []model.Report{
		reportWithScore("a", 90),
		reportWithScore("b", 60),
		reportWithScore("c", 40),
	}
	s := Summarize(reports)
	if s.TotalReports != 3 {
		t.Errorf("TotalReports = %d, want 3", s.TotalReports)
	}
	if s.HighPotentialCount != 1 {
		t.Errorf("HighPotentialCount = %d, want 1", s.HighPotentialCount)
	}
	if s.TopArea != "Metabolic" {
		t.Errorf("TopArea = %q", s.TopArea)
	}
}

func TestSummarizeBoundary(t *testing.T) {
	// 75 is not high potential; the threshold is strictly above.
	s := Summarize([]model.Report{reportWithScore("edge", 75), reportWithScore("above", 76)})
	if s.HighPotentialCount != 1 {
		t.Errorf("HighPotentialCount = %d, want 1", s.HighPotentialCount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalReports != 0 || s.HighPotentialCount != 0 || s.TopArea != "N/A" {
		t.Errorf("summary = %+v", s)
	}
}
