package services

import (
	"context"
	"sort"

	"recruiting-intake/domain"
)

const resultsPageSize = 100

// ResultsService merges every candidate page for a job and ranks by score.
type ResultsService struct {
	store domain.RecordStore
}

func NewResultsService(store domain.RecordStore) *ResultsService {
	return &ResultsService{store: store}
}

// ListResults returns every candidate for the job sorted by score, highest
// first. A candidate without a score ranks as zero; ties keep the store's
// order. All analysis statuses are included. When onlyDone is set, the
// listing is narrowed to analyzed candidates that carry a score (the
// behavior of earlier deployments, kept as an opt-in mode).
func (s *ResultsService) ListResults(ctx context.Context, jobID string, onlyDone bool) ([]domain.CandidateView, error) {
	if jobID == "" {
		return nil, &domain.ClientInputError{Reason: "job_id query parameter is required"}
	}

	records, err := s.store.Query(ctx, domain.CandidatesTable, domain.FormulaEq("job_id", jobID), resultsPageSize)
	if err != nil {
		return nil, err
	}

	views := make([]domain.CandidateView, 0, len(records))
	for _, rec := range records {
		view := domain.CandidateView{
			ID:                  rec.ID,
			FileName:            stringField(rec.Fields, "file_name"),
			Score:               numberField(rec.Fields, "score"),
			Decision:            stringField(rec.Fields, "decision"),
			AnalysisStatus:      stringField(rec.Fields, "analysis_status"),
			AnalysisExplanation: stringField(rec.Fields, "analysis_explanation"),
		}
		if onlyDone && (view.AnalysisStatus != domain.AnalysisDone || view.Score == nil) {
			continue
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return scoreOrZero(views[i].Score) > scoreOrZero(views[j].Score)
	})

	return views, nil
}

func stringField(fields map[string]any, key string) string {
	v, _ := fields[key].(string)
	return v
}

// numberField tolerates both float64 (JSON) and int (test fixtures).
func numberField(fields map[string]any, key string) *float64 {
	switch v := fields[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func scoreOrZero(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}
