package services

import (
	"context"
	"fmt"
	"time"

	"recruiting-intake/domain"
)

// IntakeService creates job postings and candidate records.
type IntakeService struct {
	store     domain.RecordStore
	extractor domain.TextExtractor
	now       func() time.Time
}

func NewIntakeService(store domain.RecordStore, extractor domain.TextExtractor) *IntakeService {
	return &IntakeService{
		store:     store,
		extractor: extractor,
		now:       time.Now,
	}
}

// CreatedJob is what the intake returns for a new posting.
type CreatedJob struct {
	JobID      string
	AirtableID string
}

// CreateJob persists a posting and returns its generated id. The title is
// accepted from the form but deliberately not written to the store; only
// the raw description feeds the analysis workflow. Two jobs created within
// the same second collide on job_id; accepted weakness.
func (s *IntakeService) CreateJob(ctx context.Context, title, description string) (*CreatedJob, error) {
	if description == "" {
		return nil, &domain.ClientInputError{Reason: "description is required"}
	}

	jobID := fmt.Sprintf("JOB-%d", s.now().Unix())

	rec, err := s.store.Create(ctx, domain.JobsTable, map[string]any{
		"job_id":          jobID,
		"description_raw": description,
	})
	if err != nil {
		return nil, err
	}

	return &CreatedJob{JobID: jobID, AirtableID: rec.ID}, nil
}

// SubmitCandidate extracts the CV text and stores the candidate as pending.
// The job_id is not checked against the Jobs table; any string is accepted.
func (s *IntakeService) SubmitCandidate(ctx context.Context, jobID, fileName string, fileBytes []byte) (string, error) {
	if jobID == "" {
		return "", &domain.ClientInputError{Reason: "job_id is required"}
	}

	text, err := s.extractor.ExtractText(fileBytes)
	if err != nil {
		return "", err
	}

	rec, err := s.store.Create(ctx, domain.CandidatesTable, map[string]any{
		"job_id":          jobID,
		"file_name":       fileName,
		"cv_text_raw":     text,
		"analysis_status": domain.AnalysisPending,
	})
	if err != nil {
		return "", err
	}

	return rec.ID, nil
}
