package services

import (
	"context"

	"recruiting-intake/domain"
)

// TriggerService kicks off the external analysis workflow for a job.
type TriggerService struct {
	store    domain.RecordStore
	notifier domain.Notifier
}

func NewTriggerService(store domain.RecordStore, notifier domain.Notifier) *TriggerService {
	return &TriggerService{store: store, notifier: notifier}
}

// Trigger looks the job up by its public id and posts it to the webhook.
// The notifier configuration is checked first so a missing webhook URL
// fails before any network call. A job record without a description still
// triggers, with an empty description.
func (s *TriggerService) Trigger(ctx context.Context, jobID string) error {
	if jobID == "" {
		return &domain.ClientInputError{Reason: "job_id is required"}
	}

	if err := s.notifier.Ready(); err != nil {
		return err
	}

	records, err := s.store.Query(ctx, domain.JobsTable, domain.FormulaEq("job_id", jobID), 1)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return &domain.NotFoundError{What: "job", ID: jobID}
	}

	description, _ := records[0].Fields["description_raw"].(string)
	return s.notifier.NotifyAnalysis(ctx, jobID, description)
}
