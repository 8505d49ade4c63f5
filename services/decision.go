package services

import (
	"context"

	"recruiting-intake/domain"
)

// DecisionService records the recruiter's verdict on a candidate.
type DecisionService struct {
	store domain.RecordStore
}

func NewDecisionService(store domain.RecordStore) *DecisionService {
	return &DecisionService{store: store}
}

// decisionTokens maps the API vocabulary onto the fixed store-side tokens.
var decisionTokens = map[string]string{
	"yes": domain.DecisionAccepted,
	"no":  domain.DecisionRejected,
}

// UpdateDecision validates the decision token and writes it to the
// candidate record. Anything outside yes/no is rejected before any store
// call.
func (s *DecisionService) UpdateDecision(ctx context.Context, candidateID, decision string) (string, error) {
	if candidateID == "" {
		return "", &domain.ClientInputError{Reason: "candidate_id is required"}
	}

	stored, ok := decisionTokens[decision]
	if !ok {
		return "", &domain.ClientInputError{Reason: `decision must be "yes" or "no"`}
	}

	rec, err := s.store.Update(ctx, domain.CandidatesTable, candidateID, map[string]any{
		"decision": stored,
	})
	if err != nil {
		return "", err
	}

	return rec.ID, nil
}
