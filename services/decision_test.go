package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-intake/domain"
)

func TestUpdateDecisionRejectsUnknownToken(t *testing.T) {
	store := &fakeStore{}
	svc := NewDecisionService(store)

	_, err := svc.UpdateDecision(context.Background(), "recCand1", "maybe")

	var inputErr *domain.ClientInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, store.updateCalls, "an invalid decision must not reach the store")
}

func TestUpdateDecisionRequiresCandidateID(t *testing.T) {
	store := &fakeStore{}
	svc := NewDecisionService(store)

	_, err := svc.UpdateDecision(context.Background(), "", "yes")

	var inputErr *domain.ClientInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, store.updateCalls)
}

func TestUpdateDecisionMapsTokens(t *testing.T) {
	cases := []struct {
		decision string
		stored   string
	}{
		{"yes", "OUI"},
		{"no", "NON"},
	}

	for _, tc := range cases {
		t.Run(tc.decision, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewDecisionService(store)

			id, err := svc.UpdateDecision(context.Background(), "recCand1", tc.decision)
			require.NoError(t, err)

			assert.Equal(t, "recCand1", id)
			assert.Equal(t, domain.CandidatesTable, store.updateTable)
			assert.Equal(t, tc.stored, store.updateFields["decision"])
		})
	}
}

func TestUpdateDecisionStoreFailure(t *testing.T) {
	storeErr := &domain.UpstreamError{Service: "record store", Status: 503, Body: "unavailable"}
	store := &fakeStore{updateErr: storeErr}
	svc := NewDecisionService(store)

	_, err := svc.UpdateDecision(context.Background(), "recCand1", "yes")

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 503, upstream.Status)
}
