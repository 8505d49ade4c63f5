package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-intake/domain"
)

func TestCreateJobGeneratesTimestampID(t *testing.T) {
	store := &fakeStore{createID: "recJob1"}
	svc := NewIntakeService(store, &fakeExtractor{})
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	created, err := svc.CreateJob(context.Background(), "Backend Engineer", "Build APIs")
	require.NoError(t, err)

	assert.Equal(t, "JOB-1700000000", created.JobID)
	assert.Regexp(t, regexp.MustCompile(`^JOB-\d+$`), created.JobID)
	assert.Equal(t, "recJob1", created.AirtableID)
	assert.Equal(t, domain.JobsTable, store.createTable)
}

func TestCreateJobDoesNotPersistTitle(t *testing.T) {
	store := &fakeStore{}
	svc := NewIntakeService(store, &fakeExtractor{})

	_, err := svc.CreateJob(context.Background(), "Some Title", "A description")
	require.NoError(t, err)

	assert.Equal(t, "A description", store.createFields["description_raw"])
	assert.NotContains(t, store.createFields, "title")
}

func TestCreateJobRequiresDescription(t *testing.T) {
	store := &fakeStore{}
	svc := NewIntakeService(store, &fakeExtractor{})

	_, err := svc.CreateJob(context.Background(), "Title", "")

	var inputErr *domain.ClientInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, store.createCalls)
}

func TestSubmitCandidateStoresExtractedText(t *testing.T) {
	store := &fakeStore{createID: "recCand1"}
	svc := NewIntakeService(store, &fakeExtractor{text: "Hello World"})

	id, err := svc.SubmitCandidate(context.Background(), "JOB-123", "cv.pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "recCand1", id)
	assert.Equal(t, domain.CandidatesTable, store.createTable)
	assert.Equal(t, "JOB-123", store.createFields["job_id"])
	assert.Equal(t, "cv.pdf", store.createFields["file_name"])
	assert.Equal(t, "Hello World", store.createFields["cv_text_raw"])
	assert.Equal(t, domain.AnalysisPending, store.createFields["analysis_status"])
}

func TestSubmitCandidateRequiresJobID(t *testing.T) {
	store := &fakeStore{}
	svc := NewIntakeService(store, &fakeExtractor{text: "some text"})

	_, err := svc.SubmitCandidate(context.Background(), "", "cv.pdf", []byte("%PDF"))

	var inputErr *domain.ClientInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, store.createCalls)
}

func TestSubmitCandidateExtractionFailure(t *testing.T) {
	store := &fakeStore{}
	extractErr := &domain.ExtractionError{Err: assert.AnError}
	svc := NewIntakeService(store, &fakeExtractor{err: extractErr})

	_, err := svc.SubmitCandidate(context.Background(), "JOB-123", "broken.pdf", []byte("not a pdf"))

	var extraction *domain.ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Zero(t, store.createCalls, "a failed extraction must not write to the store")
}
