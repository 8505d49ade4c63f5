package services

import (
	"context"

	"recruiting-intake/domain"
)

// fakeStore is an in-memory stand-in for the remote record store.
type fakeStore struct {
	createCalls  int
	createTable  string
	createFields map[string]any
	createID     string
	createErr    error

	updateCalls  int
	updateTable  string
	updateID     string
	updateFields map[string]any
	updateErr    error

	queryCalls    int
	queryTable    string
	queryFormula  string
	queryPageSize int
	queryRecords  []domain.Record
	queryErr      error
}

func (f *fakeStore) Create(_ context.Context, table string, fields map[string]any) (*domain.Record, error) {
	f.createCalls++
	f.createTable = table
	f.createFields = fields
	if f.createErr != nil {
		return nil, f.createErr
	}
	id := f.createID
	if id == "" {
		id = "recCreated"
	}
	return &domain.Record{ID: id, Fields: fields}, nil
}

func (f *fakeStore) Update(_ context.Context, table, recordID string, fields map[string]any) (*domain.Record, error) {
	f.updateCalls++
	f.updateTable = table
	f.updateID = recordID
	f.updateFields = fields
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.Record{ID: recordID, Fields: fields}, nil
}

func (f *fakeStore) Query(_ context.Context, table, filterFormula string, pageSize int) ([]domain.Record, error) {
	f.queryCalls++
	f.queryTable = table
	f.queryFormula = filterFormula
	f.queryPageSize = pageSize
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.queryRecords, nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(_ []byte) (string, error) {
	return f.text, f.err
}

type fakeNotifier struct {
	readyErr        error
	notifyErr       error
	notifyCalls     int
	lastJobID       string
	lastDescription string
}

func (f *fakeNotifier) Ready() error {
	return f.readyErr
}

func (f *fakeNotifier) NotifyAnalysis(_ context.Context, jobID, description string) error {
	f.notifyCalls++
	f.lastJobID = jobID
	f.lastDescription = description
	return f.notifyErr
}
