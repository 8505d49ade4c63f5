package domain

import (
	"context"
	"fmt"
	"strings"
)

// Record is a single row in the remote tabular store.
type Record struct {
	ID     string
	Fields map[string]any
}

// RecordStore is the narrow surface this service needs from the remote
// store. Implemented by infrastructure.AirtableClient; tests substitute an
// in-memory fake.
type RecordStore interface {
	Create(ctx context.Context, table string, fields map[string]any) (*Record, error)
	Update(ctx context.Context, table, recordID string, fields map[string]any) (*Record, error)

	// Query follows the store's pagination cursor until it is absent and
	// returns all matching records in store order.
	Query(ctx context.Context, table, filterFormula string, pageSize int) ([]Record, error)
}

// Notifier hands a job off to the external analysis workflow.
type Notifier interface {
	// Ready reports whether a destination is configured, without I/O.
	Ready() error
	NotifyAnalysis(ctx context.Context, jobID, description string) error
}

// TextExtractor returns the text layer of an uploaded document.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// FormulaEq builds an exact-match filter formula for one field.
func FormulaEq(field, value string) string {
	escaped := strings.ReplaceAll(value, "'", `\'`)
	return fmt.Sprintf("{%s} = '%s'", field, escaped)
}
