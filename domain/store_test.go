package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormulaEq(t *testing.T) {
	assert.Equal(t, `{job_id} = 'JOB-1'`, FormulaEq("job_id", "JOB-1"))
}

func TestFormulaEqEscapesQuotes(t *testing.T) {
	assert.Equal(t, `{file_name} = 'O\'Brien.pdf'`, FormulaEq("file_name", "O'Brien.pdf"))
}
