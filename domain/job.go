package domain

// Table names in the remote record store.
const (
	JobsTable       = "Jobs"
	CandidatesTable = "Candidates"
)

// Job is a posting a recruiter creates. Only job_id and the raw description
// are persisted; the analysis workflow writes derived fields out-of-band and
// this system never touches them.
type Job struct {
	JobID          string `json:"job_id"`
	Title          string `json:"title,omitempty"`
	DescriptionRaw string `json:"description_raw"`
}
