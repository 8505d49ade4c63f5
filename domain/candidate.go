package domain

// Analysis lifecycle values this system writes or reads. The external
// analysis workflow may write other values; they pass through untouched.
const (
	AnalysisPending = "pending"
	AnalysisDone    = "done"
)

// Store-side decision tokens. The store schema expects these exact values.
const (
	DecisionAccepted = "OUI"
	DecisionRejected = "NON"
)

// CandidateView is the projection of a candidate record returned by the
// results listing. Score is a pointer so a candidate that has not been
// analyzed yet serializes as null rather than zero.
type CandidateView struct {
	ID                  string   `json:"id"`
	FileName            string   `json:"file_name"`
	Score               *float64 `json:"score"`
	Decision            string   `json:"decision"`
	AnalysisStatus      string   `json:"analysis_status"`
	AnalysisExplanation string   `json:"analysis_explanation"`
}
