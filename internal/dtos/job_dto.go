package dtos

// JobRequest is the body for both job creation and job update. None of the
// fields are required: partially populated postings are accepted as-is and
// stored with whatever the caller sent. The owner email is never taken from
// the body; it comes from the verified session.
type JobRequest struct {
	Title        string `json:"title"`
	Deadline     string `json:"deadline"`
	Description  string `json:"description"`
	MinimumPrice string `json:"minimum_price"`
	MaximumPrice string `json:"maximum_price"`
	Category     string `json:"category"`
}
