package dtos

// BidRequest is the body for placing a bid. The referenced job is not
// validated: a bid against an unknown or deleted job id is stored anyway.
// Job title and owner email are denormalized from the client because bid
// listings never join back to the jobs table. The applicant email comes
// from the verified session, not the body.
type BidRequest struct {
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	JobOwnerEmail string `json:"job_owner_email"`
	Price         string `json:"price"`
	Deadline      string `json:"deadline"`
}
