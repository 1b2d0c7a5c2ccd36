package models

import "time"

// Bid status values. A freshly created bid has no status at all until the
// job owner acts on it; the empty string and "pending" belong to the same
// bucket everywhere statuses are filtered.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusRejected   = "rejected"
	StatusCompleted  = "completed"
)

type Job struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerEmail   string `gorm:"index;not null" json:"owner_email"`
	Title        string `json:"title"`
	Deadline     string `json:"deadline"`
	Description  string `gorm:"type:text" json:"description"`
	MinimumPrice string `json:"minimum_price"`
	MaximumPrice string `json:"maximum_price"`
	// Free-form; matched against the category catalog by name but not
	// foreign-key enforced.
	Category string `gorm:"index" json:"category"`
}

type Bid struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Weak reference: no FK constraint, and deleting a job leaves its
	// bids in place. The job's title and owner email are denormalized
	// onto the bid at creation so owner-scoped listings need no join.
	JobID         string `gorm:"index" json:"job_id"`
	JobTitle      string `json:"job_title"`
	JobOwnerEmail string `gorm:"index" json:"job_owner_email"`

	ApplicantEmail string `gorm:"index;not null" json:"applicant_email"`
	Price          string `json:"price"`
	Deadline       string `json:"deadline"`
	Status         string `gorm:"index" json:"status"` // empty until the first transition
}

type Category struct {
	ID   string `gorm:"primaryKey;type:uuid" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// UpdateResult echoes the storage layer's reply to an update: how many
// records matched, how many were written, and the id of a record created
// by the upsert branch (empty when the update matched in place).
type UpdateResult struct {
	MatchedCount  int64  `json:"matched_count"`
	ModifiedCount int64  `json:"modified_count"`
	UpsertedID    string `json:"upserted_id,omitempty"`
}

// DeleteResult echoes a delete. A zero count is a success, not an error.
type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
