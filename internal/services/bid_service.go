package services

import (
	"sort"

	"github.com/google/uuid"
	"github.com/jobnest/jobnest/internal/dtos"
	"github.com/jobnest/jobnest/internal/models"
	"gorm.io/gorm"
)

type BidService struct {
	DB *gorm.DB
}

func NewBidService(db *gorm.DB) *BidService {
	return &BidService{
		DB: db,
	}
}

// List returns every bid, unordered.
func (s *BidService) List() ([]models.Bid, error) {
	var bids []models.Bid
	err := s.DB.Find(&bids).Error
	return bids, err
}

// ListByJobOwner returns the bid requests for a job owner: every bid placed
// against a job that email owns.
func (s *BidService) ListByJobOwner(email string) ([]models.Bid, error) {
	var bids []models.Bid
	err := s.DB.Where("job_owner_email = ?", email).Find(&bids).Error
	return bids, err
}

// ListByApplicant returns the bids an applicant has placed, optionally
// filtered by status and sorted by it.
//
// The "pending" filter matches both bids with no status yet and bids marked
// pending explicitly. "all" or an empty filter disables filtering; any other
// value is an exact match.
func (s *BidService) ListByApplicant(email, statusFilter, sortOrder string) ([]models.Bid, error) {
	q := s.DB.Where("applicant_email = ?", email)
	switch statusFilter {
	case "", "all":
	case models.StatusPending:
		q = q.Where(s.DB.Where("status = ?", "").Or("status = ?", models.StatusPending))
	default:
		q = q.Where("status = ?", statusFilter)
	}

	var bids []models.Bid
	if err := q.Find(&bids).Error; err != nil {
		return nil, err
	}

	switch sortOrder {
	case "asc":
		sortBidsByStatus(bids, true)
	case "desc":
		sortBidsByStatus(bids, false)
	}
	return bids, nil
}

// sortBidsByStatus orders bids lexicographically by status. A bid without a
// status does not compare as the empty string: it sorts last in ascending
// order and first in descending order.
func sortBidsByStatus(bids []models.Bid, asc bool) {
	sort.SliceStable(bids, func(i, j int) bool {
		a, b := bids[i].Status, bids[j].Status
		switch {
		case a == b:
			return false
		case a == "":
			return !asc
		case b == "":
			return asc
		case asc:
			return a < b
		default:
			return a > b
		}
	})
}

// Create stores a new bid under a generated id. The referenced job is not
// checked: a bid on an unknown job id is accepted and stored. The applicant
// email is fixed here and never changes afterwards.
func (s *BidService) Create(applicantEmail string, req *dtos.BidRequest) (*models.Bid, error) {
	bid := &models.Bid{
		ID:             uuid.NewString(),
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
		JobOwnerEmail:  req.JobOwnerEmail,
		ApplicantEmail: applicantEmail,
		Price:          req.Price,
		Deadline:       req.Deadline,
	}
	if err := s.DB.Create(bid).Error; err != nil {
		return nil, err
	}
	return bid, nil
}

// SetStatus overwrites the bid's status unconditionally. There is no
// transition check: completing an already-rejected bid succeeds and simply
// replaces the value. Reject, accept and complete all funnel through here.
func (s *BidService) SetStatus(id, status string) (*models.UpdateResult, error) {
	tx := s.DB.Model(&models.Bid{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &models.UpdateResult{
		MatchedCount:  tx.RowsAffected,
		ModifiedCount: tx.RowsAffected,
	}, nil
}
