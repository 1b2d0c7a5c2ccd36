package services

import (
	"github.com/google/uuid"
	"github.com/jobnest/jobnest/internal/dtos"
	"github.com/jobnest/jobnest/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// List returns every posted job, unordered.
func (s *JobService) List() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Find(&jobs).Error
	return jobs, err
}

// ListByCategory filters by exact category string.
func (s *JobService) ListByCategory(category string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("category = ?", category).Find(&jobs).Error
	return jobs, err
}

// ListByOwner returns the jobs posted by the given email. An empty email is
// treated as no filter at all and returns every job; owner scoping has to be
// enforced upstream by the access guard, never here.
func (s *JobService) ListByOwner(email string) ([]models.Job, error) {
	q := s.DB
	if email != "" {
		q = q.Where("owner_email = ?", email)
	}
	var jobs []models.Job
	err := q.Find(&jobs).Error
	return jobs, err
}

// Get looks a job up by id. A miss surfaces as gorm.ErrRecordNotFound.
func (s *JobService) Get(id string) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Create stores a new posting under a generated id. Fields are taken as
// sent; a partially populated posting is accepted.
func (s *JobService) Create(ownerEmail string, req *dtos.JobRequest) (*models.Job, error) {
	job := &models.Job{
		ID:           uuid.NewString(),
		OwnerEmail:   ownerEmail,
		Title:        req.Title,
		Deadline:     req.Deadline,
		Description:  req.Description,
		MinimumPrice: req.MinimumPrice,
		MaximumPrice: req.MaximumPrice,
		Category:     req.Category,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update applies the non-empty fields to the job with this id. When no
// record matches, a new one is created under that same id: the endpoint
// behaves like an idempotent PUT rather than failing on an unknown id.
func (s *JobService) Update(id, ownerEmail string, req *dtos.JobRequest) (*models.UpdateResult, error) {
	updates := models.Job{
		Title:        req.Title,
		Deadline:     req.Deadline,
		Description:  req.Description,
		MinimumPrice: req.MinimumPrice,
		MaximumPrice: req.MaximumPrice,
		Category:     req.Category,
	}
	tx := s.DB.Model(&models.Job{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected > 0 {
		return &models.UpdateResult{
			MatchedCount:  tx.RowsAffected,
			ModifiedCount: tx.RowsAffected,
		}, nil
	}

	// Upsert branch: materialize the record under the caller's id.
	job := models.Job{
		ID:           id,
		OwnerEmail:   ownerEmail,
		Title:        req.Title,
		Deadline:     req.Deadline,
		Description:  req.Description,
		MinimumPrice: req.MinimumPrice,
		MaximumPrice: req.MaximumPrice,
		Category:     req.Category,
	}
	if err := s.DB.Create(&job).Error; err != nil {
		return nil, err
	}
	return &models.UpdateResult{UpsertedID: id}, nil
}

// Delete removes the job. Deleting an unknown id is not an error; the
// result just reports zero records affected. Bids referencing the job are
// left in place.
func (s *JobService) Delete(id string) (*models.DeleteResult, error) {
	tx := s.DB.Where("id = ?", id).Delete(&models.Job{})
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &models.DeleteResult{DeletedCount: tx.RowsAffected}, nil
}
