package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobnest/jobnest/internal/auth"
	"github.com/jobnest/jobnest/internal/dtos"
	"github.com/jobnest/jobnest/internal/services"
	"gorm.io/gorm"
)

type JobHandler struct {
	Jobs *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{
		Jobs: j,
	}
}

// ListJobs is the public GET /jobs endpoint.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListJobsByCategory is the public GET /jobs-by-category/:category endpoint.
func (h *JobHandler) ListJobsByCategory(c *gin.Context) {
	jobs, err := h.Jobs.ListByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is the GET /jobs/:id endpoint. A missing id is the one place a
// lookup distinguishes NotFound from an empty result set.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.Jobs.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// MyJobs is the owner-scoped GET /my-jobs endpoint. The guard has already
// pinned the email query parameter to the session identity.
func (h *JobHandler) MyJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListByOwner(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is the POST /jobs endpoint. Ownership comes from the session,
// never from the body.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	identity := auth.IdentityFrom(c)
	job, err := h.Jobs.Create(identity.Email, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob is the PATCH /jobs/:id endpoint. Unknown ids are not an error:
// the update upserts a fresh record under the requested id.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	identity := auth.IdentityFrom(c)
	result, err := h.Jobs.Update(c.Param("id"), identity.Email, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteJob is the DELETE /jobs/:id endpoint. Deleting an unknown id
// succeeds with a zero count.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	result, err := h.Jobs.Delete(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}
	c.JSON(http.StatusOK, result)
}
