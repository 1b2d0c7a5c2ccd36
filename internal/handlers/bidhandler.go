package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobnest/jobnest/internal/auth"
	"github.com/jobnest/jobnest/internal/dtos"
	"github.com/jobnest/jobnest/internal/models"
	"github.com/jobnest/jobnest/internal/services"
)

type BidHandler struct {
	Bids *services.BidService
}

func NewBidHandler(b *services.BidService) *BidHandler {
	return &BidHandler{
		Bids: b,
	}
}

// BidRequests is the owner-scoped GET /bid-requests endpoint: bids placed
// against the session owner's jobs.
func (h *BidHandler) BidRequests(c *gin.Context) {
	bids, err := h.Bids.ListByJobOwner(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bid requests"})
		return
	}
	c.JSON(http.StatusOK, bids)
}

// MyBids is the owner-scoped GET /my-bids endpoint, with optional status
// and sort query parameters.
func (h *BidHandler) MyBids(c *gin.Context) {
	bids, err := h.Bids.ListByApplicant(c.Query("email"), c.Query("status"), c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bids"})
		return
	}
	c.JSON(http.StatusOK, bids)
}

// CreateBid is the POST /bids endpoint. The applicant is the session
// identity; the referenced job is taken on trust.
func (h *BidHandler) CreateBid(c *gin.Context) {
	var req dtos.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	identity := auth.IdentityFrom(c)
	bid, err := h.Bids.Create(identity.Email, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bid"})
		return
	}
	c.JSON(http.StatusCreated, bid)
}

// RejectBid, AcceptBid and CompleteBid are the three status-transition
// endpoints. Each one overwrites the status unconditionally; there is no
// state machine ordering the transitions.

func (h *BidHandler) RejectBid(c *gin.Context) {
	h.setStatus(c, models.StatusRejected)
}

func (h *BidHandler) AcceptBid(c *gin.Context) {
	h.setStatus(c, models.StatusInProgress)
}

func (h *BidHandler) CompleteBid(c *gin.Context) {
	h.setStatus(c, models.StatusCompleted)
}

func (h *BidHandler) setStatus(c *gin.Context, status string) {
	result, err := h.Bids.SetStatus(c.Param("id"), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bid"})
		return
	}
	c.JSON(http.StatusOK, result)
}
