package handlers

import (
	"net/http"
	"strconv"

	"meetsync/models"
	"meetsync/services/scheduler"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves free-time updates and overlap queries.
type AvailabilityHandler struct {
	Engine scheduler.SchedulingEngine
}

func NewAvailabilityHandler(engine scheduler.SchedulingEngine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// SetAvailabilityHandler handles PUT /api/users/:id/availability. The Nth
// entry of date_list pairs with the Nth entry of time_ranges. A failure
// partway through keeps the per-date updates already applied.
func (h *AvailabilityHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id must be an integer"})
		return
	}

	var req struct {
		DateList   []string             `json:"date_list" binding:"required"`
		TimeRanges [][]models.TimeRange `json:"time_ranges" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := validateTimeRanges(req.TimeRanges); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := validateDateList(req.DateList); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.Engine.SetAvailability(userID, req.DateList, req.TimeRanges); err != nil {
		logger.Warn("Availability update rejected", zap.Int("user_id", userID), zap.Error(err))
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated successfully"})
}

// GetOverlapHandler handles GET /api/availability/overlap/:id1/:id2.
func (h *AvailabilityHandler) GetOverlapHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID1, err := strconv.Atoi(c.Param("id1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id must be an integer"})
		return
	}
	userID2, err := strconv.Atoi(c.Param("id2"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id must be an integer"})
		return
	}

	overlap, err := h.Engine.GetOverlap(userID1, userID2)
	if err != nil {
		logger.Warn("Overlap query failed", zap.Int("user_id_1", userID1), zap.Int("user_id_2", userID2), zap.Error(err))
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"overlap": overlap})
}
