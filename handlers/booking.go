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

// MeetingHandler serves booking creation and listing endpoints.
type MeetingHandler struct {
	Engine scheduler.SchedulingEngine
}

func NewMeetingHandler(engine scheduler.SchedulingEngine) *MeetingHandler {
	return &MeetingHandler{Engine: engine}
}

// BookMeetingHandler handles POST /api/meetings. The requestor books the
// given slot on the host user's calendar.
func (h *MeetingHandler) BookMeetingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		UserID      int    `json:"user_id" binding:"required"`
		RequestorID int    `json:"requestor_id" binding:"required"`
		Date        string `json:"date" binding:"required"`
		StartTime   string `json:"start_time" binding:"required"`
		EndTime     string `json:"end_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	end, err := utils.ParseClock(req.EndTime)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	slot := models.TimeRange{Start: start, End: end}
	if err := validateTimeRanges([][]models.TimeRange{{slot}}); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := validateDateList([]string{req.Date}); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.Engine.BookMeeting(req.UserID, req.Date, slot, req.RequestorID); err != nil {
		logger.Warn("Booking rejected",
			zap.Int("user_id", req.UserID),
			zap.Int("requestor_id", req.RequestorID),
			zap.String("date", req.Date),
			zap.Error(err))
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	logger.Info("Booking confirmed",
		zap.Int("user_id", req.UserID),
		zap.Int("requestor_id", req.RequestorID),
		zap.String("date", req.Date),
		zap.String("slot", slot.String()))
	c.JSON(http.StatusOK, gin.H{"message": "Booking successful"})
}

// GetBookingsHandler handles GET /api/meetings/:id.
func (h *MeetingHandler) GetBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id must be an integer"})
		return
	}

	booked, err := h.Engine.GetBookings(userID)
	if err != nil {
		logger.Warn("Bookings query failed", zap.Int("user_id", userID), zap.Error(err))
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booked_meetings": booked})
}
