package handlers

import (
	"net/http"
	"strconv"

	"meetsync/services/scheduler"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user registration and profile endpoints.
type UserHandler struct {
	Engine scheduler.SchedulingEngine
}

func NewUserHandler(engine scheduler.SchedulingEngine) *UserHandler {
	return &UserHandler{Engine: engine}
}

// RegisterUserHandler handles POST /api/users.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		UserName    string `json:"user_name" binding:"required"`
		PhoneNumber string `json:"phone_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := h.Engine.CreateUser(req.UserName, req.PhoneNumber)
	logger.Info("User registered", zap.Int("user_id", userID), zap.String("user_name", req.UserName))
	c.JSON(http.StatusCreated, gin.H{"message": "User added successfully", "user_id": userID})
}

// GetUserProfileHandler handles GET /api/users/:id. It returns the user's
// identity together with their full availability window and booked meetings.
func (h *UserHandler) GetUserProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id must be an integer"})
		return
	}

	user, err := h.Engine.GetUser(userID)
	if err != nil {
		logger.Warn("User not found", zap.Int("user_id", userID), zap.Error(err))
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	availability, err := h.Engine.GetAvailability(userID)
	if err != nil {
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	bookings, err := h.Engine.GetBookings(userID)
	if err != nil {
		logger.Error("Failed to resolve bookings", zap.Int("user_id", userID), zap.Error(err))
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      user.ID,
		"user_name":    user.Name,
		"phone_number": user.PhoneNumber,
		"availability": availability,
		"bookings":     bookings,
	})
}
