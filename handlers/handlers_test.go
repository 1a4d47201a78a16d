package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meetsync/handlers"
	"meetsync/routes"
	"meetsync/services/scheduler"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := scheduler.NewSchedulingEngine()
	bundle := &routes.HandlerBundle{
		User:         handlers.NewUserHandler(engine),
		Availability: handlers.NewAvailabilityHandler(engine),
		Meeting:      handlers.NewMeetingHandler(engine),
	}
	router := gin.New()
	routes.RegisterRoutes(router, bundle)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func registerUser(t *testing.T, router *gin.Engine, name, phone string) int {
	t.Helper()
	rec, body := doJSON(t, router, http.MethodPost, "/api/users",
		fmt.Sprintf(`{"user_name":%q,"phone_number":%q}`, name, phone))
	require.Equal(t, http.StatusCreated, rec.Code)
	return int(body["user_id"].(float64))
}

// tomorrow is always inside every user's 31-day window.
func tomorrow() string {
	return utils.FormatDate(time.Now().AddDate(0, 0, 1))
}

func TestRegisterUser(t *testing.T) {
	router := newTestRouter()

	rec, body := doJSON(t, router, http.MethodPost, "/api/users",
		`{"user_name":"Alice","phone_number":"555-0100"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User added successfully", body["message"])
	assert.Equal(t, float64(1), body["user_id"])
}

func TestRegisterUser_MissingFields(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/users", `{"user_name":"Alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserProfile(t *testing.T) {
	router := newTestRouter()
	userID := registerUser(t, router, "Alice", "555-0100")

	rec, body := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice", body["user_name"])
	assert.Equal(t, "555-0100", body["phone_number"])
	availability := body["availability"].(map[string]any)
	assert.Len(t, availability, 31)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodGet, "/api/users/42", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetAvailabilityAndOverlap(t *testing.T) {
	router := newTestRouter()
	alice := registerUser(t, router, "Alice", "555-0100")
	bob := registerUser(t, router, "Bob", "555-0101")
	date := tomorrow()

	rec, body := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/availability", alice),
		fmt.Sprintf(`{"date_list":[%q],"time_ranges":[[{"start_time":"09:00","end_time":"12:00"}]]}`, date))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Availability updated successfully", body["message"])

	rec, _ = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/availability", bob),
		fmt.Sprintf(`{"date_list":[%q],"time_ranges":[[{"start_time":"10:00","end_time":"14:00"}]]}`, date))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/availability/overlap/%d/%d", alice, bob), "")
	require.Equal(t, http.StatusOK, rec.Code)

	overlap := body["overlap"].(map[string]any)
	ranges := overlap[date].([]any)
	require.Len(t, ranges, 1)
	slot := ranges[0].(map[string]any)
	assert.Equal(t, "10:00", slot["start_time"])
	assert.Equal(t, "12:00", slot["end_time"])
}

func TestSetAvailability_InvalidTimeFormat(t *testing.T) {
	router := newTestRouter()
	alice := registerUser(t, router, "Alice", "555-0100")

	rec, _ := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/availability", alice),
		fmt.Sprintf(`{"date_list":[%q],"time_ranges":[[{"start_time":"9am","end_time":"12:00"}]]}`, tomorrow()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSetAvailability_DateTooFarOut(t *testing.T) {
	router := newTestRouter()
	alice := registerUser(t, router, "Alice", "555-0100")
	farOut := utils.FormatDate(time.Now().AddDate(0, 0, 40))

	rec, _ := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/availability", alice),
		fmt.Sprintf(`{"date_list":[%q],"time_ranges":[[{"start_time":"09:00","end_time":"12:00"}]]}`, farOut))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBookMeetingFlow(t *testing.T) {
	router := newTestRouter()
	alice := registerUser(t, router, "Alice", "555-0100")
	bob := registerUser(t, router, "Bob", "555-0101")
	date := tomorrow()

	rec, _ := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/availability", alice),
		fmt.Sprintf(`{"date_list":[%q],"time_ranges":[[{"start_time":"09:00","end_time":"17:00"}]]}`, date))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := doJSON(t, router, http.MethodPost, "/api/meetings",
		fmt.Sprintf(`{"user_id":%d,"requestor_id":%d,"date":%q,"start_time":"09:00","end_time":"10:00"}`, alice, bob, date))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking successful", body["message"])

	rec, body = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/meetings/%d", alice), "")
	require.Equal(t, http.StatusOK, rec.Code)

	booked := body["booked_meetings"].(map[string]any)
	meetings := booked[date].([]any)
	require.Len(t, meetings, 1)
	meeting := meetings[0].(map[string]any)
	assert.Equal(t, float64(bob), meeting["requestor_id"])
	assert.Equal(t, "Bob", meeting["requestor_name"])
	assert.Equal(t, "555-0101", meeting["requestor_phone"])

	// The booked hour is carved out of the host's free time.
	rec, body = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d", alice), "")
	require.Equal(t, http.StatusOK, rec.Code)
	availability := body["availability"].(map[string]any)
	ranges := availability[date].([]any)
	require.Len(t, ranges, 1)
	slot := ranges[0].(map[string]any)
	assert.Equal(t, "10:00", slot["start_time"])
	assert.Equal(t, "17:00", slot["end_time"])
}

func TestBookMeeting_SlotNotAvailable(t *testing.T) {
	router := newTestRouter()
	alice := registerUser(t, router, "Alice", "555-0100")
	bob := registerUser(t, router, "Bob", "555-0101")
	date := tomorrow()

	rec, _ := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/availability", alice),
		fmt.Sprintf(`{"date_list":[%q],"time_ranges":[[{"start_time":"09:00","end_time":"10:00"},{"start_time":"11:00","end_time":"12:00"}]]}`, date))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := doJSON(t, router, http.MethodPost, "/api/meetings",
		fmt.Sprintf(`{"user_id":%d,"requestor_id":%d,"date":%q,"start_time":"09:30","end_time":"11:30"}`, alice, bob, date))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "not available")
}

func TestBookMeeting_UnknownHost(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/meetings",
		fmt.Sprintf(`{"user_id":42,"requestor_id":1,"date":%q,"start_time":"09:00","end_time":"10:00"}`, tomorrow()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter()

	rec, body := doJSON(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}
