package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	"github.com/sunshine-dental/clinic-backend-go/internal/handler/http/middleware"
	"github.com/sunshine-dental/clinic-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Validate(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	ListWeek(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
	location        *time.Location
}

func NewScheduleHandler(scheduleService schedule.ScheduleService, location *time.Location) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
		location:        location,
	}
}

// Validate implements ScheduleHandler. Dry run, nothing persists.
func (h *scheduleHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req schedule.WeeklyScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.ValidateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements ScheduleHandler.
func (h *scheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.WeeklyScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.CreateWeeklySchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Weekly schedule created", result)
}

// ListWeek implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListWeek(w http.ResponseWriter, r *http.Request) {
	weekStartStr := r.URL.Query().Get("week_start")
	weekStart, err := time.ParseInLocation("2006-01-02", weekStartStr, h.location)
	if err != nil {
		response.BadRequest(w, "week_start must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.scheduleService.ListWeek(r.Context(), middleware.ClinicID(r), weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
