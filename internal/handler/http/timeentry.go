package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/timeentry"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/handler/http/response"
)

type TimeEntryHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &TimeEntryHandlerImpl{timeEntryService: timeEntryService}
}

// decodeOptionalBody tolerates an empty body: clock events usually carry no
// payload at all.
func decodeOptionalBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == io.EOF {
		return nil
	}
	return err
}

// ClockIn implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ClockInRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timeEntryService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, resp.Message, resp)
}

// ClockOut implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ClockOutRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timeEntryService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", resp)
}

// StartBreak implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	var req timeentry.BreakRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timeEntryService.StartBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", resp)
}

// EndBreak implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timeEntryService.EndBreak(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", resp)
}

// GetMy implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	filter := timeentry.MyTimeEntryFilter{
		Date:      queryParam(r, "date"),
		StartDate: queryParam(r, "start_date"),
		EndDate:   queryParam(r, "end_date"),
		Status:    queryParam(r, "status"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	resp, err := h.timeEntryService.GetMyEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Entries, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// List implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timeentry.TimeEntryFilter{
		EmployeeID:       queryParam(r, "employee_id"),
		Date:             queryParam(r, "date"),
		StartDate:        queryParam(r, "start_date"),
		EndDate:          queryParam(r, "end_date"),
		Status:           queryParam(r, "status"),
		AttendanceStatus: queryParam(r, "attendance_status"),
		Page:             queryInt(r, "page"),
		Limit:            queryInt(r, "limit"),
	}

	resp, err := h.timeEntryService.ListEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Entries, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// Get implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	resp, err := h.timeEntryService.GetEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timeentry.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.timeEntryService.UpdateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated", resp)
}

// Delete implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	if err := h.timeEntryService.DeleteEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted", nil)
}
