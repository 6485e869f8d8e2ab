package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CheckConflicts(w http.ResponseWriter, r *http.Request)
	RequestSwap(w http.ResponseWriter, r *http.Request)
	ApproveSwap(w http.ResponseWriter, r *http.Request)
	RejectSwap(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assignment created", resp)
}

// BulkCreate implements ShiftHandler.
func (h *ShiftHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req shift.BulkCreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.BulkCreateAssignments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assignments created", resp)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := shift.ShiftFilter{
		EmployeeID: queryParam(r, "employee_id"),
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		Status:     queryParam(r, "status"),
		Location:   queryParam(r, "location"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	resp, err := h.shiftService.ListAssignments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Shifts, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	resp, err := h.shiftService.GetAssignment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.shiftService.UpdateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment updated", resp)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.shiftService.DeleteAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment deleted", nil)
}

// CheckConflicts implements ShiftHandler. Dry-run of the conflict detector;
// nothing is written.
func (h *ShiftHandlerImpl) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	var req shift.ConflictCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	conflicts, err := h.shiftService.DetectConflicts(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	type conflictItem struct {
		ID        string `json:"id"`
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Status    string `json:"status"`
	}
	items := make([]conflictItem, 0, len(conflicts))
	for _, c := range conflicts {
		items = append(items, conflictItem{
			ID:        c.ID,
			Date:      c.Date.Format("2006-01-02"),
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			Status:    string(c.Status),
		})
	}

	response.Success(w, map[string]interface{}{
		"has_conflicts": len(items) > 0,
		"conflicts":     items,
	})
}

// RequestSwap implements ShiftHandler.
func (h *ShiftHandlerImpl) RequestSwap(w http.ResponseWriter, r *http.Request) {
	var req shift.SwapShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ShiftID = chi.URLParam(r, "id")

	resp, err := h.shiftService.RequestSwap(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Swap requested", resp)
}

// ApproveSwap implements ShiftHandler.
func (h *ShiftHandlerImpl) ApproveSwap(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.ApproveSwap(r.Context(), shift.ResolveSwapRequest{
		ShiftID: chi.URLParam(r, "id"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Swap approved", resp)
}

// RejectSwap implements ShiftHandler.
func (h *ShiftHandlerImpl) RejectSwap(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.RejectSwap(r.Context(), shift.ResolveSwapRequest{
		ShiftID: chi.URLParam(r, "id"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Swap rejected", resp)
}

func queryParam(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
