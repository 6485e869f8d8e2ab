package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/leave"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.CreateLeave(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave record created", resp)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		EmployeeID: queryParam(r, "employee_id"),
		Status:     queryParam(r, "status"),
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	resp, err := h.leaveService.ListLeaves(r.Context(), &filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Leaves, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// GetMy implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	filter := leave.LeaveFilter{
		EmployeeID: &employeeID,
		Status:     queryParam(r, "status"),
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	resp, err := h.leaveService.ListLeaves(r.Context(), &filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Leaves, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	resp, err := h.leaveService.GetLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ApproveLeave(r.Context(), &leave.ResolveLeaveRequest{
		ID: chi.URLParam(r, "id"),
	}, "")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave approved", resp)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.RejectLeave(r.Context(), &leave.ResolveLeaveRequest{
		ID: chi.URLParam(r, "id"),
	}, "")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave rejected", resp)
}
