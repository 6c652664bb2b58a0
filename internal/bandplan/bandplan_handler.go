package bandplan

import (
	"net/http"
	"strconv"

	"insuregate/internal/shared/apperror"
	"insuregate/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Assign(c.Request.Context(), c.GetString("organization_id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.GetString("organization_id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Unassign(c *gin.Context) {
	err := h.service.Unassign(c.Request.Context(), c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// Resolve answers "which plan would this salary get" without touching any
// premium state
func (h *Handler) Resolve(c *gin.Context) {
	salary, err := strconv.ParseFloat(c.Query("salary"), 64)
	if err != nil || salary <= 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "salary must be a positive number", nil)
		return
	}

	resolved, err := h.service.ResolvePlan(c.Request.Context(), c.GetString("organization_id"), salary)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if resolved == nil {
		response.Success(c, http.StatusOK, gin.H{"covered": false}, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"covered": true, "plan": resolved}, nil)
}
