package maintenanceservice

import (
	"errors"
	"net/http"

	"labtrack/providers"
	equipmentservice "labtrack/services/equipment"
	"labtrack/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type MaintenanceHandler struct {
	Service        MaintenanceService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewMaintenanceHandler(service MaintenanceService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *MaintenanceHandler {
	return &MaintenanceHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

var validate = validator.New()

func (h *MaintenanceHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrForbidden):
		utils.RespondError(w, http.StatusForbidden, err, "permission denied")
	case errors.Is(err, ErrRecordNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "maintenance record not found")
	case errors.Is(err, equipmentservice.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "equipment not found")
	case errors.Is(err, ErrInvalid), errors.Is(err, ErrNotATechnician):
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
	default:
		h.Logger.GetLogger().Error(message, zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, err, message)
	}
}

func (h *MaintenanceHandler) RecordMaintenance(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	var req RecordMaintenanceReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid maintenance input")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	rec, err := h.Service.RecordMaintenance(r.Context(), user, req)
	if err != nil {
		h.respondServiceError(w, err, "failed to record maintenance")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, rec)
}

func (h *MaintenanceHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	var req UpdateMaintenanceReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid maintenance input")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	rec, err := h.Service.UpdateRecord(r.Context(), user, chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to update maintenance record")
		return
	}
	utils.RespondJSON(w, http.StatusOK, rec)
}

func (h *MaintenanceHandler) AssignTechnician(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	var req AssignTechnicianReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	rec, err := h.Service.AssignTechnician(r.Context(), user, chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to assign technician")
		return
	}
	utils.RespondJSON(w, http.StatusOK, rec)
}

func (h *MaintenanceHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	rec, err := h.Service.GetRecord(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch maintenance record")
		return
	}
	utils.RespondJSON(w, http.StatusOK, rec)
}

func (h *MaintenanceHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	records, err := h.Service.ListHistory(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch maintenance history")
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

func (h *MaintenanceHandler) ListAllHistory(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	history, err := h.Service.ListAllHistory(r.Context(), user)
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch maintenance records")
		return
	}
	utils.RespondJSON(w, http.StatusOK, history)
}
