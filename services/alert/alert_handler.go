package alertservice

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

type AlertHandler struct {
	Service        AlertService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewAlertHandler(service AlertService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *AlertHandler {
	return &AlertHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func (h *AlertHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrForbidden):
		utils.RespondError(w, http.StatusForbidden, err, "permission denied")
	case errors.Is(err, ErrActorRequired):
		utils.RespondError(w, http.StatusUnauthorized, err, "an active user is required")
	case errors.Is(err, ErrAlertNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "alert not found")
	case errors.Is(err, equipmentservice.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "equipment not found")
	case errors.Is(err, ErrAlreadyAcknowledged), errors.Is(err, ErrNotAcknowledged), errors.Is(err, ErrAlreadyResolved):
		utils.RespondError(w, http.StatusConflict, err, err.Error())
	case errors.Is(err, ErrInvalidIssue):
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
	default:
		h.Logger.GetLogger().Error(message, zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, err, message)
	}
}

func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	query := r.URL.Query()
	filter := AlertFilter{
		Priority:         query.Get("priority"),
		Type:             query.Get("type"),
		ShowAcknowledged: query.Get("show_acknowledged") == "true",
	}
	listing, err := h.Service.ListAlerts(r.Context(), user, filter)
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch alerts")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listing)
}

func (h *AlertHandler) EvaluateTriggers(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	result, err := h.Service.EvaluateTriggers(r.Context(), user)
	if err != nil {
		h.respondServiceError(w, err, "failed to evaluate alert triggers")
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

func (h *AlertHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	alert, err := h.Service.Acknowledge(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to acknowledge alert")
		return
	}
	utils.RespondJSON(w, http.StatusOK, alert)
}

func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	alert, err := h.Service.Resolve(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to resolve alert")
		return
	}
	utils.RespondJSON(w, http.StatusOK, alert)
}

func (h *AlertHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	if err := h.Service.Dismiss(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err, "failed to dismiss alert")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "alert dismissed"})
}

func (h *AlertHandler) RaiseIssue(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	var req IssueRequest
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	alert, err := h.Service.RaiseIssue(r.Context(), user, req)
	if err != nil {
		h.respondServiceError(w, err, "failed to raise issue")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, alert)
}
