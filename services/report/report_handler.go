package reportservice

import (
	"errors"
	"fmt"
	"net/http"

	"labtrack/providers"
	"labtrack/utils"

	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	Service        ReportService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewReportHandler(service ReportService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *ReportHandler {
	return &ReportHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func (h *ReportHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, ErrForbidden) {
		utils.RespondError(w, http.StatusForbidden, err, "permission denied")
		return
	}
	h.Logger.GetLogger().Error(message, zap.Error(err))
	utils.RespondError(w, http.StatusInternalServerError, err, message)
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	stats, err := h.Service.Dashboard(r.Context(), user)
	if err != nil {
		h.respondServiceError(w, err, "failed to compute dashboard")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) ExportEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	data, err := h.Service.ExportEquipment(r.Context(), user)
	if err != nil {
		h.respondServiceError(w, err, "failed to export equipment")
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "equipment.xlsx"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.GetLogger().Warn("failed to write export", zap.Error(err))
	}
}
