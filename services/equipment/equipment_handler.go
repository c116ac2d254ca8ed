package equipmentservice

import (
	"errors"
	"net/http"

	"labtrack/providers"
	"labtrack/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type EquipmentHandler struct {
	Service        EquipmentService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewEquipmentHandler(service EquipmentService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *EquipmentHandler {
	return &EquipmentHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

var validate = validator.New()

func (h *EquipmentHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrForbidden):
		utils.RespondError(w, http.StatusForbidden, err, "permission denied")
	case errors.Is(err, ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "equipment not found")
	case errors.Is(err, ErrInvalid):
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
	default:
		h.Logger.GetLogger().Error(message, zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, err, message)
	}
}

func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}

	var req CreateEquipmentReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid equipment input")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	eq, err := h.Service.CreateEquipment(r.Context(), user, req)
	if err != nil {
		h.respondServiceError(w, err, "failed to add equipment")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"msg":       "equipment created successfully",
		"equipment": eq,
	})
}

func (h *EquipmentHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}

	var req UpdateEquipmentReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	eq, err := h.Service.UpdateEquipment(r.Context(), user, chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to update equipment")
		return
	}
	utils.RespondJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) RetireEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	eq, err := h.Service.RetireEquipment(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to retire equipment")
		return
	}
	utils.RespondJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	if err := h.Service.DeleteEquipment(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err, "failed to delete equipment")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "equipment deleted successfully"})
}

func (h *EquipmentHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	eq, err := h.Service.GetEquipment(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch equipment")
		return
	}
	utils.RespondJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}

	query := r.URL.Query()
	filter := EquipmentFilter{
		Search:   query.Get("search"),
		Status:   query.Get("status"),
		Category: query.Get("category"),
		SortBy:   query.Get("sort"),
	}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	list, err := h.Service.ListEquipment(r.Context(), user, filter)
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch equipment")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"equipment": list})
}

func (h *EquipmentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized user")
		return
	}
	categories, err := h.Service.ListCategories(r.Context(), user)
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch categories")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
