package userservice

import (
	"errors"
	"net/http"

	"labtrack/providers"
	"labtrack/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserHandler struct {
	Service        UserService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewUserHandler(service UserService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *UserHandler {
	return &UserHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

var validate = validator.New()

func (h *UserHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	var authErr *AuthError
	switch {
	case errors.As(err, &authErr):
		status := http.StatusUnauthorized
		switch authErr.Code {
		case CodeEmailTaken:
			status = http.StatusConflict
		case CodeRoleNotAllowed:
			status = http.StatusBadRequest
		case CodeUnknownEmail:
			status = http.StatusNotFound
		}
		utils.RespondJSON(w, status, authErr)
	case errors.Is(err, ErrForbidden):
		utils.RespondError(w, http.StatusForbidden, err, "permission denied")
	case errors.Is(err, ErrUserNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "user not found")
	case errors.Is(err, ErrSelfChange):
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
	case errors.Is(err, ErrFirebaseDisabled):
		utils.RespondError(w, http.StatusNotImplemented, err, err.Error())
	default:
		h.Logger.GetLogger().Error(message, zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, err, message)
	}
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	session, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to sign in")
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	session, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to sign up")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *UserHandler) FirebaseSignIn(w http.ResponseWriter, r *http.Request) {
	var req FirebaseSignInReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	session, err := h.Service.FirebaseSignIn(r.Context(), req.IDToken)
	if err != nil {
		h.respondServiceError(w, err, "failed to sign in through firebase")
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *UserHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	if err := h.Service.RequestPasswordReset(r.Context(), req); err != nil {
		h.respondServiceError(w, err, "failed to request password reset")
		return
	}
	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"message": "password reset requested"})
}

// SignOut only acknowledges; tokens are dropped by the client.
func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	me, err := h.Service.Me(r.Context(), user)
	if err != nil {
		h.respondServiceError(w, err, "failed to load current user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, me)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	users, err := h.Service.ListUsers(r.Context(), user)
	if err != nil {
		h.respondServiceError(w, err, "failed to list users")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *UserHandler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	var req ChangeRoleReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid role input")
		return
	}
	updated, err := h.Service.ChangeRole(r.Context(), user, chi.URLParam(r, "id"), req.Role)
	if err != nil {
		h.respondServiceError(w, err, "failed to change user role")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthMiddleware.GetUserFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	if err := h.Service.DeactivateUser(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err, "failed to deactivate user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "user deactivated"})
}
