package adaptor

import (
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	// Decode request body
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}

	// Validate request
	req.Normalize()
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}

	req.Normalize()
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me (protected)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	// Get user ID from context (set by auth middleware)
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.Me(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	handleServiceError(h.log, w, err, operation)
}
