package handler

import (
	"errors"
	"net/http"

	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/Siddaarth-Babu/MOOC/internal/response"
	"github.com/Siddaarth-Babu/MOOC/internal/service"
	"github.com/Siddaarth-Babu/MOOC/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AuthHandler serves signup and login.
type AuthHandler struct {
	accounts *service.AccountService
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		log:      log.With().Str("component", "auth_handler").Logger(),
	}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	role, err := h.accounts.Signup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidRole):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidRole)
		case errors.Is(err, service.ErrEmailTaken):
			response.Fail(c, http.StatusBadRequest, response.ErrEmailTaken)
		case errors.Is(err, service.ErrPasswordTooLong):
			response.Fail(c, http.StatusBadRequest, response.ErrPasswordTooLong)
		case errors.Is(err, service.ErrInvalidEnrollmentKey):
			response.Fail(c, http.StatusForbidden, response.ErrInvalidEnrollmentKey)
		default:
			h.log.Error().Err(err).Msg("Signup failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrSignupFailed)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Account created successfully.",
		"role":    role,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		h.log.Error().Err(err).Msg("Login failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}
