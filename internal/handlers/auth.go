package handlers

import (
	"errors"
	"net/http"

	"github.com/DrOldGuy/model-railroad-scaler/internal/repository"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errSignUp = "could not create account"
	errSignIn = "could not sign in"
)

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) bindCredentials(c *gin.Context) (credentials, bool) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return in, false
	}
	return in, true
}

// @Summary      Create an account
// @Description  Accounts may add custom scales and read the conversion history.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentials        true  "Username and password"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	in, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), in.Username, in.Password)
	switch {
	case err == nil:
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, repository.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errSignUp, "sign_up_failed", err, "username", in.Username)
		return
	}

	if h.log != nil {
		h.log.Infow("account_created", "user_id", id, "username", in.Username)
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Sign in
// @Description  Returns a bearer token for the /api/v1 endpoints.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentials        true  "Username and password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	in, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), in.Username, in.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"token": token})
	case errors.Is(err, service.ErrInvalidCredentials):
		if h.log != nil {
			h.log.Infow("sign_in_rejected", "username", in.Username)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errSignIn, "sign_in_failed", err, "username", in.Username)
	}
}
