package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/aurafix3-tech/aurafix-cosmetics/internal/domain/errors"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/dto"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/middleware"
)

// AuthHandler serves registration and login. A successful call issues the
// session token as both an auth cookie and an Authorization header.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		c.Status(registerErrorStatus(err))
		return
	}
	issueSession(c, token)
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.Status(http.StatusUnauthorized)
		} else {
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	issueSession(c, token)
}

func bindCredentials(c *gin.Context) (dto.AuthRequest, bool) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return dto.AuthRequest{}, false
	}
	return req, true
}

func registerErrorStatus(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func issueSession(c *gin.Context, token string) {
	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}
