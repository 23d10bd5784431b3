package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/middleware"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/session"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Authenticator is the sign-in side of the session provider
type Authenticator interface {
	Login(ctx context.Context, email, password, totpCode string) (session.LoginResult, error)
	Logout() session.Session
	TTL() time.Duration
}

type Handler struct {
	auth         Authenticator
	cookieSecure bool
}

func NewHandler(auth Authenticator, cookieSecure bool) *Handler {
	return &Handler{auth: auth, cookieSecure: cookieSecure}
}

// SignIn handles member login
func (h *Handler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		TOTPCode string `json:"totpCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email and password are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, req.TOTPCode)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, "Invalid email or password")
		case errors.Is(err, session.ErrInactive):
			utils.ForbiddenResponse(c, "Account is inactive")
		case errors.Is(err, session.ErrTOTPRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authenticator code required", "totpRequired": true})
		case errors.Is(err, session.ErrInvalidTOTP):
			utils.UnauthorizedResponse(c, "Invalid authenticator code")
		default:
			utils.ErrorResponse(c, store.StatusCode(err), "Sign in is temporarily unavailable")
		}
		return
	}

	c.SetCookie(
		middleware.TokenCookie,
		result.Token,
		int(h.auth.TTL().Seconds()),
		"/",
		"",
		h.cookieSecure,
		true,
	)

	utils.SuccessResponse(c, gin.H{
		"member":     result.Session.Member,
		"token":      result.Token,
		"expiresAt":  result.ExpiresAt,
		"redirectTo": middleware.TakeRedirect(c),
	}, "Signed in successfully")
}

// SignOut handles member logout
func (h *Handler) SignOut(c *gin.Context) {
	c.SetCookie(
		middleware.TokenCookie,
		"",
		-1,
		"/",
		"",
		h.cookieSecure,
		true,
	)
	utils.SuccessResponse(c, h.auth.Logout(), "Signed out successfully")
}

// Me returns the caller's session; visitors get the unauthenticated session rather than an error
func (h *Handler) Me(c *gin.Context) {
	utils.SuccessResponseWithData(c, middleware.CurrentSession(c))
}
