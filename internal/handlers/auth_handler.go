package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uvcaspaces/booking-portal/internal/auth"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/middleware"
	"github.com/uvcaspaces/booking-portal/internal/models"
	"github.com/uvcaspaces/booking-portal/internal/store"
	"github.com/uvcaspaces/booking-portal/internal/validators"
)

// userStore is the credential-store surface the auth handlers depend on.
type userStore interface {
	Create(ctx context.Context, in store.NewUser) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	VerifyPassword(user *models.User, candidate string) bool
}

type AuthHandler struct {
	users    userStore
	tokens   *auth.TokenService
	denylist *auth.Denylist
}

func NewAuthHandler(users userStore, tokens *auth.TokenService, denylist *auth.Denylist) *AuthHandler {
	return &AuthHandler{
		users:    users,
		tokens:   tokens,
		denylist: denylist,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Company   string `json:"company"`

	// The public role field is deliberately absent: everyone registers
	// as a plain user.
	TermsAccepted bool `json:"termsAccepted" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "Missing or malformed fields.", err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	user, err := h.users.Create(c.Request.Context(), store.NewUser{
		Username:  req.Username,
		Email:     email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			httperr.Conflict(c, "user_already_exists", "A user with this email or username already exists.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_create_user", "Could not create the account.", err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a session token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "Missing credentials.", err)
		return
	}

	login := req.Login
	if login == "" {
		login = req.Email
	}
	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" {
		httperr.BadRequest(c, "missing_login", "Provide an email or username.")
		return
	}

	user, err := h.users.FindByLogin(c.Request.Context(), login)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "internal_error", "Could not look up the account.", err)
		return
	}

	// The password is compared verbatim: registration hashed it untrimmed.
	if !h.users.VerifyPassword(user, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Account no longer exists.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "internal_error", "Could not load the account.", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout revokes the presented token's id until its natural expiry. With
// no redis configured this is a no-op and expiry remains the only
// invalidation.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, role := middleware.Identity(c)
	tokenID := c.MustGet(middleware.ContextTokenID).(string)

	claims := &auth.Claims{
		UserID:  userID,
		Role:    role,
		TokenID: tokenID,
	}
	if v, ok := c.Get(middleware.ContextTokenExpiry); ok {
		if exp, ok := v.(time.Time); ok {
			claims.ExpiresAt = exp
		}
	}

	if err := h.denylist.Revoke(c.Request.Context(), claims); err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "logout_failed", "Could not revoke the session.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
