package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uvcaspaces/booking-portal/internal/audit"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/httpresp"
	"github.com/uvcaspaces/booking-portal/internal/middleware"
	"github.com/uvcaspaces/booking-portal/internal/store"
	"github.com/uvcaspaces/booking-portal/internal/validators"
)

type UserHandler struct {
	users *store.UserStore
	audit *audit.Dispatcher
}

func NewUserHandler(users *store.UserStore, auditDispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{users: users, audit: auditDispatcher}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_list_users", "Could not list users.", err)
		return
	}

	httpresp.List(c, users)
}

type UpdateAdminEmailRequest struct {
	Email string `json:"email" binding:"required,email"`

	// Used only when no admin account exists yet and one has to be
	// created. Ignored otherwise.
	InitialPassword string `json:"initial_password"`
}

// UpdateAdminEmail re-points the admin account at a new address, creating
// the account when the deployment has none.
func (h *UserHandler) UpdateAdminEmail(c *gin.Context) {
	actorID, _ := middleware.Identity(c)

	var req UpdateAdminEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "An email is required.", err)
		return
	}

	if !validators.IsEmailSyntaxValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Please provide a valid email address.")
		return
	}

	password := req.InitialPassword
	if password == "" {
		password = randomPassword()
	}

	admin, err := h.users.PromoteAdminEmail(c.Request.Context(), req.Email, password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			httperr.Conflict(c, "email_taken", "Another account already uses this email.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_update_admin", "Could not update the admin account.", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "admin_email_changed",
		Entity:   "user",
		EntityID: &admin.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin email updated successfully",
		"email":   admin.Email,
	})
}

// randomPassword seeds a freshly created admin account. The holder must
// reset it through the normal flow before first use.
func randomPassword() string {
	return uuid.NewString()
}
