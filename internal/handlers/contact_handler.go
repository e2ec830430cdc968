package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uvcaspaces/booking-portal/internal/audit"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/middleware"
	"github.com/uvcaspaces/booking-portal/internal/models"
	"github.com/uvcaspaces/booking-portal/internal/notify"
	"github.com/uvcaspaces/booking-portal/internal/store"
	"github.com/uvcaspaces/booking-portal/internal/validators"
)

// inquiryStore is the persistence surface the contact handlers depend on.
type inquiryStore interface {
	Create(ctx context.Context, inquiry *models.ContactInquiry) error
	List(ctx context.Context, f store.InquiryFilter) ([]models.ContactInquiry, error)
	UpdateStatus(ctx context.Context, id uint, status string, adminNotes *string) (*models.ContactInquiry, error)
}

type ContactHandler struct {
	inquiries inquiryStore
	notifier  *notify.Dispatcher
	audit     *audit.Dispatcher
}

func NewContactHandler(inquiries inquiryStore, notifier *notify.Dispatcher, auditDispatcher *audit.Dispatcher) *ContactHandler {
	return &ContactHandler{
		inquiries: inquiries,
		notifier:  notifier,
		audit:     auditDispatcher,
	}
}

// --------- Requests ---------

type SubmitContactRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	Service       *string `json:"service"`
	Message       string  `json:"message" binding:"required"`
	PreferredDate *string `json:"preferred_date"`
	Subscribe     bool    `json:"subscribe"`
}

type UpdateContactStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// --------- Handlers ---------

// Submit is the public contact form. The inquiry write is the operation;
// the staff notification is queued best-effort and can never fail or delay
// the response.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "Name, email and message are required.", err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailSyntaxValid(email) {
		httperr.BadRequest(c, "invalid_email", "Please provide a valid email address.")
		return
	}

	inquiry := models.ContactInquiry{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Service:   req.Service,
		Message:   strings.TrimSpace(req.Message),
		Subscribe: req.Subscribe,
		Status:    models.InquiryStatusNew,
	}

	if req.PreferredDate != nil && *req.PreferredDate != "" {
		d, err := time.Parse("2006-01-02", *req.PreferredDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_preferred_date", "Use YYYY-MM-DD for the preferred date.")
			return
		}
		inquiry.PreferredDate = &d
	}

	if err := h.inquiries.Create(c.Request.Context(), &inquiry); err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_save_inquiry", "Could not save the inquiry.", err)
		return
	}

	notification := notify.Notification{
		Name:          inquiry.Name,
		Email:         inquiry.Email,
		Phone:         inquiry.Phone,
		Message:       inquiry.Message,
		PreferredDate: inquiry.PreferredDate,
	}
	if inquiry.Service != nil {
		notification.Service = *inquiry.Service
	}
	h.notifier.Dispatch(notification)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for your inquiry! We will get back to you soon.",
		"data":    inquiry,
	})
}

// List is the admin dashboard view, newest first, with optional status and
// date-range filters.
func (h *ContactHandler) List(c *gin.Context) {
	var filter store.InquiryFilter

	filter.Status = c.Query("status")
	if s := c.Query("start_date"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			filter.StartDate = t
		}
	}
	if s := c.Query("end_date"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			filter.EndDate = t
		}
	}

	inquiries, err := h.inquiries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_list_inquiries", "Could not list inquiries.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    inquiries,
	})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "A status is required.", err)
		return
	}

	if !models.IsValidInquiryStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Valid statuses: new, in_progress, resolved, spam.")
		return
	}

	inquiry, err := h.inquiries.UpdateStatus(c.Request.Context(), id, req.Status, req.AdminNotes)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "inquiry_not_found", "Inquiry not found.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_update_inquiry", "Could not update the inquiry.", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "inquiry_status_changed",
		Entity:   "contact_inquiry",
		EntityID: &inquiry.ID,
		Metadata: gin.H{"status": req.Status},
	})

	c.JSON(http.StatusOK, inquiry)
}
