package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/uvcaspaces/booking-portal/internal/audit"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/middleware"
	"github.com/uvcaspaces/booking-portal/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	// Pointer so presence is required but a free (zero-price) service binds.
	Price       *float64 `json:"price" binding:"required,min=0"`
	DurationMin int      `json:"duration_min" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

// List is public. ?active=true|false narrows by the active flag.
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Service{})

	switch c.Query("active") {
	case "true":
		q = q.Where("active = ?", true)
	case "false":
		q = q.Where("active = ?", false)
	}

	var services []models.Service
	if err := q.
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_list_services", "Could not list services.", err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_get_service", "Could not load the service.", err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "Name, description, price and duration are required.", err)
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_create_service", "Could not create the service.", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_get_service", "Could not load the service.", err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "Malformed update payload.", err)
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_update_service", "Could not update the service.", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: req,
	})

	c.JSON(http.StatusOK, svc)
}

// Delete hard-deletes a service, but only while nothing references it.
// Services with bookings must be deactivated instead.
func (h *ServiceHandler) Delete(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_get_service", "Could not load the service.", err)
		return
	}

	var bookingCount int64
	if err := h.db.Model(&models.Booking{}).
		Where("service_id = ?", svc.ID).
		Count(&bookingCount).Error; err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_delete_service", "Could not check bookings.", err)
		return
	}
	if bookingCount > 0 {
		httperr.BadRequest(c, "service_has_bookings", "Cannot delete a service with existing bookings. Deactivate it instead.")
		return
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_delete_service", "Could not delete the service.", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	c.Status(http.StatusNoContent)
}
