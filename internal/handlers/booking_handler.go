package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/uvcaspaces/booking-portal/internal/domain/booking"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/httpresp"
	"github.com/uvcaspaces/booking-portal/internal/middleware"
	ucBooking "github.com/uvcaspaces/booking-portal/internal/usecase/booking"
)

type BookingHandler struct {
	create   *ucBooking.CreateBooking
	get      *ucBooking.GetBooking
	update   *ucBooking.UpdateBooking
	delete   *ucBooking.DeleteBooking
	listMine *ucBooking.ListMyBookings
	listAll  *ucBooking.ListAllBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
	update *ucBooking.UpdateBooking,
	del *ucBooking.DeleteBooking,
	listMine *ucBooking.ListMyBookings,
	listAll *ucBooking.ListAllBookings,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		get:      get,
		update:   update,
		delete:   del,
		listMine: listMine,
		listAll:  listAll,
	}
}

// --------- Requests ---------

type TimeSlot struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type CreateBookingRequest struct {
	ServiceID uint     `json:"serviceId" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	TimeSlot  TimeSlot `json:"timeSlot" binding:"required"`
	Notes     string   `json:"notes"`
}

type UpdateBookingRequest struct {
	Date     *string `json:"date,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Status   *string `json:"status,omitempty"`
	TimeSlot *struct {
		Start *string `json:"start,omitempty"`
		End   *string `json:"end,omitempty"`
	} `json:"timeSlot,omitempty"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "Service, date and time slot are required.", err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		SlotStart: req.TimeSlot.Start,
		SlotEnd:   req.TimeSlot.End,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) Get(c *gin.Context) {
	userID, role := middleware.Identity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id, userID, role)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	userID, role := middleware.Identity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "Malformed update payload.", err)
		return
	}

	in := ucBooking.UpdateBookingInput{
		Date:   req.Date,
		Notes:  req.Notes,
		Status: req.Status,
	}
	if req.TimeSlot != nil {
		in.SlotStart = req.TimeSlot.Start
		in.SlotEnd = req.TimeSlot.End
	}

	b, err := h.update.Execute(c.Request.Context(), id, userID, role, in)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	userID, role := middleware.Identity(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, userID, role); err != nil {
		writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	bookings, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_list_bookings", "Could not list bookings.", err)
		return
	}

	httpresp.List(c, bookings)
}

// ListAll is the admin view over every booking, with optional status and
// date-range filters.
func (h *BookingHandler) ListAll(c *gin.Context) {
	filter := domain.ListFilter{
		Status: domain.Status(c.Query("status")),
	}
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

	bookings, err := h.listAll.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_list_bookings", "Could not list bookings.", err)
		return
	}

	httpresp.List(c, bookings)
}

// --------- Helpers ---------

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "The id must be numeric.")
		return 0, false
	}
	return uint(id), true
}

func writeBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "booking_not_found":
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case "service_not_found":
		httperr.BadRequest(c, "service_not_found", "The referenced service does not exist.")
	case "service_inactive":
		httperr.BadRequest(c, "service_inactive", "The referenced service is not bookable.")
	case "invalid_date":
		httperr.BadRequest(c, "invalid_date", "Use YYYY-MM-DD for the date.")
	case "invalid_time_slot":
		httperr.BadRequest(c, "invalid_time_slot", "Use HH:MM, with start before end.")
	case "invalid_status", "invalid_state":
		httperr.BadRequest(c, httperr.BusinessCode(err), "The requested status change is not allowed.")
	default:
		httperr.WriteErr(c, http.StatusInternalServerError, "internal_error", "Unexpected failure.", err)
	}
}
