package handlers

import (
	"net/http"
	"strconv"

	"voyago/internal/domain/models"
	"voyago/internal/http/middleware"
	"voyago/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	ExperienceID      int64  `json:"experience_id"`
	ActivityID        *int64 `json:"activity_id"`
	CustomerName      string `json:"customer_name"`
	CustomerPhone     string `json:"customer_phone"`
	CustomerEmail     string `json:"customer_email"`
	BookingAmount     string `json:"booking_amount"`
	TotalParticipants int    `json:"total_participants"`
	BookingDate       string `json:"booking_date"`
	PickupLocation    string `json:"pickup_location"`
	SlotStartTime     string `json:"slot_start_time"`
	SlotEndTime       string `json:"slot_end_time"`
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	created, degraded, err := svc.CreateBooking(models.Booking{
		ExperienceID:      req.ExperienceID,
		ActivityID:        req.ActivityID,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		CustomerEmail:     req.CustomerEmail,
		BookingAmount:     req.BookingAmount,
		TotalParticipants: req.TotalParticipants,
		BookingDate:       req.BookingDate,
		PickupLocation:    req.PickupLocation,
		SlotStartTime:     req.SlotStartTime,
		SlotEndTime:       req.SlotEndTime,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":             created,
		"allocation_degraded": degraded,
	})
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	b, err := svc.GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
