package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"voyago/internal/domain"
	"voyago/internal/http/middleware"
	"voyago/internal/repositories"
	"voyago/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings/:id/invoice
func CreateBookingInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	svc := services.InvoiceService{RequestID: middleware.GetRequestID(c)}
	inv, err := svc.CreateForBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// GET /api/bookings/:id/invoice
func GetBookingInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	svc := services.InvoiceService{RequestID: middleware.GetRequestID(c)}
	inv, err := svc.GetByBookingID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GET /api/invoices/:number
func GetInvoice(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		RespondError(c, http.StatusBadRequest, "invoice number required", nil)
		return
	}

	svc := services.InvoiceService{RequestID: middleware.GetRequestID(c)}
	inv, err := svc.GetByNumber(number)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GET /api/invoices/:number/pdf
func GetInvoicePDF(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		RespondError(c, http.StatusBadRequest, "invoice number required", nil)
		return
	}

	svc := services.DocsService{
		InvoiceRepo: repositories.InvoiceRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateTaxInvoice(number)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondDomainError(c, err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to render invoice", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
