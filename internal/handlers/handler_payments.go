package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/dto"
	"github.com/openbooks-app/openbooks_backend/internal/middleware"
)

// paymentHandler handles HTTP requests for payment recording.
type paymentHandler struct {
	paymentRecording portssvc.PaymentRecordingSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(paymentRecording portssvc.PaymentRecordingSvcFacade) *paymentHandler {
	return &paymentHandler{paymentRecording: paymentRecording}
}

// registerPaymentRoutes registers payment recording routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentRecording portssvc.PaymentRecordingSvcFacade) {
	h := newPaymentHandler(paymentRecording)
	rg.POST("/payments", h.recordInvoicePayment)
	rg.POST("/bill-payments", h.recordBillPayment)
}

// recordInvoicePayment godoc
// @Summary Record a customer payment
// @Description Records a payment, posts the cash entry and applies the amounts to the target invoices
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordInvoicePaymentRequest true "Payment details"
// @Success 200 {object} dto.PaymentResult "Recording result"
// @Failure 400 {object} map[string]string "Invalid payment data"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 502 {object} map[string]string "Data service unavailable"
// @Router /payments [post]
func (h *paymentHandler) recordInvoicePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.RecordInvoicePaymentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordInvoicePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.paymentRecording.RecordInvoicePayment(c.Request.Context(), req, actingUserID)
	if err != nil {
		respondPostingError(c, logger, "customer", req.CustomerID, err)
		return
	}

	logger.Info("Customer payment recorded", slog.String("payment_id", result.PaymentID), slog.String("entry_id", result.JournalEntryID))
	c.JSON(http.StatusOK, result)
}

// recordBillPayment godoc
// @Summary Record a vendor payment
// @Description Records a bill payment, posts the cash entry and applies the amounts to the target bills
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordBillPaymentRequest true "Payment details"
// @Success 200 {object} dto.BillPaymentResult "Recording result"
// @Failure 400 {object} map[string]string "Invalid payment data"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 502 {object} map[string]string "Data service unavailable"
// @Router /bill-payments [post]
func (h *paymentHandler) recordBillPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.RecordBillPaymentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordBillPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.paymentRecording.RecordBillPayment(c.Request.Context(), req, actingUserID)
	if err != nil {
		respondPostingError(c, logger, "vendor", req.VendorID, err)
		return
	}

	logger.Info("Vendor payment recorded", slog.String("bill_payment_id", result.BillPaymentID), slog.String("entry_id", result.JournalEntryID))
	c.JSON(http.StatusOK, result)
}
