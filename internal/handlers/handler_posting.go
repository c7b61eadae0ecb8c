package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/middleware"
)

// postingHandler handles HTTP requests for document posting and voiding.
type postingHandler struct {
	invoicePosting portssvc.InvoicePostingSvcFacade
	billPosting    portssvc.BillPostingSvcFacade
}

// newPostingHandler creates a new postingHandler.
func newPostingHandler(invoicePosting portssvc.InvoicePostingSvcFacade, billPosting portssvc.BillPostingSvcFacade) *postingHandler {
	return &postingHandler{
		invoicePosting: invoicePosting,
		billPosting:    billPosting,
	}
}

// registerPostingRoutes registers posting and voiding routes.
func registerPostingRoutes(rg *gin.RouterGroup, invoicePosting portssvc.InvoicePostingSvcFacade, billPosting portssvc.BillPostingSvcFacade) {
	h := newPostingHandler(invoicePosting, billPosting)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/:invoiceID/post", h.postInvoice)
		invoices.POST("/:invoiceID/void", h.voidInvoice)
	}
	bills := rg.Group("/bills")
	{
		bills.POST("/:billID/post", h.postBill)
		bills.POST("/:billID/void", h.voidBill)
	}
}

// postInvoice godoc
// @Summary Post an invoice to the ledger
// @Description Builds a balanced journal entry from the invoice and marks the invoice posted
// @Tags posting
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.PostInvoiceResult "Posting result"
// @Failure 400 {object} map[string]string "Invoice cannot be posted"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice already posted"
// @Failure 502 {object} map[string]string "Data service unavailable"
// @Router /invoices/{invoiceID}/post [post]
func (h *postingHandler) postInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.invoicePosting.PostInvoice(c.Request.Context(), invoiceID, actingUserID)
	if err != nil {
		respondPostingError(c, logger, "invoice", invoiceID, err)
		return
	}

	logger.Info("Invoice posted successfully", slog.String("invoice_id", invoiceID), slog.String("entry_id", result.JournalEntryID))
	c.JSON(http.StatusOK, result)
}

// voidInvoice godoc
// @Summary Void a posted invoice
// @Description Creates a reversing journal entry and marks the invoice voided
// @Tags posting
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.VoidResult "Void result"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice not posted or already voided"
// @Failure 502 {object} map[string]string "Data service unavailable"
// @Router /invoices/{invoiceID}/void [post]
func (h *postingHandler) voidInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.invoicePosting.VoidInvoice(c.Request.Context(), invoiceID, actingUserID)
	if err != nil {
		respondPostingError(c, logger, "invoice", invoiceID, err)
		return
	}

	logger.Info("Invoice voided successfully", slog.String("invoice_id", invoiceID), slog.String("reversing_entry_id", result.ReversingJournalEntryID))
	c.JSON(http.StatusOK, result)
}

// postBill godoc
// @Summary Post a bill to the ledger
// @Description Builds a balanced journal entry from the bill and marks the bill posted
// @Tags posting
// @Produce  json
// @Param   billID path string true "Bill ID"
// @Success 200 {object} dto.PostBillResult "Posting result"
// @Failure 400 {object} map[string]string "Bill cannot be posted"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 409 {object} map[string]string "Bill already posted"
// @Failure 502 {object} map[string]string "Data service unavailable"
// @Router /bills/{billID}/post [post]
func (h *postingHandler) postBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.billPosting.PostBill(c.Request.Context(), billID, actingUserID)
	if err != nil {
		respondPostingError(c, logger, "bill", billID, err)
		return
	}

	logger.Info("Bill posted successfully", slog.String("bill_id", billID), slog.String("entry_id", result.JournalEntryID))
	c.JSON(http.StatusOK, result)
}

// voidBill godoc
// @Summary Void a posted bill
// @Description Creates a reversing journal entry and marks the bill voided
// @Tags posting
// @Produce  json
// @Param   billID path string true "Bill ID"
// @Success 200 {object} dto.VoidResult "Void result"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 409 {object} map[string]string "Bill not posted or already voided"
// @Failure 502 {object} map[string]string "Data service unavailable"
// @Router /bills/{billID}/void [post]
func (h *postingHandler) voidBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	actingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.billPosting.VoidBill(c.Request.Context(), billID, actingUserID)
	if err != nil {
		respondPostingError(c, logger, "bill", billID, err)
		return
	}

	logger.Info("Bill voided successfully", slog.String("bill_id", billID), slog.String("reversing_entry_id", result.ReversingJournalEntryID))
	c.JSON(http.StatusOK, result)
}

// respondPostingError maps service errors from posting operations to HTTP
// status codes.
func respondPostingError(c *gin.Context, logger *slog.Logger, docKind, docID string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Document not found", slog.String(docKind+"_id", docID))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyPosted),
		errors.Is(err, apperrors.ErrAlreadyVoided),
		errors.Is(err, apperrors.ErrNotPosted):
		logger.Warn("Document lifecycle conflict", slog.String(docKind+"_id", docID), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoLines),
		errors.Is(err, apperrors.ErrMissingLineAccount),
		errors.Is(err, apperrors.ErrUnbalanced),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Document cannot be posted", slog.String(docKind+"_id", docID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConfiguration):
		logger.Error("Posting configuration error", slog.String(docKind+"_id", docID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRemoteService):
		logger.Error("Data service error", slog.String(docKind+"_id", docID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Accounting data service unavailable"})
	default:
		logger.Error("Posting operation failed", slog.String(docKind+"_id", docID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
