package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoicePaymentApplicationRequest applies part of a payment to one invoice.
type InvoicePaymentApplicationRequest struct {
	InvoiceID     string          `json:"invoiceID" binding:"required"`
	AmountApplied decimal.Decimal `json:"amountApplied" binding:"required,gt=0"`
}

// RecordInvoicePaymentRequest carries the input for recording a customer
// payment against one or more invoices.
type RecordInvoicePaymentRequest struct {
	CustomerID    string                             `json:"customerID" binding:"required"`
	PaymentDate   time.Time                          `json:"paymentDate" binding:"required"`
	TotalAmount   decimal.Decimal                    `json:"totalAmount" binding:"required,gt=0"`
	PaymentMethod string                             `json:"paymentMethod"`
	Applications  []InvoicePaymentApplicationRequest `json:"applications" binding:"required,min=1,dive"`
}

// BillPaymentApplicationRequest applies part of a bill payment to one bill.
type BillPaymentApplicationRequest struct {
	BillID        string          `json:"billID" binding:"required"`
	AmountApplied decimal.Decimal `json:"amountApplied" binding:"required,gt=0"`
}

// RecordBillPaymentRequest carries the input for recording a vendor payment
// against one or more bills.
type RecordBillPaymentRequest struct {
	VendorID      string                          `json:"vendorID" binding:"required"`
	PaymentDate   time.Time                       `json:"paymentDate" binding:"required"`
	TotalAmount   decimal.Decimal                 `json:"totalAmount" binding:"required,gt=0"`
	PaymentMethod string                          `json:"paymentMethod"`
	Applications  []BillPaymentApplicationRequest `json:"applications" binding:"required,min=1,dive"`
}

// PaymentResult is returned by a successful invoice payment recording.
type PaymentResult struct {
	PaymentID         string          `json:"paymentID"`
	PaymentNumber     string          `json:"paymentNumber"`
	JournalEntryID    string          `json:"journalEntryID"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	ApplicationsCount int             `json:"applicationsCount"`
}

// BillPaymentResult is returned by a successful bill payment recording.
type BillPaymentResult struct {
	BillPaymentID     string          `json:"billPaymentID"`
	PaymentNumber     string          `json:"paymentNumber"`
	JournalEntryID    string          `json:"journalEntryID"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	ApplicationsCount int             `json:"applicationsCount"`
}
