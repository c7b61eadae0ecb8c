package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a cash receipt from a customer, applied to one or more
// invoices. Payments are immutable after creation; corrections use void plus
// a new payment.
type Payment struct {
	PaymentID      string          `json:"paymentID"` // Primary key (UUID)
	PaymentNumber  string          `json:"paymentNumber"` // Human-readable, PMT-…
	CustomerID     string          `json:"customerID"`
	PaymentDate    time.Time       `json:"paymentDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	JournalEntryID string          `json:"journalEntryID"`
	AuditFields
}

// PaymentApplication links a portion of a payment to the invoice it settles.
type PaymentApplication struct {
	ApplicationID string          `json:"applicationID"` // Primary key (UUID)
	PaymentID     string          `json:"paymentID"`     // FK -> Payment.paymentID
	InvoiceID     string          `json:"invoiceID"`     // FK -> Invoice.invoiceID
	AmountApplied decimal.Decimal `json:"amountApplied"`
}

// BillPayment records a cash disbursement to a vendor, applied to one or
// more bills.
type BillPayment struct {
	BillPaymentID  string          `json:"billPaymentID"` // Primary key (UUID)
	PaymentNumber  string          `json:"paymentNumber"` // Human-readable, BP-…
	VendorID       string          `json:"vendorID"`
	PaymentDate    time.Time       `json:"paymentDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	JournalEntryID string          `json:"journalEntryID"`
	AuditFields
}

// BillPaymentApplication links a portion of a bill payment to the bill it
// settles.
type BillPaymentApplication struct {
	ApplicationID string          `json:"applicationID"` // Primary key (UUID)
	BillPaymentID string          `json:"billPaymentID"` // FK -> BillPayment.billPaymentID
	BillID        string          `json:"billID"`        // FK -> Bill.billID
	AmountApplied decimal.Decimal `json:"amountApplied"`
}
