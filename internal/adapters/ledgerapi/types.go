package ledgerapi

import (
	"time"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Wire representations of the data service's resources. Field names follow
// the service's JSON contract; mapping to and from domain entities stays in
// this package so the core never sees wire shapes.

type invoicePayload struct {
	ID               string          `json:"id"`
	InvoiceNumber    string          `json:"invoiceNumber"`
	CustomerID       string          `json:"customerId"`
	InvoiceDate      time.Time       `json:"invoiceDate"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	AmountPaid       decimal.Decimal `json:"amountPaid"`
	Status           string          `json:"status"`
	JournalEntryID   *string         `json:"journalEntryId"`
	ReversingEntryID *string         `json:"reversingEntryId"`
	PostedBy         string          `json:"postedBy"`
}

func (p invoicePayload) toDomain() *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:        p.ID,
		InvoiceNumber:    p.InvoiceNumber,
		CustomerID:       p.CustomerID,
		InvoiceDate:      p.InvoiceDate,
		TotalAmount:      p.TotalAmount,
		AmountPaid:       p.AmountPaid,
		Status:           domain.DocumentStatus(p.Status),
		JournalEntryID:   p.JournalEntryID,
		ReversingEntryID: p.ReversingEntryID,
		PostedBy:         p.PostedBy,
	}
}

type billPayload struct {
	ID               string          `json:"id"`
	BillNumber       string          `json:"billNumber"`
	VendorID         string          `json:"vendorId"`
	BillDate         time.Time       `json:"billDate"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	AmountPaid       decimal.Decimal `json:"amountPaid"`
	Status           string          `json:"status"`
	JournalEntryID   *string         `json:"journalEntryId"`
	ReversingEntryID *string         `json:"reversingEntryId"`
	PostedBy         string          `json:"postedBy"`
}

func (p billPayload) toDomain() *domain.Bill {
	return &domain.Bill{
		BillID:           p.ID,
		BillNumber:       p.BillNumber,
		VendorID:         p.VendorID,
		BillDate:         p.BillDate,
		TotalAmount:      p.TotalAmount,
		AmountPaid:       p.AmountPaid,
		Status:           domain.DocumentStatus(p.Status),
		JournalEntryID:   p.JournalEntryID,
		ReversingEntryID: p.ReversingEntryID,
		PostedBy:         p.PostedBy,
	}
}

type documentLinePayload struct {
	ID          string          `json:"id"`
	DocumentID  string          `json:"documentId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	AccountID   string          `json:"accountId"`
}

func (p documentLinePayload) toDomain() domain.DocumentLine {
	return domain.DocumentLine{
		LineID:      p.ID,
		DocumentID:  p.DocumentID,
		Description: p.Description,
		Amount:      p.Amount,
		AccountID:   p.AccountID,
	}
}

type documentLinesResponse struct {
	Lines []documentLinePayload `json:"lines"`
}

type accountDefaultPayload struct {
	ID          string `json:"id"`
	AccountType string `json:"accountType"`
	AccountID   string `json:"accountId"`
	IsActive    bool   `json:"isActive"`
}

func (p accountDefaultPayload) toDomain() domain.AccountDefault {
	return domain.AccountDefault{
		DefaultID:   p.ID,
		AccountType: domain.AccountDefaultType(p.AccountType),
		AccountID:   p.AccountID,
		IsActive:    p.IsActive,
	}
}

type accountDefaultsResponse struct {
	Defaults []accountDefaultPayload `json:"defaults"`
}

type journalEntryPayload struct {
	ID              string    `json:"id"`
	TransactionDate time.Time `json:"transactionDate"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedBy       string    `json:"createdBy"`
}

func fromDomainEntry(entry domain.JournalEntry) journalEntryPayload {
	return journalEntryPayload{
		ID:              entry.EntryID,
		TransactionDate: entry.TransactionDate,
		Description:     entry.Description,
		Status:          string(entry.Status),
		CreatedBy:       entry.CreatedBy,
	}
}

type journalEntryLinePayload struct {
	ID          string          `json:"id"`
	EntryID     string          `json:"entryId"`
	AccountID   string          `json:"accountId"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	Position    int             `json:"position"`
}

func fromDomainEntryLine(line domain.JournalEntryLine) journalEntryLinePayload {
	return journalEntryLinePayload{
		ID:          line.LineID,
		EntryID:     line.EntryID,
		AccountID:   line.AccountID,
		Debit:       line.Debit,
		Credit:      line.Credit,
		Description: line.Description,
		Position:    line.Position,
	}
}

func (p journalEntryLinePayload) toDomain() domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:      p.ID,
		EntryID:     p.EntryID,
		AccountID:   p.AccountID,
		Debit:       p.Debit,
		Credit:      p.Credit,
		Description: p.Description,
		Position:    p.Position,
	}
}

type journalEntryLinesResponse struct {
	Lines []journalEntryLinePayload `json:"lines"`
}

type paymentPayload struct {
	ID             string          `json:"id"`
	PaymentNumber  string          `json:"paymentNumber"`
	CustomerID     string          `json:"customerId"`
	PaymentDate    time.Time       `json:"paymentDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	JournalEntryID string          `json:"journalEntryId"`
	CreatedBy      string          `json:"createdBy"`
}

func fromDomainPayment(p domain.Payment) paymentPayload {
	return paymentPayload{
		ID:             p.PaymentID,
		PaymentNumber:  p.PaymentNumber,
		CustomerID:     p.CustomerID,
		PaymentDate:    p.PaymentDate,
		TotalAmount:    p.TotalAmount,
		PaymentMethod:  p.PaymentMethod,
		JournalEntryID: p.JournalEntryID,
		CreatedBy:      p.CreatedBy,
	}
}

type paymentApplicationPayload struct {
	ID            string          `json:"id"`
	PaymentID     string          `json:"paymentId"`
	InvoiceID     string          `json:"invoiceId"`
	AmountApplied decimal.Decimal `json:"amountApplied"`
}

type billPaymentPayload struct {
	ID             string          `json:"id"`
	PaymentNumber  string          `json:"paymentNumber"`
	VendorID       string          `json:"vendorId"`
	PaymentDate    time.Time       `json:"paymentDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	JournalEntryID string          `json:"journalEntryId"`
	CreatedBy      string          `json:"createdBy"`
}

func fromDomainBillPayment(p domain.BillPayment) billPaymentPayload {
	return billPaymentPayload{
		ID:             p.BillPaymentID,
		PaymentNumber:  p.PaymentNumber,
		VendorID:       p.VendorID,
		PaymentDate:    p.PaymentDate,
		TotalAmount:    p.TotalAmount,
		PaymentMethod:  p.PaymentMethod,
		JournalEntryID: p.JournalEntryID,
		CreatedBy:      p.CreatedBy,
	}
}

type billPaymentApplicationPayload struct {
	ID            string          `json:"id"`
	BillPaymentID string          `json:"billPaymentId"`
	BillID        string          `json:"billId"`
	AmountApplied decimal.Decimal `json:"amountApplied"`
}

// postedPatch marks a document posted. The data service honors it only while
// the document's journal_entry_id is null (requested via expect=unposted).
type postedPatch struct {
	JournalEntryID string `json:"journalEntryId"`
	Status         string `json:"status"`
	PostedBy       string `json:"postedBy"`
}

type voidedPatch struct {
	Status           string `json:"status"`
	ReversingEntryID string `json:"reversingEntryId"`
	UpdatedBy        string `json:"updatedBy"`
}

type paymentStatePatch struct {
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Status     string          `json:"status"`
	UpdatedBy  string          `json:"updatedBy"`
}
