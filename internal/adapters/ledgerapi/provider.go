package ledgerapi

import (
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository port to one shared client.
func NewRepositoryProvider(client *Client) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:        NewInvoiceRepository(client),
		BillRepo:           NewBillRepository(client),
		JournalRepo:        NewJournalEntryRepository(client),
		AccountDefaultRepo: NewAccountDefaultRepository(client),
		PaymentRepo:        NewPaymentRepository(client),
		BillPaymentRepo:    NewBillPaymentRepository(client),
	}
}
