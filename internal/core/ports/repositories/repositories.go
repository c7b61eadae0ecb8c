package repositories

// RepositoryProvider bundles every repository port the service layer needs,
// so wiring code can pass a single value around.
type RepositoryProvider struct {
	InvoiceRepo        InvoiceRepositoryFacade
	BillRepo           BillRepositoryFacade
	JournalRepo        JournalEntryRepositoryFacade
	AccountDefaultRepo AccountDefaultReader
	PaymentRepo        PaymentWriter
	BillPaymentRepo    BillPaymentWriter
}
