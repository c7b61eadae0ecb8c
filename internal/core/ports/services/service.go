package services

// ServiceContainer holds all the engine services for dependency injection
// into the transport layer.
type ServiceContainer struct {
	InvoicePosting   InvoicePostingSvcFacade
	BillPosting      BillPostingSvcFacade
	PaymentRecording PaymentRecordingSvcFacade
	AccountDefaults  AccountDefaultsSvcFacade
}
