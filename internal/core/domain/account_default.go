package domain

// AccountDefaultType is the closed set of semantic account roles the posting
// engine resolves to concrete ledger accounts. The remote store keys defaults
// by these values.
type AccountDefaultType string

const (
	AccountsReceivable AccountDefaultType = "ACCOUNTS_RECEIVABLE"
	AccountsPayable    AccountDefaultType = "ACCOUNTS_PAYABLE"
	DefaultRevenue     AccountDefaultType = "DEFAULT_REVENUE"
	DefaultCash        AccountDefaultType = "DEFAULT_CASH"
)

// DisplayName returns the human-readable role name used in configuration
// error messages.
func (t AccountDefaultType) DisplayName() string {
	switch t {
	case AccountsReceivable:
		return "Accounts Receivable"
	case AccountsPayable:
		return "Accounts Payable"
	case DefaultRevenue:
		return "Default Revenue"
	case DefaultCash:
		return "Default Cash"
	default:
		return string(t)
	}
}

// AccountDefault maps a semantic account role to a concrete ledger account.
// Only active defaults participate in posting.
type AccountDefault struct {
	DefaultID   string             `json:"defaultID"` // Primary key (UUID)
	AccountType AccountDefaultType `json:"accountType"`
	AccountID   string             `json:"accountID"` // FK -> ledger account
	IsActive    bool               `json:"isActive"`
	AuditFields
}
