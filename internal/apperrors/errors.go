package apperrors

import "errors"

// ErrNotFound indicates that a referenced document or journal entry does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAlreadyPosted indicates an attempt to post a document that already carries a journal entry.
var ErrAlreadyPosted = errors.New("document already posted")

// ErrAlreadyVoided indicates an attempt to void a document that is already voided.
var ErrAlreadyVoided = errors.New("document already voided")

// ErrNotPosted indicates an operation that requires a posted document was called on an unposted one.
var ErrNotPosted = errors.New("document not posted")

// ErrNoLines indicates a document has no line items and cannot be posted.
var ErrNoLines = errors.New("document has no lines")

// ErrMissingLineAccount indicates a document line lacks the account it must carry.
var ErrMissingLineAccount = errors.New("line is missing an account")

// ErrConfiguration indicates a required account default is missing or inactive.
var ErrConfiguration = errors.New("configuration error")

// ErrUnbalanced indicates a journal entry whose debits do not equal its credits.
var ErrUnbalanced = errors.New("journal entry debits do not equal credits")

// ErrRemoteService indicates the accounting-data service returned a failure.
// The wrapped message identifies which step of the orchestration failed so an
// operator can reconcile partial state by hand.
var ErrRemoteService = errors.New("accounting-data service error")
