package entity

import "fmt"

// LedgerError is a coded rejection from the closed ledger taxonomy. Values
// are sentinels; compare with errors.Is.
type LedgerError struct {
	Code uint32
	Name string
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Name, e.Code)
}

var (
	ErrNotAuthorized        = &LedgerError{Code: 100, Name: "NotAuthorized"}
	ErrInvalidAmount        = &LedgerError{Code: 101, Name: "InvalidAmount"}
	ErrSubscriptionExists   = &LedgerError{Code: 102, Name: "SubscriptionExists"}
	ErrSubscriptionNotFound = &LedgerError{Code: 103, Name: "SubscriptionNotFound"}
	ErrContentNotFound      = &LedgerError{Code: 104, Name: "ContentNotFound"}
	ErrInsufficientBalance  = &LedgerError{Code: 105, Name: "InsufficientBalance"}
	ErrTransferFailed       = &LedgerError{Code: 106, Name: "TransferFailed"}
	ErrInvalidRoyalty       = &LedgerError{Code: 107, Name: "InvalidRoyalty"}
	ErrInvalidRating        = &LedgerError{Code: 108, Name: "InvalidRating"}
	ErrAlreadyReported      = &LedgerError{Code: 109, Name: "AlreadyReported"}
	// ErrProfileExists belongs to creator profiles, which have no operations yet.
	ErrProfileExists = &LedgerError{Code: 110, Name: "ProfileExists"}
)

// LedgerErrors lists the taxonomy in code order.
var LedgerErrors = []*LedgerError{
	ErrNotAuthorized,
	ErrInvalidAmount,
	ErrSubscriptionExists,
	ErrSubscriptionNotFound,
	ErrContentNotFound,
	ErrInsufficientBalance,
	ErrTransferFailed,
	ErrInvalidRoyalty,
	ErrInvalidRating,
	ErrAlreadyReported,
	ErrProfileExists,
}
