package entity

import "time"

type TransactionType string

const (
	TransactionTypePurchase      TransactionType = "purchase"
	TransactionTypeSale          TransactionType = "sale"
	TransactionTypeRoyaltyPayout TransactionType = "royalty_payout"
	TransactionTypeTopUp         TransactionType = "topup"
)

type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Balance   uint64    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transaction is one side of a wallet movement. Amount is negative for debits.
type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ContentID     uint64          `json:"content_id,omitempty"`
	Type          TransactionType `json:"type"`
	Amount        int64           `json:"amount"`
	BalanceBefore uint64          `json:"balance_before"`
	BalanceAfter  uint64          `json:"balance_after"`
	Height        uint64          `json:"height"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Transfer moves Amount from one wallet to another. The transaction types
// label the debit and credit journal rows.
type Transfer struct {
	From       string
	To         string
	Amount     uint64
	ContentID  uint64
	Height     uint64
	DebitType  TransactionType
	CreditType TransactionType
}
