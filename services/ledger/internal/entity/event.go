package entity

const (
	EventContentCreated          = "ledger.content.created"
	EventContentOwnershipChanged = "ledger.content.ownership_transferred"
	EventPurchaseSettled         = "ledger.purchase.settled"
	EventRoyaltyWithdrawn        = "ledger.royalty.withdrawn"
	EventSubscriptionGranted     = "ledger.subscription.granted"
	EventSubscriptionExtended    = "ledger.subscription.extended"
	EventContentRated            = "ledger.content.rated"
	EventContentReported         = "ledger.content.reported"
)

// Event describes a committed state change. Attributes are flat strings so
// they serialize the same way on every transport.
type Event struct {
	Type       string            `json:"type"`
	Height     uint64            `json:"height"`
	Attributes map[string]string `json:"attributes"`
}

// Snapshot is the full public ledger state at a height.
type Snapshot struct {
	ID              string                `json:"id"`
	Height          uint64                `json:"height"`
	Contents        []*ContentItem        `json:"contents"`
	RoyaltyBalances []*RoyaltyBalance     `json:"royalty_balances"`
	AccessGrants    []*PremiumAccessGrant `json:"access_grants"`
	Subscriptions   []*Subscription       `json:"subscriptions"`
	Ratings         []*ContentRating      `json:"ratings"`
	AvgRatings      []*ContentAvgRating   `json:"avg_ratings"`
	Reports         []*ContentReport      `json:"reports"`
	Counts          map[string]int        `json:"counts"`
}
