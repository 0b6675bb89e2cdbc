package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"content-ledger/pkg/logger"
	"content-ledger/pkg/metrics"
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

// Call carries the host-supplied context of one ledger operation.
type Call struct {
	Caller string
	Height uint64
}

// Clock supplies the monotonically increasing height stamped on calls.
type Clock interface {
	Height() uint64
}

// UnixClock uses wall-clock seconds as the height.
type UnixClock struct{}

func (UnixClock) Height() uint64 {
	return uint64(time.Now().Unix())
}

// Settlement is the value-transfer collaborator. It runs on the calling
// operation's store so a failure anywhere in the call undoes the transfer.
type Settlement interface {
	Transfer(store persistent.Store, transfer entity.Transfer) error
}

// EventPublisher receives events after their call has committed.
type EventPublisher interface {
	Publish(event entity.Event)
}

// ContentCache is a read-through cache for content details.
type ContentCache interface {
	Get(ctx context.Context, id uint64) (*entity.ContentItem, bool)
	Set(ctx context.Context, content *entity.ContentItem)
	Invalidate(ctx context.Context, id uint64)
}

// SnapshotUploader stores an encoded ledger snapshot and returns its URL.
type SnapshotUploader interface {
	Upload(key string, data []byte, contentType string) (string, error)
}

// Deps wires the shared store and collaborators into every ledger usecase.
type Deps struct {
	Repo       persistent.LedgerRepository
	Settlement Settlement
	// Owner is the privileged identity fixed at deployment.
	Owner string
	// Custody is the wallet holding captured payments and unpaid royalties.
	Custody  string
	Events   EventPublisher
	Cache    ContentCache
	Uploader SnapshotUploader
	Metrics  *metrics.Metrics
	Logger   *logger.Logger
}

type ledgerCore struct {
	repo       persistent.LedgerRepository
	settlement Settlement
	owner      string
	custody    string
	events     EventPublisher
	cache      ContentCache
	uploader   SnapshotUploader
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

func newLedgerCore(deps Deps) ledgerCore {
	log := deps.Logger
	if log == nil {
		log = logger.New()
	}
	return ledgerCore{
		repo:       deps.Repo,
		settlement: deps.Settlement,
		owner:      deps.Owner,
		custody:    deps.Custody,
		events:     deps.Events,
		cache:      deps.Cache,
		uploader:   deps.Uploader,
		metrics:    deps.Metrics,
		logger:     log,
	}
}

// run executes fn as one atomic ledger call. Ledger codes come back
// unchanged; anything else is logged and wrapped.
func (c *ledgerCore) run(ctx context.Context, operation string, fn func(store persistent.Store) error) error {
	err := c.repo.Atomic(ctx, fn)
	c.metrics.ObserveOperation(operation, resultLabel(err))
	if err == nil {
		return nil
	}

	var ledgerErr *entity.LedgerError
	if errors.As(err, &ledgerErr) {
		return err
	}
	c.logger.Error("Failed to %s: %v", operation, err)
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func (c *ledgerCore) emit(events ...entity.Event) {
	if c.events == nil {
		return
	}
	for _, event := range events {
		c.events.Publish(event)
	}
}

func (c *ledgerCore) isOwner(identity string) bool {
	return c.owner != "" && identity == c.owner
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var ledgerErr *entity.LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Name
	}
	return "error"
}
