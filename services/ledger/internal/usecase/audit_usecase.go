package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"

	"github.com/google/uuid"
)

var errNoUploader = errors.New("snapshot storage is not configured")

// SnapshotResult locates an exported snapshot.
type SnapshotResult struct {
	ID     string `json:"id"`
	Height uint64 `json:"height"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}

type AuditUseCase interface {
	ExportSnapshot(ctx context.Context, call Call) (*SnapshotResult, error)
	// Snapshot reads every ledger table as of the last committed call.
	Snapshot(ctx context.Context, height uint64) (*entity.Snapshot, error)
}

type auditUseCase struct {
	ledgerCore
}

func NewAuditUseCase(deps Deps) AuditUseCase {
	return &auditUseCase{ledgerCore: newLedgerCore(deps)}
}

func (uc *auditUseCase) ExportSnapshot(ctx context.Context, call Call) (*SnapshotResult, error) {
	if !uc.isOwner(call.Caller) {
		uc.metrics.ObserveOperation("exportSnapshot", entity.ErrNotAuthorized.Name)
		return nil, entity.ErrNotAuthorized
	}
	if uc.uploader == nil {
		return nil, errNoUploader
	}

	snapshot, err := uc.Snapshot(ctx, call.Height)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := fmt.Sprintf("snapshots/%d.json", call.Height)
	url, err := uc.uploader.Upload(key, data, "application/json")
	if err != nil {
		uc.logger.Error("Failed to upload snapshot %s: %v", key, err)
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	uc.logger.Info("Exported snapshot %s at height %d to %s", snapshot.ID, call.Height, url)
	return &SnapshotResult{ID: snapshot.ID, Height: call.Height, Key: key, URL: url}, nil
}

func (uc *auditUseCase) Snapshot(ctx context.Context, height uint64) (*entity.Snapshot, error) {
	snapshot := &entity.Snapshot{ID: uuid.New().String(), Height: height}
	err := uc.run(ctx, "snapshot", func(store persistent.Store) error {
		var err error
		if snapshot.Contents, err = store.ListContents(); err != nil {
			return err
		}
		if snapshot.RoyaltyBalances, err = store.ListRoyaltyBalances(); err != nil {
			return err
		}
		if snapshot.AccessGrants, err = store.ListGrants(); err != nil {
			return err
		}
		if snapshot.Subscriptions, err = store.ListSubscriptions(); err != nil {
			return err
		}
		if snapshot.Ratings, err = store.ListRatings(); err != nil {
			return err
		}
		if snapshot.AvgRatings, err = store.ListAvgRatings(); err != nil {
			return err
		}
		if snapshot.Reports, err = store.ListReports(); err != nil {
			return err
		}

		snapshot.Counts = map[string]int{
			"contents":         len(snapshot.Contents),
			"royalty_balances": len(snapshot.RoyaltyBalances),
			"access_grants":    len(snapshot.AccessGrants),
			"subscriptions":    len(snapshot.Subscriptions),
			"ratings":          len(snapshot.Ratings),
			"avg_ratings":      len(snapshot.AvgRatings),
			"reports":          len(snapshot.Reports),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
