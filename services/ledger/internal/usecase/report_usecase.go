package usecase

import (
	"context"
	"fmt"
	"strconv"

	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/repo/persistent"
)

type ReportUseCase interface {
	ReportContent(ctx context.Context, call Call, id uint64, reason string) (*entity.ContentReport, error)
	GetReport(ctx context.Context, id uint64, reporter string) (*entity.ContentReport, error)
}

type reportUseCase struct {
	ledgerCore
}

func NewReportUseCase(deps Deps) ReportUseCase {
	return &reportUseCase{ledgerCore: newLedgerCore(deps)}
}

func (uc *reportUseCase) ReportContent(ctx context.Context, call Call, id uint64, reason string) (*entity.ContentReport, error) {
	var report *entity.ContentReport
	err := uc.run(ctx, "reportContent", func(store persistent.Store) error {
		content, err := store.GetContent(id)
		if err != nil {
			return err
		}
		if content == nil {
			return entity.ErrContentNotFound
		}

		existing, err := store.GetReport(id, call.Caller)
		if err != nil {
			return err
		}
		if existing != nil {
			return entity.ErrAlreadyReported
		}

		report = &entity.ContentReport{
			ContentID: id,
			Reporter:  call.Caller,
			Reason:    reason,
			Timestamp: call.Height,
			Resolved:  false,
		}
		return store.CreateReport(report)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Content %d reported by %s", id, call.Caller)
	uc.emit(entity.Event{
		Type:   entity.EventContentReported,
		Height: call.Height,
		Attributes: map[string]string{
			"contentId": strconv.FormatUint(id, 10),
			"reporter":  call.Caller,
			"reason":    reason,
		},
	})
	return report, nil
}

func (uc *reportUseCase) GetReport(ctx context.Context, id uint64, reporter string) (*entity.ContentReport, error) {
	report, err := uc.repo.GetReport(id, reporter)
	if err != nil {
		uc.logger.Error("Failed to get report for content %d by %s: %v", id, reporter, err)
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}
