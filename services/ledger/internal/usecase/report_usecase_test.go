package usecase

import (
	"context"
	"testing"

	"content-ledger/services/ledger/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportContent_SecondReportRejected(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewReportUseCase(f.deps)
	ctx := context.Background()
	f.createPremium(t, "alice", 5, 10, 10)

	report, err := uc.ReportContent(ctx, Call{Caller: "reporter", Height: 8}, 5, "spam")
	require.NoError(t, err)
	assert.False(t, report.Resolved)
	assert.Equal(t, uint64(8), report.Timestamp)

	_, err = uc.ReportContent(ctx, Call{Caller: "reporter", Height: 9}, 5, "spam")
	assert.ErrorIs(t, err, entity.ErrAlreadyReported)

	reports, err := f.repo.ListReports()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "spam", reports[0].Reason)
	assert.Equal(t, uint64(8), reports[0].Timestamp)
}

func TestReportContent_DistinctReporters(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewReportUseCase(f.deps)
	ctx := context.Background()
	f.createPremium(t, "alice", 5, 10, 10)

	_, err := uc.ReportContent(ctx, Call{Caller: "r1", Height: 2}, 5, "spam")
	require.NoError(t, err)
	_, err = uc.ReportContent(ctx, Call{Caller: "r2", Height: 3}, 5, "abuse")
	require.NoError(t, err)

	report, err := uc.GetReport(ctx, 5, "r2")
	require.NoError(t, err)
	assert.Equal(t, "abuse", report.Reason)
}

func TestReportContent_MissingContent(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewReportUseCase(f.deps)
	ctx := context.Background()

	_, err := uc.ReportContent(ctx, Call{Caller: "reporter", Height: 1}, 5, "spam")
	assert.ErrorIs(t, err, entity.ErrContentNotFound)

	report, err := uc.GetReport(ctx, 5, "reporter")
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestReportContent_IDBeyondStoreRangeIsNotFound(t *testing.T) {
	f := newLedgerFixture(t)
	uc := NewReportUseCase(f.deps)
	ctx := context.Background()

	_, err := uc.ReportContent(ctx, Call{Caller: "reporter", Height: 8}, wideContentID, "spam")
	assert.ErrorIs(t, err, entity.ErrContentNotFound)

	report, err := uc.GetReport(ctx, wideContentID, "reporter")
	require.NoError(t, err)
	assert.Nil(t, report)
}
