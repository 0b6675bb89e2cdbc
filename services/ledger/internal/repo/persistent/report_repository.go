package persistent

import (
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"
)

func (s *gormStore) GetReport(contentID uint64, reporter string) (*entity.ContentReport, error) {
	if !storableID(contentID) {
		return nil, nil
	}
	var reportModel model.ReportModel
	if err := s.db.Where("content_id = ? AND reporter = ?", contentID, reporter).First(&reportModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToReportEntity(&reportModel), nil
}

func (s *gormStore) CreateReport(report *entity.ContentReport) error {
	reportModel := &model.ReportModel{
		ContentID: report.ContentID,
		Reporter:  report.Reporter,
		Reason:    report.Reason,
		Timestamp: report.Timestamp,
		Resolved:  report.Resolved,
	}
	return s.db.Create(reportModel).Error
}

func (s *gormStore) ListReports() ([]*entity.ContentReport, error) {
	var reportModels []model.ReportModel
	if err := s.db.Order("content_id ASC, reporter ASC").Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]*entity.ContentReport, len(reportModels))
	for i := range reportModels {
		reports[i] = ToReportEntity(&reportModels[i])
	}
	return reports, nil
}
