package port

import "sherlock/internal/domain"

type ReportStore interface {
	SaveReport(report domain.Report) (domain.Report, error)
	GetReport(id uint64) (domain.Report, error)
	ListReports() ([]domain.Report, error)
	Clear() error
	Close() error
}
