package domain

import "time"

type ReportFormat string

const (
	ReportFormatPDF  ReportFormat = "pdf"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ReportRecord registra uma exportação concluída
type ReportRecord struct {
	ID        string       `json:"id"`
	CompanyID string       `json:"company_id,omitempty"`
	UserID    int          `json:"user_id"`
	Format    ReportFormat `json:"format"`
	StartDate time.Time    `json:"start_date"`
	EndDate   time.Time    `json:"end_date"`
	Filename  string       `json:"filename"`
	Pages     int          `json:"pages"`
	Truncated bool         `json:"truncated"`
	SizeBytes int          `json:"size_bytes"`
	CreatedAt time.Time    `json:"created_at"`
}
