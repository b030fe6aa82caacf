package reporting

import (
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Resumo"
	SheetDaily     = "Diario"
	SheetNegatives = "Negativos"
	SheetServices  = "Servicos"
)

// XLSXExporter gera a planilha completa; não há limite de páginas
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Format() domain.ReportFormat {
	return domain.ReportFormatXLSX
}

func (e *XLSXExporter) Export(r Report) (*Document, error) {
	f := excelize.NewFile()
	defer f.Close()

	fail := func(stage string, err error) (*Document, error) {
		return nil, &RenderError{Format: domain.ReportFormatXLSX, Stage: stage, Err: err}
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fail("planilha", err)
	}
	for _, sheet := range []string{SheetDaily, SheetNegatives, SheetServices} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fail("planilha", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})
	if err != nil {
		return fail("estilo", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fail("estilo", err)
	}

	w := &sheetWriter{f: f, headerStyle: headerStyle}

	w.row(SheetSummary, 1, r.Title)
	_ = f.SetCellStyle(SheetSummary, "A1", "A1", titleStyle)
	w.row(SheetSummary, 2, r.Subtitle)
	w.row(SheetSummary, 3, "Gerado em", r.GeneratedAt.Format("02/01/2006 15:04"))
	w.row(SheetSummary, 5, "Total de votos", r.TotalVotes)
	w.row(SheetSummary, 6, "Média geral", r.AverageRating)
	w.header(SheetSummary, 8, "Avaliação", "Votos", "Percentual")
	for i, share := range r.Summary {
		w.row(SheetSummary, 9+i, share.Label, share.Count, share.Percent)
	}
	next := 9 + len(r.Summary) + 1
	if len(r.Alerts) > 0 {
		w.header(SheetSummary, next, "Alertas")
		for i, alert := range r.Alerts {
			w.row(SheetSummary, next+1+i, alert.Message)
		}
	}

	dailyHeader := []any{"Data"}
	for _, rating := range r.Ratings {
		dailyHeader = append(dailyHeader, rating.Label())
	}
	dailyHeader = append(dailyHeader, "Total")
	w.header(SheetDaily, 1, dailyHeader...)
	for i, row := range r.Daily {
		values := []any{row.Date.Format(domain.DateLayout)}
		for _, count := range row.Counts {
			values = append(values, count)
		}
		values = append(values, row.Total)
		w.row(SheetDaily, 2+i, values...)
	}

	w.header(SheetNegatives, 1, "Data", "Empresa", "Avaliação", "Serviço", "Comentário")
	for i, row := range r.Negatives {
		w.row(SheetNegatives, 2+i, row.Date.Format("2006-01-02 15:04"), row.Company, row.Rating, row.Service, row.Comment)
	}

	w.header(SheetServices, 1, "Serviço", "Esperado", "Votos", "Diferença")
	for i, row := range r.Services {
		w.row(SheetServices, 2+i, row.ServiceName, row.Expected, row.Actual, row.Delta)
	}

	if w.err != nil {
		return fail("montagem", w.err)
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fail("saída", err)
	}

	return &Document{
		Format:      domain.ReportFormatXLSX,
		Filename:    Filename(r.Range, domain.ReportFormatXLSX),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
		Pages:       len(f.GetSheetList()),
	}, nil
}

// sheetWriter guarda o primeiro erro para que a montagem seja verificada uma vez no final
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	err         error
}

func (w *sheetWriter) row(sheet string, line int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) header(sheet string, line int, values ...any) {
	w.row(sheet, line, values...)
	if w.err != nil {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, line)
	last, _ := excelize.CoordinatesToCellName(len(values), line)
	w.err = w.f.SetCellStyle(sheet, first, last, w.headerStyle)
}
