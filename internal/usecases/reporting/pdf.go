package reporting

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

// SurfaceFactory cria a superfície de desenho do PDF
type SurfaceFactory func() (*gofpdf.Fpdf, error)

func defaultSurface() (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

type PDFExporter struct {
	layout     LayoutConfig
	newSurface SurfaceFactory
}

func NewPDFExporter(maxPages int) *PDFExporter {
	return &PDFExporter{
		layout:     DefaultLayoutConfig(maxPages),
		newSurface: defaultSurface,
	}
}

// WithSurfaceFactory troca a criação da superfície; usado nos testes de falha
func (e *PDFExporter) WithSurfaceFactory(factory SurfaceFactory) *PDFExporter {
	e.newSurface = factory
	return e
}

func (e *PDFExporter) Format() domain.ReportFormat {
	return domain.ReportFormatPDF
}

// Export pagina e desenha o relatório. Os bytes só são gerados depois que todas as
// páginas foram montadas; qualquer falha antes disso vira RenderError sem conteúdo.
func (e *PDFExporter) Export(r Report) (*Document, error) {
	layout := Paginate(Compose(r), e.layout)

	pdf, err := e.newSurface()
	if err != nil {
		return nil, &RenderError{Format: domain.ReportFormatPDF, Stage: "superfície", Err: err}
	}
	if pdf == nil {
		return nil, &RenderError{Format: domain.ReportFormatPDF, Stage: "superfície", Err: errors.New("superfície indisponível")}
	}

	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(r.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range layout.Pages {
		pdf.AddPage()
		pdf.SetXY(pageMargin, pageMargin)
		for _, block := range page.Blocks {
			drawBlock(pdf, tr, block)
		}
		drawFooter(pdf, tr, page.Footer)

		if pdf.Err() {
			return nil, &RenderError{Format: domain.ReportFormatPDF, Stage: "montagem", Err: pdf.Error()}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Format: domain.ReportFormatPDF, Stage: "saída", Err: err}
	}

	return &Document{
		Format:      domain.ReportFormatPDF,
		Filename:    Filename(r.Range, domain.ReportFormatPDF),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
		Pages:       len(layout.Pages),
		Truncated:   layout.Truncated,
	}, nil
}

func drawBlock(pdf *gofpdf.Fpdf, tr func(string) string, b Block) {
	switch b.Kind {
	case BlockTitle:
		pdf.SetFont("Arial", "B", 16)
		pdf.SetTextColor(17, 24, 39)
		pdf.CellFormat(contentWidth, b.Height, tr(b.Text), "", 1, "L", false, 0, "")
	case BlockSubtitle:
		pdf.SetFont("Arial", "", 12)
		pdf.SetTextColor(75, 85, 99)
		pdf.CellFormat(contentWidth, b.Height, tr(b.Text), "", 1, "L", false, 0, "")
	case BlockHeading:
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(17, 24, 39)
		pdf.CellFormat(contentWidth, b.Height, tr(b.Text), "", 1, "L", false, 0, "")
	case BlockText:
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(55, 65, 81)
		pdf.CellFormat(contentWidth, b.Height, tr(fitText(pdf, tr, b.Text, contentWidth)), "", 1, "L", false, 0, "")
	case BlockTableHeader:
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(229, 231, 235)
		pdf.SetTextColor(17, 24, 39)
		drawRow(pdf, tr, b, true)
	case BlockTableRow:
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(55, 65, 81)
		drawRow(pdf, tr, b, false)
	case BlockSpacer:
		pdf.Ln(b.Height)
	}
}

func drawRow(pdf *gofpdf.Fpdf, tr func(string) string, b Block, fill bool) {
	pdf.SetX(pageMargin)
	for i, cell := range b.Cells {
		width := contentWidth / float64(len(b.Cells))
		if i < len(b.Widths) {
			width = b.Widths[i]
		}
		pdf.CellFormat(width, b.Height, tr(fitText(pdf, tr, cell, width-2)), "1", 0, "L", fill, 0, "")
	}
	pdf.Ln(b.Height)
}

func drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, footer string) {
	_, pageHeight := pdf.GetPageSize()
	pdf.SetXY(pageMargin, pageHeight-pageMargin)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(contentWidth, 6, tr(footer), "", 0, "C", false, 0, "")
}

// fitText corta o texto com reticências para caber na largura da célula
func fitText(pdf *gofpdf.Fpdf, tr func(string) string, text string, width float64) string {
	if pdf.GetStringWidth(tr(text)) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if pdf.GetStringWidth(tr(candidate)) <= width {
			return candidate
		}
	}
	return ""
}
