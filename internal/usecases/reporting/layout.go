package reporting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
)

type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockSubtitle
	BlockText
	BlockHeading
	BlockTableHeader
	BlockTableRow
	BlockSpacer
	BlockPageBreak
)

// Block é uma unidade indivisível do documento; a quebra de página nunca corta um bloco
type Block struct {
	Kind   BlockKind
	Height float64
	Text   string
	Cells  []string
	Widths []float64
}

type Page struct {
	Number int
	Blocks []Block
	Footer string
}

type Layout struct {
	Pages []Page
	// RawSlices é o número de páginas antes do limite
	RawSlices int
	Truncated bool
}

type LayoutConfig struct {
	// PageHeight é a altura útil de conteúdo, em mm
	PageHeight float64
	MaxPages   int
}

const (
	pageWidth     = 210.0
	pageMargin    = 15.0
	contentWidth  = pageWidth - 2*pageMargin
	contentHeight = 297.0 - 2*pageMargin - 10.0

	titleHeight    = 12.0
	subtitleHeight = 8.0
	headingHeight  = 10.0
	textHeight     = 6.0
	rowHeight      = 7.0
	spacerHeight   = 4.0
)

func DefaultLayoutConfig(maxPages int) LayoutConfig {
	return LayoutConfig{PageHeight: contentHeight, MaxPages: maxPages}
}

// Compose transforma o relatório em blocos. A primeira página traz o resumo e a comparação
// por serviço, a segunda o detalhamento diário e a terceira as respostas negativas.
func Compose(r Report) []Block {
	blocks := []Block{
		{Kind: BlockTitle, Height: titleHeight, Text: r.Title},
		{Kind: BlockSubtitle, Height: subtitleHeight, Text: r.Subtitle},
		{Kind: BlockText, Height: textHeight, Text: "Gerado em " + r.GeneratedAt.Format("02/01/2006 15:04")},
		{Kind: BlockSpacer, Height: spacerHeight},
		heading("Resumo"),
		{Kind: BlockText, Height: textHeight, Text: fmt.Sprintf("Total de votos: %d", r.TotalVotes)},
		{Kind: BlockText, Height: textHeight, Text: "Média geral: " + formatDecimal(r.AverageRating)},
	}

	blocks = append(blocks, tableHeader([]string{"Avaliação", "Votos", "Percentual"}, []float64{80, 50, 50}))
	for _, share := range r.Summary {
		blocks = append(blocks, tableRow([]string{share.Label, strconv.Itoa(share.Count), formatDecimal(share.Percent) + "%"}, []float64{80, 50, 50}))
	}

	if len(r.Alerts) > 0 {
		blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerHeight}, heading("Alertas"))
		for _, alert := range r.Alerts {
			blocks = append(blocks, Block{Kind: BlockText, Height: textHeight, Text: alert.Message})
		}
	}

	blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerHeight}, heading("Esperado x realizado por serviço"))
	serviceWidths := []float64{75, 35, 35, 35}
	blocks = append(blocks, tableHeader([]string{"Serviço", "Esperado", "Votos", "Diferença"}, serviceWidths))
	for _, row := range r.Services {
		blocks = append(blocks, tableRow([]string{row.ServiceName, strconv.Itoa(row.Expected), strconv.Itoa(row.Actual), strconv.Itoa(row.Delta)}, serviceWidths))
	}

	blocks = append(blocks, Block{Kind: BlockPageBreak}, heading("Detalhamento diário"))
	dailyHeader := []string{"Data"}
	for _, rating := range r.Ratings {
		dailyHeader = append(dailyHeader, rating.Label())
	}
	dailyHeader = append(dailyHeader, "Total")
	dailyWidths := evenWidths(len(dailyHeader))
	blocks = append(blocks, tableHeader(dailyHeader, dailyWidths))
	for _, row := range r.Daily {
		cells := []string{row.Date.Format("02/01/2006")}
		for _, count := range row.Counts {
			cells = append(cells, strconv.Itoa(count))
		}
		cells = append(cells, strconv.Itoa(row.Total))
		blocks = append(blocks, tableRow(cells, dailyWidths))
	}

	blocks = append(blocks, Block{Kind: BlockPageBreak}, heading("Respostas negativas"))
	negativeWidths := []float64{28, 37, 22, 35, 58}
	blocks = append(blocks, tableHeader([]string{"Data", "Empresa", "Avaliação", "Serviço", "Comentário"}, negativeWidths))
	if len(r.Negatives) == 0 {
		blocks = append(blocks, Block{Kind: BlockText, Height: textHeight, Text: "Nenhuma resposta negativa no período."})
	}
	for _, row := range r.Negatives {
		blocks = append(blocks, tableRow([]string{row.Date.Format("02/01/2006 15:04"), row.Company, row.Rating, row.Service, row.Comment}, negativeWidths))
	}

	return blocks
}

// Paginate corta os blocos nos marcadores de quebra, divide fatias maiores que a página
// nos limites entre blocos e só então aplica o limite de páginas. O rodapé usa o total
// já limitado.
func Paginate(blocks []Block, cfg LayoutConfig) Layout {
	if cfg.PageHeight <= 0 {
		cfg.PageHeight = contentHeight
	}

	var slices [][]Block
	var current []Block
	for _, b := range blocks {
		if b.Kind == BlockPageBreak {
			if len(current) > 0 {
				slices = append(slices, current)
			}
			current = nil
			continue
		}
		current = append(current, b)
	}
	if len(current) > 0 {
		slices = append(slices, current)
	}

	var pages [][]Block
	for _, slice := range slices {
		pages = append(pages, splitSlice(slice, cfg.PageHeight)...)
	}

	layout := Layout{RawSlices: len(pages)}
	if cfg.MaxPages > 0 && len(pages) > cfg.MaxPages {
		log.L.WithFields(log.Fields{
			"pages":     len(pages),
			"max_pages": cfg.MaxPages,
		}).Warn("reporting: documento excede o limite de páginas, conteúdo excedente descartado")
		pages = pages[:cfg.MaxPages]
		layout.Truncated = true
	}

	total := len(pages)
	for i, blocks := range pages {
		layout.Pages = append(layout.Pages, Page{
			Number: i + 1,
			Blocks: blocks,
			Footer: fmt.Sprintf("Página %d de %d", i+1, total),
		})
	}

	return layout
}

// splitSlice repete o cabeçalho da tabela quando uma tabela continua na página seguinte
func splitSlice(slice []Block, pageHeight float64) [][]Block {
	var pages [][]Block
	var page []Block
	var used float64
	var lastHeader *Block

	for _, b := range slice {
		if b.Kind == BlockTableHeader {
			header := b
			lastHeader = &header
		} else if b.Kind != BlockTableRow {
			lastHeader = nil
		}

		if used+b.Height > pageHeight && len(page) > 0 {
			pages = append(pages, page)
			page = nil
			used = 0
			if b.Kind == BlockTableRow && lastHeader != nil {
				page = append(page, *lastHeader)
				used = lastHeader.Height
			}
		}
		page = append(page, b)
		used += b.Height
	}
	if len(page) > 0 {
		pages = append(pages, page)
	}
	return pages
}

func heading(text string) Block {
	return Block{Kind: BlockHeading, Height: headingHeight, Text: text}
}

func tableHeader(cells []string, widths []float64) Block {
	return Block{Kind: BlockTableHeader, Height: rowHeight, Cells: cells, Widths: widths}
}

func tableRow(cells []string, widths []float64) Block {
	return Block{Kind: BlockTableRow, Height: rowHeight, Cells: cells, Widths: widths}
}

func evenWidths(n int) []float64 {
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = contentWidth / float64(n)
	}
	return widths
}

// formatDecimal usa vírgula decimal, como o painel
func formatDecimal(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
