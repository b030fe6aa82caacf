package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textBlock(text string, height float64) Block {
	return Block{Kind: BlockText, Height: height, Text: text}
}

func pageBreak() Block {
	return Block{Kind: BlockPageBreak}
}

func TestPaginate_CapsAtMaxPages(t *testing.T) {
	blocks := []Block{textBlock("a", 10)}
	for i := 0; i < 5; i++ {
		blocks = append(blocks, pageBreak(), textBlock(fmt.Sprintf("fatia %d", i+2), 10))
	}

	layout := Paginate(blocks, LayoutConfig{PageHeight: 100, MaxPages: 3})

	require.Len(t, layout.Pages, 3)
	assert.True(t, layout.Truncated)
	assert.Equal(t, 6, layout.RawSlices)
	for i, page := range layout.Pages {
		assert.Equal(t, i+1, page.Number)
		assert.Equal(t, fmt.Sprintf("Página %d de 3", i+1), page.Footer)
	}
	assert.Equal(t, "fatia 3", layout.Pages[2].Blocks[0].Text)
}

func TestPaginate_DropsEmptySlices(t *testing.T) {
	blocks := []Block{pageBreak(), textBlock("a", 10), pageBreak(), pageBreak(), textBlock("b", 10), pageBreak()}

	layout := Paginate(blocks, LayoutConfig{PageHeight: 100})

	require.Len(t, layout.Pages, 2)
	assert.False(t, layout.Truncated)
	assert.Equal(t, "Página 2 de 2", layout.Pages[1].Footer)
}

func TestPaginate_SplitsOverflowAtBlockBoundaries(t *testing.T) {
	blocks := []Block{
		heading("Tabela"),
		tableHeader([]string{"Data", "Total"}, nil),
	}
	for i := 0; i < 20; i++ {
		blocks = append(blocks, tableRow([]string{fmt.Sprint(i), "1"}, nil))
	}

	layout := Paginate(blocks, LayoutConfig{PageHeight: 80})

	require.Greater(t, len(layout.Pages), 1)
	for _, page := range layout.Pages {
		var used float64
		for _, b := range page.Blocks {
			used += b.Height
		}
		assert.LessOrEqual(t, used, 80.0)
	}
	assert.Equal(t, BlockTableHeader, layout.Pages[1].Blocks[0].Kind)
	assert.Equal(t, BlockTableRow, layout.Pages[1].Blocks[1].Kind)

	rows := 0
	for _, page := range layout.Pages {
		for _, b := range page.Blocks {
			if b.Kind == BlockTableRow {
				rows++
			}
		}
	}
	assert.Equal(t, 20, rows)
}

func TestPaginate_TallBlockGetsOwnPage(t *testing.T) {
	blocks := []Block{textBlock("a", 10), textBlock("gigante", 500), textBlock("b", 10)}

	layout := Paginate(blocks, LayoutConfig{PageHeight: 100})

	require.Len(t, layout.Pages, 3)
	assert.Equal(t, "gigante", layout.Pages[1].Blocks[0].Text)
}

func TestCompose_ThreeSections(t *testing.T) {
	lookups := lookupsWithButtons(4)
	report := BuildReport(sampleAnalytics(t, lookups), lookups, reportRange, ReportOptions{})

	blocks := Compose(report)

	markers := 0
	for _, b := range blocks {
		if b.Kind == BlockPageBreak {
			markers++
		}
	}
	assert.Equal(t, 2, markers)

	layout := Paginate(blocks, DefaultLayoutConfig(3))
	require.Len(t, layout.Pages, 3)
	assert.Equal(t, BlockTitle, layout.Pages[0].Blocks[0].Kind)
	assert.Equal(t, "Detalhamento diário", layout.Pages[1].Blocks[0].Text)
	assert.Equal(t, "Respostas negativas", layout.Pages[2].Blocks[0].Text)
	assert.Equal(t, "Página 3 de 3", layout.Pages[2].Footer)
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "3,25", formatDecimal(3.25))
	assert.Equal(t, "0,00", formatDecimal(0))
}
