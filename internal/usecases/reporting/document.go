package reporting

import (
	"fmt"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

// Document é o arquivo pronto para download. Só existe quando a montagem terminou sem erro.
type Document struct {
	ID          string
	Format      domain.ReportFormat
	Filename    string
	ContentType string
	Data        []byte
	Pages       int
	Truncated   bool
}

type Exporter interface {
	Format() domain.ReportFormat
	Export(r Report) (*Document, error)
}

// RenderError indica que a superfície de desenho não pôde ser criada ou falhou no meio da montagem
type RenderError struct {
	Format domain.ReportFormat
	Stage  string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: falha ao gerar %s (%s): %v", domain.ErrRender, e.Format, e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) Is(target error) bool {
	return target == domain.ErrRender
}
