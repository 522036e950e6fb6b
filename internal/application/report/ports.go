package report

import (
	"context"

	"github.com/jhoicas/frota-api/internal/application/dto"
)

// Table datos tabulares comunes a la exportación en planilla y en PDF.
type Table struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]string
	// Widths ancho relativo de cada columna en el PDF (suma 12); vacío reparte en partes iguales.
	Widths []int
}

// PDFRenderer genera un documento PDF con la tabla.
type PDFRenderer interface {
	Render(t Table) ([]byte, error)
}

// SpreadsheetWriter genera un libro XLSX con la tabla en la hoja indicada.
type SpreadsheetWriter interface {
	Write(sheet string, t Table) ([]byte, error)
}

// Listados que alimentan los reportes.
type (
	MaterialLister interface {
		List(ctx context.Context, q dto.MaterialListQuery) (*dto.MaterialListResponse, error)
	}
	MovementLister interface {
		List(ctx context.Context, q dto.MovementListQuery) (*dto.MovementListResponse, error)
	}
	VehicleLister interface {
		List(ctx context.Context, q dto.VehicleListQuery) (*dto.VehicleListResponse, error)
	}
	ScheduleLister interface {
		List(ctx context.Context, q dto.ScheduleListQuery) (*dto.ScheduleListResponse, error)
	}
	PavLister interface {
		List(ctx context.Context, q dto.PavListQuery) (*dto.PavProcessListResponse, error)
	}
	SubstitutionLister interface {
		List(ctx context.Context, q dto.SubstitutionListQuery) (*dto.SubstitutionListResponse, error)
	}
)
