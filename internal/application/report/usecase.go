// Package report arma las exportaciones XLSX y PDF de los módulos a partir de sus listados.
package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/frota-api/internal/application/dto"
)

// SheetName hoja única de cada libro exportado.
const SheetName = "Dados"

// Tipos de contenido de los archivos generados.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// File archivo listo para descargar.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Sources listados de los que se leen los datos exportados.
type Sources struct {
	Materials     MaterialLister
	Movements     MovementLister
	Vehicles      VehicleLister
	Schedules     ScheduleLister
	Pav           PavLister
	Substitutions SubstitutionLister
}

// UseCase exportaciones. Respetan los mismos filtros que el listado en pantalla.
type UseCase struct {
	src  Sources
	pdf  PDFRenderer
	xlsx SpreadsheetWriter
	org  string
	loc  *time.Location
	now  func() time.Time
}

// NewUseCase construye el caso de uso. org es el encabezado institucional de los PDF.
func NewUseCase(src Sources, pdf PDFRenderer, xlsx SpreadsheetWriter, org string, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{src: src, pdf: pdf, xlsx: xlsx, org: org, loc: loc, now: time.Now}
}

// MaterialsXLSX planilla de estoque.
func (uc *UseCase) MaterialsXLSX(ctx context.Context, q dto.MaterialListQuery) (*File, error) {
	list, err := uc.src.Materials.List(ctx, q)
	if err != nil {
		return nil, err
	}
	t := Table{
		Title:   "Estoque",
		Headers: []string{"Material", "Quantidade", "Unidade", "Veículos Compatíveis", "Status"},
	}
	for _, m := range list.Items {
		t.Rows = append(t.Rows, []string{
			m.Name, strconv.FormatInt(m.Quantity, 10), m.Unit, m.CompatibleVehicles, m.Status,
		})
	}
	return uc.spreadsheet("Estoque_Frota_5RPM", t)
}

// MovementsXLSX planilla de movimentações.
func (uc *UseCase) MovementsXLSX(ctx context.Context, q dto.MovementListQuery) (*File, error) {
	t, err := uc.movementsTable(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.spreadsheet("Movimentacoes_Frota_5RPM", t)
}

// MovementsPDF relatório de movimentações.
func (uc *UseCase) MovementsPDF(ctx context.Context, q dto.MovementListQuery) (*File, error) {
	t, err := uc.movementsTable(ctx, q)
	if err != nil {
		return nil, err
	}
	t.Widths = []int{2, 3, 1, 1, 2, 1, 2}
	return uc.document("Movimentacoes_Frota_5RPM", t)
}

func (uc *UseCase) movementsTable(ctx context.Context, q dto.MovementListQuery) (Table, error) {
	list, err := uc.src.Movements.List(ctx, q)
	if err != nil {
		return Table{}, err
	}
	t := Table{
		Title:   "Movimentações de Estoque",
		Headers: []string{"Data", "Material", "Tipo", "Quantidade", "Responsável", "Viatura", "Guia"},
	}
	for _, m := range list.Items {
		t.Rows = append(t.Rows, []string{
			m.CreatedAt.In(uc.loc).Format(dateLayout),
			m.MaterialName,
			m.Type,
			fmt.Sprintf("%d %s", m.Quantity, m.MaterialUnit),
			m.Requester,
			m.VehiclePrefix,
			m.GuideNumber,
		})
	}
	return t, nil
}

// VehiclesXLSX mapa carga da frota.
func (uc *UseCase) VehiclesXLSX(ctx context.Context, q dto.VehicleListQuery) (*File, error) {
	list, err := uc.src.Vehicles.List(ctx, q)
	if err != nil {
		return nil, err
	}
	t := Table{Title: "Mapa Carga", Headers: []string{"Prefixo", "Placa", "Modelo", "Fração"}}
	for _, v := range list.Items {
		t.Rows = append(t.Rows, []string{v.Prefix, v.Plate, v.Model, v.Fraction})
	}
	return uc.spreadsheet("Mapa_Carga_Frota_5RPM", t)
}

// SchedulesXLSX agenda com observações.
func (uc *UseCase) SchedulesXLSX(ctx context.Context, q dto.ScheduleListQuery) (*File, error) {
	list, err := uc.src.Schedules.List(ctx, q)
	if err != nil {
		return nil, err
	}
	t := Table{
		Title:   "Agenda de Viaturas",
		Headers: []string{"Viatura", "Motorista", "Início", "Término", "Motivo", "Observações"},
	}
	for _, s := range list.Items {
		t.Rows = append(t.Rows, append(uc.scheduleRow(s), s.Observations))
	}
	return uc.spreadsheet("Agenda_Viaturas_5RPM", t)
}

// SchedulesPDF agenda em PDF.
func (uc *UseCase) SchedulesPDF(ctx context.Context, q dto.ScheduleListQuery) (*File, error) {
	list, err := uc.src.Schedules.List(ctx, q)
	if err != nil {
		return nil, err
	}
	t := Table{
		Title:   "Agenda de Viaturas",
		Headers: []string{"Viatura", "Motorista", "Início", "Término", "Motivo"},
		Widths:  []int{2, 3, 2, 2, 3},
	}
	for _, s := range list.Items {
		t.Rows = append(t.Rows, uc.scheduleRow(s))
	}
	return uc.document("Agenda_5RPM", t)
}

func (uc *UseCase) scheduleRow(s dto.ScheduleResponse) []string {
	return []string{
		s.VehiclePrefix,
		s.DriverName,
		s.StartTime.In(uc.loc).Format(dateTimeLayout),
		s.EndTime.In(uc.loc).Format(dateTimeLayout),
		s.Reason,
	}
}

// PavXLSX controle de processos PAV.
func (uc *UseCase) PavXLSX(ctx context.Context, q dto.PavListQuery) (*File, error) {
	list, err := uc.src.Pav.List(ctx, q)
	if err != nil {
		return nil, err
	}
	t := Table{
		Title: "Controle PAV",
		Headers: []string{
			"Fração", "Prefixo", "Placa", "Data Acidente", "REDS", "PAV", "Encarregado", "Nº PM",
			"Enviado", "Data Solicitação OS", "Nº OS", "Data Acompanhamento OS", "Observações",
		},
	}
	for _, p := range list.Items {
		t.Rows = append(t.Rows, []string{
			p.Fraction, p.VehiclePrefix, p.VehiclePlate, optionalDate(p.AccidentDate),
			p.RedsNumber, p.PavNumber, p.Inquirer, p.InquirerPMNumber, yesNo(p.SentToInquirer),
			optionalDate(p.OSRequestDate), p.OSNumber, optionalDate(p.OSFollowupDate), p.Observations,
		})
	}
	return uc.spreadsheet("Controle_PAV_5RPM", t)
}

// PavPDF relatório resumido de processos PAV.
func (uc *UseCase) PavPDF(ctx context.Context, q dto.PavListQuery) (*File, error) {
	list, err := uc.src.Pav.List(ctx, q)
	if err != nil {
		return nil, err
	}
	t := Table{
		Title:   "Controle PAV",
		Headers: []string{"Prefixo", "Placa", "Data Acidente", "PAV", "Encarregado", "Enviado"},
		Widths:  []int{2, 2, 2, 2, 3, 1},
	}
	for _, p := range list.Items {
		t.Rows = append(t.Rows, []string{
			p.VehiclePrefix, p.VehiclePlate, optionalDate(p.AccidentDate),
			p.PavNumber, p.Inquirer, yesNo(p.SentToInquirer),
		})
	}
	return uc.document("Controle_PAV_5RPM", t)
}

// SubstitutionsXLSX planilla de sustituciones.
func (uc *UseCase) SubstitutionsXLSX(ctx context.Context, q dto.SubstitutionListQuery) (*File, error) {
	list, err := uc.src.Substitutions.List(ctx, q)
	if err != nil {
		return nil, err
	}
	t := Table{
		Title: "Substituição de Frota",
		Headers: []string{
			"Prefixo Recebido", "Placa Recebida", "Modelo", "BGPM", "Cidade", "Unidade",
			"Prefixo Indicado", "Placa Indicada", "Data",
		},
	}
	for _, s := range list.Items {
		indicatedPrefix, indicatedPlate := deref(s.IndicatedPrefix), deref(s.IndicatedPlate)
		if s.NotRequired {
			indicatedPrefix, indicatedPlate = "Não necessário", "Não necessário"
		}
		t.Rows = append(t.Rows, []string{
			s.ReceivedPrefix, s.ReceivedPlate, s.ReceivedModel, s.ReceivedBGPM, s.ReceivedCity,
			s.ReceivedUnit, indicatedPrefix, indicatedPlate, s.CreatedAt.In(uc.loc).Format(dateLayout),
		})
	}
	return uc.spreadsheet("Substituicao_Frota_5RPM", t)
}

func (uc *UseCase) spreadsheet(name string, t Table) (*File, error) {
	data, err := uc.xlsx.Write(SheetName, t)
	if err != nil {
		return nil, fmt.Errorf("generar planilla: %w", err)
	}
	return &File{Name: name + ".xlsx", ContentType: ContentTypeXLSX, Data: data}, nil
}

func (uc *UseCase) document(name string, t Table) (*File, error) {
	t.Subtitle = fmt.Sprintf("%s - emitido em %s", uc.org, uc.now().In(uc.loc).Format(dateTimeLayout))
	data, err := uc.pdf.Render(t)
	if err != nil {
		return nil, fmt.Errorf("generar pdf: %w", err)
	}
	return &File{Name: name + ".pdf", ContentType: ContentTypePDF, Data: data}, nil
}

// optionalDate fechas sin hora (columnas DATE): se formatean en su propia zona.
func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
