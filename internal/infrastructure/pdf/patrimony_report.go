// Package pdf renderiza o relatório do acervo patrimonial em A4.
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Patrimônio │ Departamento + Data      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Quantidade de bens / Valor total                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Placa | Nome | Departamento | Status | Valor       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO POR DEPARTAMENTO (só no relatório completo)         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rafaelvm/patrimonio-api/internal/application/report"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GeneratePatrimonyReport renderiza o relatório e devolve seus bytes.
func (g *MarotoReportGenerator) GeneratePatrimonyReport(_ context.Context, data *report.Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Patrimônio", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(data.Items) {
		m.AddRows(r)
	}

	if len(data.ByDepartment) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range departmentSummaryRows(data) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título à esquerda, escopo e data de emissão à direita.
func headerRow(data *report.Data) core.Row {
	scope := "Acervo completo"
	if data.Department != "" {
		scope = "Departamento: " + data.Department
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New("RELATÓRIO DE PATRIMÔNIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(scope, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido em: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// totalsRow: quantidade de bens e valor total do escopo.
func totalsRow(data *report.Data) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Bens cadastrados: %d", data.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Valor total: R$ "+data.TotalValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de bens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Placa", 2, align.Left),
		h("Nome", 4, align.Left),
		h("Departamento", 2, align.Left),
		h("Status", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

// tableItemRows: uma linha por bem.
func tableItemRows(items []*entity.Patrimony) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, p := range items {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(p.Plate, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Department, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(statusLabel(p.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("R$ "+p.Value.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// departmentSummaryRows: contagem e valor por departamento.
func departmentSummaryRows(data *report.Data) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("RESUMO POR DEPARTAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, d := range data.ByDepartment {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(d.Department, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%d bens", d.Count), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("R$ "+d.TotalValue.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// statusLabel traduz o status armazenado para o rótulo impresso.
func statusLabel(status string) string {
	switch status {
	case entity.StatusActive:
		return "Ativo"
	case entity.StatusInactive:
		return "Inativo"
	case entity.StatusMaintenance:
		return "Manutenção"
	case entity.StatusWrittenOff:
		return "Baixado"
	}
	return status
}
