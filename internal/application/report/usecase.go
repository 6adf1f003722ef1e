package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

// Data conteúdo consolidado de um relatório do acervo.
type Data struct {
	GeneratedAt  time.Time
	Department   string // vazio = acervo completo
	Total        int64
	TotalValue   decimal.Decimal
	Items        []*entity.Patrimony
	ByDepartment []repository.DepartmentStats
}

// PDFGenerator porto de renderização do relatório.
type PDFGenerator interface {
	GeneratePatrimonyReport(ctx context.Context, data *Data) ([]byte, error)
}

// ReportUseCase gera o relatório em PDF do acervo, opcionalmente restrito a
// um departamento.
type ReportUseCase struct {
	patrimonies repository.PatrimonyRepository
	stats       repository.StatsRepository
	gen         PDFGenerator
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(
	patrimonies repository.PatrimonyRepository,
	stats repository.StatsRepository,
	gen PDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{patrimonies: patrimonies, stats: stats, gen: gen}
}

// Generate consolida os dados e devolve os bytes do PDF.
func (uc *ReportUseCase) Generate(ctx context.Context, department string) ([]byte, error) {
	items, err := uc.patrimonies.List(ctx, repository.PatrimonyFilter{Department: department})
	if err != nil {
		return nil, err
	}
	total, totalValue, err := uc.stats.Totals(ctx, department)
	if err != nil {
		return nil, err
	}

	data := &Data{
		GeneratedAt: time.Now(),
		Department:  department,
		Total:       total,
		TotalValue:  totalValue,
		Items:       items,
	}
	if department == "" {
		perDept, err := uc.stats.ByDepartment(ctx)
		if err != nil {
			return nil, err
		}
		data.ByDepartment = perDept
	}
	return uc.gen.GeneratePatrimonyReport(ctx, data)
}
