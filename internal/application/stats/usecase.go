package stats

import (
	"context"

	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

// StatsUseCase agregados do acervo: contagens por status e valores por
// departamento.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase constrói o caso de uso com o porto de persistência.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Get calcula os agregados, opcionalmente restritos a um departamento.
// Status fora dos quatro reconhecidos entram em total e total_value mas não
// em nenhum bucket. Com filtro de departamento, by_department vem vazio.
func (uc *StatsUseCase) Get(ctx context.Context, department string) (*dto.StatsResponse, error) {
	total, totalValue, err := uc.repo.Totals(ctx, department)
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.repo.CountByStatus(ctx, department)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResponse{
		Total:        total,
		Active:       byStatus[entity.StatusActive],
		Inactive:     byStatus[entity.StatusInactive],
		Maintenance:  byStatus[entity.StatusMaintenance],
		WrittenOff:   byStatus[entity.StatusWrittenOff],
		TotalValue:   totalValue.InexactFloat64(),
		ByDepartment: []dto.DepartmentStatsResponse{},
	}

	if department == "" {
		perDept, err := uc.repo.ByDepartment(ctx)
		if err != nil {
			return nil, err
		}
		for _, d := range perDept {
			resp.ByDepartment = append(resp.ByDepartment, dto.DepartmentStatsResponse{
				Department: d.Department,
				Count:      d.Count,
				TotalValue: d.TotalValue.InexactFloat64(),
			})
		}
	}
	return resp, nil
}
