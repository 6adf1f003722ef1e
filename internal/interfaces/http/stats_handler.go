package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelvm/patrimonio-api/internal/application/stats"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

// StatsHandler agregados do acervo.
type StatsHandler struct {
	uc  *stats.StatsUseCase
	log *logger.Logger
}

// NewStatsHandler constrói o handler.
func NewStatsHandler(uc *stats.StatsUseCase, log *logger.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Estatísticas do acervo
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        department  query  string  false  "restringir a um departamento"
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Query("department"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
