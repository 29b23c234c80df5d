package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/enquesta/enquesta-api/internal/application/usecases"
)

// ResultsHandler lida com a leitura de resultados agregados
type ResultsHandler struct {
	resultsUseCase *usecases.ResultsUseCase
}

// NewResultsHandler cria uma nova instância de ResultsHandler
func NewResultsHandler(resultsUseCase *usecases.ResultsUseCase) *ResultsHandler {
	return &ResultsHandler{
		resultsUseCase: resultsUseCase,
	}
}

// GetResults retorna o resumo agregado conforme o tipo da enquete
// @Summary Resultados agregados de uma enquete
// @Description O formato do resumo varia com o tipo: contagens por opção, buckets NPS, média de rating ou respostas de texto
// @Tags results
// @Produce json
// @Param limit query int false "Máximo de respostas de texto retornadas" default(50)
// @Success 200 {object} usecases.PollResults "Resultados"
// @Failure 404 {object} map[string]interface{} "Enquete não encontrada"
// @Router /polls/{id}/results [get]
func (h *ResultsHandler) GetResults(c *fiber.Ctx) error {
	pollID, err := parsePollID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	// limit só se aplica a enquetes open_text; 0 usa o padrão
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	results, err := h.resultsUseCase.GetResults(pollID, limit)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(results)
}
