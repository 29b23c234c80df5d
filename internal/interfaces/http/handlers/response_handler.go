package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/application/usecases"
	"github.com/enquesta/enquesta-api/internal/domain/polltypes"
	"github.com/enquesta/enquesta-api/internal/interfaces/http/middleware"
)

// VisitorTokenHeader identifica respondentes anônimos entre requisições
const VisitorTokenHeader = "X-Visitor-Token"

// ResponseHandler lida com a submissão de respostas
type ResponseHandler struct {
	responseUseCase *usecases.ResponseUseCase
}

// NewResponseHandler cria uma nova instância de ResponseHandler
func NewResponseHandler(responseUseCase *usecases.ResponseUseCase) *ResponseHandler {
	return &ResponseHandler{
		responseUseCase: responseUseCase,
	}
}

// SubmitResponse registra a resposta de um respondente
// @Summary Submete uma resposta
// @Description Valida o payload contra o tipo e a configuração da enquete e o persiste
// @Tags responses
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Resposta registrada"
// @Failure 400 {object} map[string]interface{} "Payload rejeitado pelo validador"
// @Failure 404 {object} map[string]interface{} "Enquete não encontrada"
// @Failure 409 {object} map[string]interface{} "Enquete fechada ou voto repetido"
// @Router /polls/{id}/responses [post]
func (h *ResponseHandler) SubmitResponse(c *fiber.Ctx) error {
	pollID, err := parsePollID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var payload polltypes.Payload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	// Identidade do respondente: usuário autenticado, token de visitante ou
	// um novo token gerado agora e devolvido na resposta
	respondentID := ""
	if user, ok := middleware.CurrentUser(c); ok {
		respondentID = user.ID
	} else if token := c.Get(VisitorTokenHeader); token != "" {
		respondentID = token
	}
	issuedToken := ""
	if respondentID == "" {
		issuedToken = uuid.NewString()
		respondentID = issuedToken
	}

	response, err := h.responseUseCase.SubmitResponse(pollID, respondentID, payload)
	if err != nil {
		return renderError(c, err)
	}

	body := fiber.Map{"response": response}
	if issuedToken != "" {
		body["visitor_token"] = issuedToken
	}
	return c.JSON(body)
}
