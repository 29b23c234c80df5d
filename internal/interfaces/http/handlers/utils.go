package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parsePagination extrai page e limit da query string com os padrões da API
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// parsePollID extrai e valida o parâmetro de rota :id
func parsePollID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}
