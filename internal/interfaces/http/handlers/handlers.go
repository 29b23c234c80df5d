package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
)

// renderError traduz a taxonomia de erros do domínio para o status HTTP e o
// corpo JSON correspondentes. Erros de validação e conflito voltam verbatim;
// erros de persistência voltam genéricos, sem detalhe interno.
func renderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "recurso não encontrado"})
	}
	if ve, ok := apperrors.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message, "code": ve.Code})
	}
	if se, ok := apperrors.AsStateConflict(err); ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": se.Message, "code": se.Code})
	}

	log.Printf("❌ erro interno: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "erro interno do servidor"})
}
