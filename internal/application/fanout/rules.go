package fanout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// ActionExecutor executa as ações suportadas pelas regras de automação:
// "log" registra o evento e "http" repassa o payload por POST para a URL em
// params.url
type ActionExecutor struct {
	client  *http.Client
	timeout time.Duration
}

// NewActionExecutor cria um executor com o timeout informado (0 usa o padrão)
func NewActionExecutor(timeout time.Duration) *ActionExecutor {
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}
	return &ActionExecutor{
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Execute roda a ação da regra para o evento
func (e *ActionExecutor) Execute(ctx context.Context, rule entities.LogicRule, event Event) error {
	switch rule.Action.Type {
	case entities.RuleActionLog:
		log.Printf("[RULE] %s disparada por %s: payload=%+v", rule.ID, event.Type, event.Payload)
		return nil
	case entities.RuleActionHTTP:
		return e.post(ctx, rule, event)
	default:
		return fmt.Errorf("tipo de ação desconhecido: %s", rule.Action.Type)
	}
}

func (e *ActionExecutor) post(ctx context.Context, rule entities.LogicRule, event Event) error {
	url := rule.Action.Params["url"]
	if url == "" {
		return fmt.Errorf("ação http sem params.url")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao serializar evento: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar ação http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("destino respondeu %d", resp.StatusCode)
	}
	return nil
}
