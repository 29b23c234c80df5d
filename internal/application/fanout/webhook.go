package fanout

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// SignatureHeader carrega o HMAC-SHA256 do corpo, calculado com o segredo da
// inscrição, para o destino conferir a autenticidade
const SignatureHeader = "X-Enquesta-Signature"

// DefaultDeliveryTimeout limita cada entrega individual; um destino lento
// não atrasa os demais
const DefaultDeliveryTimeout = 5 * time.Second

// HTTPDeliverer entrega eventos por POST JSON com timeout independente por
// inscrição
type HTTPDeliverer struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPDeliverer cria um deliverer com o timeout informado (0 usa o padrão)
func NewHTTPDeliverer(timeout time.Duration) *HTTPDeliverer {
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}
	return &HTTPDeliverer{
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Deliver envia o evento para a inscrição. Respostas fora de 2xx contam como
// falha de entrega.
func (d *HTTPDeliverer) Deliver(ctx context.Context, sub entities.WebhookSubscription, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao serializar evento: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, Sign(body, sub.Secret))

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao entregar webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("destino respondeu %d", resp.StatusCode)
	}
	return nil
}

// Sign calcula o HMAC-SHA256 hexadecimal do corpo com o segredo informado
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
