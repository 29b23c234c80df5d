package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/infrastructure/database/migrations"
)

const testSecret = "segredo-de-teste"

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrations.Migrate(db))
	require.NoError(t, migrations.AddIndexes(db))

	app := fiber.New()
	dispatcher := SetupRoutes(app, db)
	t.Cleanup(dispatcher.Close)

	return app
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "admin@enquesta.io",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func adminHeaders(t *testing.T) map[string]string {
	return map[string]string{"Authorization": "Bearer " + signToken(t, "admin")}
}

func createPoll(t *testing.T, app *fiber.App, body map[string]interface{}) string {
	t.Helper()
	resp, decoded := doJSON(t, app, http.MethodPost, "/polls", body, adminHeaders(t))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id, _ := decoded["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestHealthCheck(t *testing.T) {
	app := setupApp(t)

	resp, decoded := doJSON(t, app, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", decoded["status"])
}

func TestPollManagementRequiresAdmin(t *testing.T) {
	app := setupApp(t)
	body := map[string]interface{}{"title": "sem token", "type": "yes_no"}

	resp, _ := doJSON(t, app, http.MethodPost, "/polls", body, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/polls", body, map[string]string{
		"Authorization": "Bearer " + signToken(t, "viewer"),
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreatePollValidation(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"sem título", map[string]interface{}{"type": "yes_no"}},
		{"tipo desconhecido", map[string]interface{}{"title": "x", "type": "ranked"}},
		{"escolha sem opções", map[string]interface{}{"title": "x", "type": "single_choice"}},
		{"yes_no com opções", map[string]interface{}{"title": "x", "type": "yes_no", "options": []string{"A"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, http.MethodPost, "/polls", tt.body, adminHeaders(t))
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSubmitAndAggregateFlow(t *testing.T) {
	app := setupApp(t)

	pollID := createPoll(t, app, map[string]interface{}{
		"title":   "linguagem favorita",
		"type":    "single_choice",
		"options": []string{"Go", "Rust"},
	})

	resp, decoded := doJSON(t, app, http.MethodGet, "/polls/"+pollID, nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	options, _ := decoded["options"].([]interface{})
	require.Len(t, options, 2)
	firstOption := options[0].(map[string]interface{})["id"].(string)

	// Resposta anônima: a API emite um visitor_token
	resp, decoded = doJSON(t, app, http.MethodPost, "/polls/"+pollID+"/responses",
		map[string]interface{}{"option_id": firstOption}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	visitorToken, _ := decoded["visitor_token"].(string)
	require.NotEmpty(t, visitorToken)

	// Voto repetido do mesmo visitante é rejeitado
	resp, decoded = doJSON(t, app, http.MethodPost, "/polls/"+pollID+"/responses",
		map[string]interface{}{"option_id": firstOption},
		map[string]string{"X-Visitor-Token": visitorToken})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "AlreadyVoted", decoded["code"])

	resp, decoded = doJSON(t, app, http.MethodGet, "/polls/"+pollID+"/results", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	results, _ := decoded["results"].(map[string]interface{})
	require.NotNil(t, results)
	assert.Equal(t, float64(1), results["total_votes"])
}

func TestSubmitResponseValidationError(t *testing.T) {
	app := setupApp(t)

	pollID := createPoll(t, app, map[string]interface{}{
		"title": "recomendaria?",
		"type":  "nps",
	})

	resp, decoded := doJSON(t, app, http.MethodPost, "/polls/"+pollID+"/responses",
		map[string]interface{}{"score": 11}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "OutOfRange", decoded["code"])
}

func TestSubmitResponseClosedPoll(t *testing.T) {
	app := setupApp(t)

	pollID := createPoll(t, app, map[string]interface{}{
		"title": "fechada",
		"type":  "yes_no",
	})

	resp, _ := doJSON(t, app, http.MethodPatch, "/polls/"+pollID,
		map[string]interface{}{"status": "closed"}, adminHeaders(t))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, decoded := doJSON(t, app, http.MethodPost, "/polls/"+pollID+"/responses",
		map[string]interface{}{"answer": "yes"}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "PollClosed", decoded["code"])
}

func TestGetPollNotFound(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/polls/"+uuid.NewString(), nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/polls/nao-é-uuid", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatMessagesFlow(t *testing.T) {
	app := setupApp(t)

	pollID := createPoll(t, app, map[string]interface{}{
		"title": "com chat",
		"type":  "open_text",
	})

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/polls/"+pollID+"/messages",
			map[string]interface{}{"role": entities.RoleUser, "content": fmt.Sprintf("mensagem %d", i)}, nil)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, decoded := doJSON(t, app, http.MethodGet, "/polls/"+pollID+"/messages", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), decoded["total"])
	messages, _ := decoded["data"].([]interface{})
	require.Len(t, messages, 3)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "mensagem 0", first["content"])
}

func TestAdminWebhookCRUD(t *testing.T) {
	app := setupApp(t)
	headers := adminHeaders(t)

	resp, decoded := doJSON(t, app, http.MethodPost, "/admin/webhooks/",
		map[string]interface{}{
			"url":    "https://destino.example/hook",
			"events": []string{entities.EventPollClosed},
			"secret": "segredo",
		}, headers)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	webhookID, _ := decoded["id"].(string)
	require.NotEmpty(t, webhookID)

	// O segredo nunca volta na resposta
	_, hasSecret := decoded["secret"]
	assert.False(t, hasSecret)

	resp, decoded = doJSON(t, app, http.MethodGet, "/admin/webhooks/", nil, headers)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, _ := decoded["data"].([]interface{})
	require.Len(t, data, 1)

	resp, _ = doJSON(t, app, http.MethodDelete, "/admin/webhooks/"+webhookID, nil, headers)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Sem token a superfície administrativa é inacessível
	resp, _ = doJSON(t, app, http.MethodGet, "/admin/webhooks/", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminSetDefaultPaymentMethod(t *testing.T) {
	app := setupApp(t)
	headers := adminHeaders(t)
	userID := uuid.NewString()

	var ids []string
	for _, label := range []string{"cartão", "boleto"} {
		resp, decoded := doJSON(t, app, http.MethodPost, "/admin/payment-methods/",
			map[string]interface{}{"user_id": userID, "label": label, "gateway": "stripe"}, headers)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		ids = append(ids, decoded["id"].(string))
	}

	resp, _ := doJSON(t, app, http.MethodPatch, "/admin/payment-methods/"+ids[1]+"/default",
		map[string]interface{}{"user_id": userID}, headers)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, decoded := doJSON(t, app, http.MethodGet, "/admin/payment-methods/?user_id="+userID, nil, headers)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, _ := decoded["data"].([]interface{})
	require.Len(t, data, 2)

	defaults := 0
	for _, item := range data {
		method := item.(map[string]interface{})
		if method["is_default"] == true {
			defaults++
			assert.Equal(t, ids[1], method["id"])
		}
	}
	assert.Equal(t, 1, defaults)
}
