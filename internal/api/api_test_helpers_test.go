package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utero/internal/i18n"
	"github.com/terraincognita07/utero/internal/metrics"
	"github.com/terraincognita07/utero/internal/models"
	"github.com/terraincognita07/utero/internal/services"
	"github.com/terraincognita07/utero/internal/storage"
	"go.uber.org/zap"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2024, time.February, 12, 10, 30, 0, 0, time.UTC)

type testApp struct {
	app     *fiber.App
	handler *Handler
	metrics *metrics.Collector
	token   string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := storage.NewMemoryStore()
	cycleState := storage.NewPersistentState[[]models.StoredCycle](store, services.CyclesStateKey, zap.NewNop())
	logState := storage.NewPersistentState[models.DailyLogs](store, services.LogsStateKey, zap.NewNop())
	collector := metrics.NewCollector("utero")
	tracker := services.NewTrackerService(context.Background(), cycleState, logState, collector, zap.NewNop())

	manager, err := i18n.NewEmbeddedManager("en")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(tracker, testSecretKey, time.UTC, manager, collector, zap.NewNop())
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, handler)

	token, err := BuildToken([]byte(testSecretKey), time.Hour, testNow)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	return &testApp{app: app, handler: handler, metrics: collector, token: token}
}

func (ta *testApp) do(t *testing.T, method string, path string, body string, headers map[string]string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if ta.token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+ta.token)
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response.StatusCode, string(content)
}

func (ta *testApp) get(t *testing.T, path string) (int, string) {
	t.Helper()
	return ta.do(t, http.MethodGet, path, "", nil)
}

func (ta *testApp) post(t *testing.T, path string, body string) (int, string) {
	t.Helper()
	return ta.do(t, http.MethodPost, path, body, nil)
}

func decodeJSON[T any](t *testing.T, body string) T {
	t.Helper()
	var value T
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
	return value
}
