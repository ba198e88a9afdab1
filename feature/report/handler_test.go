package report

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupHandlerApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	handler := NewHandler(NewService(NewStore(db), zap.NewNop()))

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app, mock
}

func TestHandleLatest_NotFound(t *testing.T) {
	app, mock := setupHandlerApp(t)
	mock.ExpectQuery("SELECT (.+) FROM `runs`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/latest", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleGet_ReturnsRun(t *testing.T) {
	app, mock := setupHandlerApp(t)

	runID := "11111111-2222-3333-4444-555555555555"
	mock.ExpectQuery("SELECT (.+) FROM `runs`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "objects"}).AddRow(runID, 7))
	mock.ExpectQuery("SELECT (.+) FROM `findings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "run_id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/"+runID, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, runID, payload["id"])
	assert.Equal(t, float64(7), payload["objects"])
}

func TestHandleList_ReturnsSummaries(t *testing.T) {
	app, mock := setupHandlerApp(t)
	mock.ExpectQuery("SELECT (.+) FROM `runs`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload []map[string]any
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Len(t, payload, 2)
}
