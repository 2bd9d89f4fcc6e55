package handlers

import (
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/MarliRenee/aware-api/internal/middleware"
	"github.com/MarliRenee/aware-api/internal/service"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newUsersRouter(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUsers(service.NewUsers(db))

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	routes := router.Group("/api/users")
	routes.GET("", h.List)
	routes.POST("", h.Create)
	byID := routes.Group("/:user_id", h.RequireUser)
	byID.GET("", h.Get)
	byID.DELETE("", h.Delete)
	byID.PATCH("", h.Patch)
	return router
}

func newIcebergsRouter(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewIcebergs(service.NewIcebergs(db))
	requireAuth := middleware.BasicAuth(service.NewUsers(db))

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	routes := router.Group("/api/icebergs", requireAuth)
	routes.GET("", h.List)
	routes.POST("", h.Create)
	byID := routes.Group("/:iceberg_id", h.RequireIceberg)
	byID.GET("", h.Get)
	byID.DELETE("", h.Delete)
	byID.PATCH("", h.Patch)
	return router
}

func newResponsesRouter(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewResponses(service.NewResponses(db))
	requireAuth := middleware.BasicAuth(service.NewUsers(db))

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	routes := router.Group("/api/responses")
	routes.GET("", h.List)
	routes.POST("", requireAuth, h.Create)
	byID := routes.Group("/:response_id", h.RequireResponse)
	byID.GET("", h.Get)
	byID.DELETE("", h.Delete)
	byID.PATCH("", h.Patch)
	return router
}

func basicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// expectAuthLookup queues the credential lookup the basic-auth gate
// issues before any gated handler runs.
func expectAuthLookup(mock sqlmock.Sqlmock, username string, userID int, password string) {
	mock.
		ExpectQuery(`SELECT id, username, password FROM aware_users WHERE username = \$1`).
		WithArgs(username).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "password"}).
				AddRow(userID, username, password),
		)
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func decodeJSON(t *testing.T, data []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
}

func expectErrorMessage(t *testing.T, data []byte, message string) {
	t.Helper()
	var out struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeJSON(t, data, &out)
	if out.Error.Message != message {
		t.Fatalf("expected error message %q, got %q", message, out.Error.Message)
	}
}

func expectNoContent(t *testing.T, status int, body string) {
	t.Helper()
	mustStatus(t, status, http.StatusNoContent)
	if body != "" {
		t.Fatalf("expected empty body, got %q", body)
	}
}
