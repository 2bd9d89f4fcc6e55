package router

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarliRenee/aware-api/internal/config"
)

func newTestApp(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		Port:         "8000",
		Env:          "development",
		ClientOrigin: "https://aware-app.vercel.app",
	}
	return New(cfg, db), mock
}

func basicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func expectAuthLookup(mock sqlmock.Sqlmock, username string, userID int, password string) {
	mock.
		ExpectQuery(`SELECT id, username, password FROM aware_users WHERE username = \$1`).
		WithArgs(username).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "password"}).
				AddRow(userID, username, password),
		)
}

func TestRootRoute(t *testing.T) {
	engine, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, world!", rec.Body.String())
}

func TestHealthRoute(t *testing.T) {
	engine, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSecurityHeadersApplied(t *testing.T) {
	engine, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
}

func TestIcebergRoutesRejectMissingToken(t *testing.T) {
	engine, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/icebergs", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Missing basic token"}`, rec.Body.String())
}

func TestResponseListIsOpenButCreationIsNot(t *testing.T) {
	engine, mock := newTestApp(t)

	mock.
		ExpectQuery(`SELECT id, userid, icebergid, q1, q2, q3, q4, q5, q6, q7, q8 FROM iceberg_responses`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "userid", "icebergid", "q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8"}))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/responses", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/responses", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

// A created response must be retrievable at its Location header with an
// identical body.
func TestCreateResponseThenGetLocationRoundTrip(t *testing.T) {
	engine, mock := newTestApp(t)

	expectAuthLookup(mock, "marli", 1, "secret")
	mock.
		ExpectQuery(`INSERT INTO iceberg_responses`).
		WithArgs(1, 3, "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "userid", "icebergid", "q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8"}).
				AddRow(9, 1, 3, "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8"),
		)

	body := `{"userid":1,"icebergid":3,"q1":"a1","q2":"a2","q3":"a3","q4":"a4","q5":"a5","q6":"a6","q7":"a7","q8":"a8"}`
	req := httptest.NewRequest(http.MethodPost, "/api/responses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", basicAuthHeader("marli", "secret"))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	location := rec.Header().Get("Location")
	require.Equal(t, "/api/responses/9", location)

	mock.
		ExpectQuery(`SELECT id, userid, icebergid, q1, q2, q3, q4, q5, q6, q7, q8 FROM iceberg_responses WHERE id = \$1`).
		WithArgs(9).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "userid", "icebergid", "q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8"}).
				AddRow(9, 1, 3, "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8"),
		)

	getRec := httptest.NewRecorder()
	engine.ServeHTTP(getRec, httptest.NewRequest(http.MethodGet, location, nil))
	require.Equal(t, http.StatusOK, getRec.Code)
	assert.JSONEq(t, rec.Body.String(), getRec.Body.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMonitoringDisabledWithoutKey(t *testing.T) {
	engine, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/monitoring/status", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Monitoring API is disabled"}`, rec.Body.String())
}
