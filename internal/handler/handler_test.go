package handler_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"webapps/internal/database"
	"webapps/internal/view"
)

// newTestDB opens a fresh single-file store in a per-test temp dir.
func newTestDB(t *testing.T, ddl string) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.EnsureSchema(db, ddl))
	return db
}

// newEcho builds an echo instance rendering the given app's templates.
func newEcho(app string) *echo.Echo {
	e := echo.New()
	e.Renderer = view.New(app)
	return e
}

// itoa shortens the int64 id formatting tests do constantly.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// get serves a GET request through the full route table.
func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// postForm serves a form-encoded request through the full route table.
func postForm(e *echo.Echo, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
