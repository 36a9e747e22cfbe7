package pages

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixtureViews はテスト用の画面一式を dir に作成します。
func writeFixtureViews(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "subjects"), 0o755))
	for _, name := range []string{Home, Register, Login, View} {
		html := "<!DOCTYPE html><html><body>" + name + "</body></html>"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".html"), []byte(html), 0o644))
	}
	for _, subject := range Subjects {
		html := "<!DOCTYPE html><html><body>subject " + subject + "</body></html>"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "subjects", subject+".html"), []byte(html), 0o644))
	}
}

func TestLoadDetectsHTML(t *testing.T) {
	dir := t.TempDir()
	writeFixtureViews(t, dir)

	catalog, err := Load(dir)
	require.NoError(t, err)

	page, ok := catalog.Page(Home)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(page.ContentType, "text/html"), page.ContentType)
}

func TestLoadMissingPage(t *testing.T) {
	dir := t.TempDir()
	writeFixtureViews(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "subjects", "cns.html")))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cns")
}

func TestServeSubjectCaseInsensitive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	writeFixtureViews(t, dir)
	catalog, err := Load(dir)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/subjects/:subject", catalog.ServeSubject)

	lower := httptest.NewRecorder()
	router.ServeHTTP(lower, httptest.NewRequest(http.MethodGet, "/subjects/ml", nil))
	upper := httptest.NewRecorder()
	router.ServeHTTP(upper, httptest.NewRequest(http.MethodGet, "/subjects/ML", nil))

	require.Equal(t, http.StatusOK, lower.Code)
	require.Equal(t, http.StatusOK, upper.Code)
	assert.Equal(t, lower.Body.String(), upper.Body.String())
	assert.Contains(t, lower.Body.String(), "subject ml")

	unknown := httptest.NewRecorder()
	router.ServeHTTP(unknown, httptest.NewRequest(http.MethodGet, "/subjects/xyz", nil))
	assert.Equal(t, http.StatusNotFound, unknown.Code)
	assert.Equal(t, "Subject not found", unknown.Body.String())
}

func TestAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "app.css"), []byte("body{}"), 0o644))

	router := gin.New()
	router.NoRoute(Assets(dir))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/app.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/missing.css", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "directories are not listed")
}
