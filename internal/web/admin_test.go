package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, env *testEnv) *http.Cookie {
	t.Helper()
	w := env.postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"secret"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatal("no admin cookie set")
	return nil
}

func (e *testEnv) getWithCookie(path string, c *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(c)
	return e.do(req)
}

func TestAdminRequiresLogin(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.get("/admin/api/stats")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = env.getWithCookie("/admin/api/stats", &http.Cookie{Name: adminCookie, Value: "forged"})
	assert.Equal(t, http.StatusFound, w.Code)

	w = env.postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t, true)
	cookie := login(t, env)

	w := env.getWithCookie("/admin/api/stats", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Contains(t, stats, "total_visitors")
	assert.Contains(t, stats, "events")

	w = env.getWithCookie("/admin/export/stats", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=admin-stats.json", w.Header().Get("Content-Disposition"))

	w = env.getWithCookie("/admin/dashboard", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unique visitors")

	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	req.AddCookie(cookie)
	w = env.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":0}`, w.Body.String())
}

func TestAdminLogout(t *testing.T) {
	env := newTestEnv(t, true)
	cookie := login(t, env)

	w := env.getWithCookie("/admin/logout", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, adminCookie, cleared[0].Name)
	assert.Empty(t, cleared[0].Value)
}

func TestAdminDisabledWithoutStore(t *testing.T) {
	env := newTestEnv(t, false)
	assert.Equal(t, http.StatusNotFound, env.get("/admin/login").Code)
}
