package preferences

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahmetyanpar/orbitrates/storage/memory"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	p := New(memory.New())
	app.Get("/theme", p.Theme)
	app.Put("/theme", p.SetTheme)
	return app
}

func getTheme(t *testing.T, app *fiber.App, user string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/theme?user="+user, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload themePayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Theme
}

func TestThemeDefaultsToLight(t *testing.T) {
	app := newApp()
	assert.Equal(t, "light", getTheme(t, app, "alice"))
}

func TestSetTheme(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(http.MethodPut, "/theme?user=alice", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "dark", getTheme(t, app, "alice"))
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(http.MethodPut, "/theme", strings.NewReader(`{"theme":"neon"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
