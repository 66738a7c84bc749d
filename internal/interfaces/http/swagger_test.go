package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// minimalSwaggerSpec es un documento Swagger 2.0 válido pero vacío, suficiente
// para que el middleware de contrib lo monte.
const minimalSwaggerSpec = `{"swagger":"2.0","info":{"title":"Almacén API","version":"1.0"},"paths":{}}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterSwagger
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin archivo de especificación el registro se omite y la aplicación
// arranca igual, sin pánico y sin ruta /docs.
func TestRegisterSwagger_ArchivoAusente_NoMontaNiEntraEnPanico(t *testing.T) {
	app := fiber.New()

	mounted := apphttp.RegisterSwagger(app, filepath.Join(t.TempDir(), "no-existe.json"), "Almacén API")
	assert.False(t, mounted, "sin archivo la UI no debe montarse")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el resto de la aplicación debe seguir sirviendo")
}

// Caso 2: con archivo presente la UI queda montada en /docs.
func TestRegisterSwagger_ArchivoPresente_MontaLaUI(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(specPath, []byte(minimalSwaggerSpec), 0o644))

	app := fiber.New()
	mounted := apphttp.RegisterSwagger(app, specPath, "Almacén API")
	require.True(t, mounted, "con archivo presente la UI debe montarse")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
