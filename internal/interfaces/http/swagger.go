package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// RegisterSwagger monta la UI de Swagger solo si el archivo de especificación
// existe. El middleware de contrib entra en pánico al arrancar si el archivo
// falta, así que la ausencia del JSON deshabilita /docs en vez de tumbar el
// proceso. Devuelve si la UI quedó montada.
func RegisterSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
