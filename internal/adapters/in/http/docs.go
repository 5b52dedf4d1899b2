package http

import (
	"net/http"
	"sync"

	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerSwag sync.Once

// RegisterDocs serves the OpenAPI document as JSON and Swagger UI over it.
func RegisterDocs(e *echo.Echo) error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	raw, err := spec.MarshalJSON()
	if err != nil {
		return err
	}

	// swag.Register panics on a second registration under the same name.
	registerSwag.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          spec.Info.Version,
			Title:            spec.Info.Title,
			Description:      spec.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})

	e.GET("/api/v1/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, raw)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
