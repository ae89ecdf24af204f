package handler

import (
	_ "embed"
	"net/http"

	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

var (
	//go:embed static/openapi.html
	openAPIUI []byte

	//go:embed static/openapi.json
	openAPISpec []byte
)

// OpenAPIHandler serves the API reference UI and the document it renders.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, openAPIUI)
}

func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.JSONBlob(http.StatusOK, openAPISpec)
}
