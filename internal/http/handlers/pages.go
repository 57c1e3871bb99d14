package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"flightbooking/web"

	"github.com/gin-gonic/gin"
)

var pages = template.Must(template.ParseFS(web.Templates, "templates/*.gohtml"))

type pageData struct {
	Title     string
	WithChart bool
	Rows      template.HTML
	Count     int
	Flight    any
}

// renderPage executes a full page template into the response.
func renderPage(c *gin.Context, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// fragment executes a fragment template into a string for SSE patches.
func fragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
