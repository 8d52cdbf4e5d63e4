package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound renders the generic 404 page. Registered as the NoRoute
// handler and used for malformed path parameters.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

// Recovery renders the generic 500 page after a panic. Wired into
// gin.CustomRecovery in main.
func Recovery(c *gin.Context, _ any) {
	c.HTML(http.StatusInternalServerError, "500.html", nil)
	c.Abort()
}

// serverError is the in-handler path to the 500 page for store failures.
// Nothing downstream retries; the request is terminal.
func serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", nil)
	c.Abort()
}
