package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Flash is a one-shot user-visible message carried across a redirect in
// the query string. The rendering handler reads it back off the request;
// no session store is involved.
type Flash struct {
	Message string
	Type    string
}

const (
	flashSuccess = "success"
	flashError   = "error"
)

func redirectWithFlash(c *gin.Context, location, level, message string) {
	q := url.Values{}
	q.Set("flash", message)
	q.Set("flash_type", level)
	c.Redirect(http.StatusFound, location+"?"+q.Encode())
}

func currentFlash(c *gin.Context) *Flash {
	msg := c.Query("flash")
	if msg == "" {
		return nil
	}
	level := c.Query("flash_type")
	if level == "" {
		level = flashSuccess
	}
	return &Flash{Message: msg, Type: level}
}
