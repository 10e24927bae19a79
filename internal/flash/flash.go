// Package flash carries one-shot notices across a redirect inside the
// signed session cookie.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Notice levels, rendered as Bootstrap-style alert categories.
const (
	LevelSuccess = "success"
	LevelDanger  = "danger"
	LevelInfo    = "info"
)

// Notice is a single flash message with its display level.
type Notice struct {
	Level   string
	Message string
}

func init() {
	// The cookie store gob-encodes session values.
	gob.Register(Notice{})
}

// Success queues a success notice for the next rendered page.
func Success(c *gin.Context, message string) {
	add(c, LevelSuccess, message)
}

// Danger queues a failure notice for the next rendered page.
func Danger(c *gin.Context, message string) {
	add(c, LevelDanger, message)
}

// Info queues an informational notice for the next rendered page.
func Info(c *gin.Context, message string) {
	add(c, LevelInfo, message)
}

func add(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(Notice{Level: level, Message: message})
	_ = session.Save()
}

// Take drains and returns all queued notices, clearing them from the cookie.
func Take(c *gin.Context) []Notice {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save() // Flashes() consumed them; persist the now-empty list.

	notices := make([]Notice, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}
