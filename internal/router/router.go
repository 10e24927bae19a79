package router

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/fliprhq/flipr-cms/internal/config"
	"github.com/fliprhq/flipr-cms/internal/handler"
	"github.com/fliprhq/flipr-cms/internal/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

// WebHandlers groups the web service handler instances for route setup.
type WebHandlers struct {
	Home       *handler.HomeHandler
	Contact    *handler.ContactHandler
	Subscriber *handler.SubscriberHandler
	Project    *handler.ProjectHandler
	Client     *handler.ClientHandler
	Admin      *handler.AdminHandler
}

// SetupWebRouter configures the public and admin routes.
//
// The admin group carries no authentication middleware on purpose: the
// system this replaces exposes the panel openly, and that gap is carried
// over rather than silently closed.
func SetupWebRouter(handlers *WebHandlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	router.Use(middleware.RequestID())

	// Flash notices live in the session cookie, signed with the secret key.
	store := cookie.NewStore([]byte(cfg.SecretKey))
	router.Use(sessions.Sessions("flipr_session", store))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Public ────────────────────────────────────────────────────────
	router.GET("/", handlers.Home.Index)
	router.POST("/contact", handlers.Contact.Submit)
	router.POST("/subscribe", handlers.Subscriber.Subscribe)

	// ─── Admin (no auth gate, see above) ───────────────────────────────
	admin := router.Group("/admin")
	{
		admin.GET("", handlers.Admin.Panel)

		admin.POST("/projects", handlers.Project.Create)
		admin.GET("/projects/:id/edit", handlers.Project.EditForm)
		admin.POST("/projects/:id/edit", handlers.Project.Update)
		admin.POST("/projects/:id/delete", handlers.Project.Delete)

		admin.POST("/clients", handlers.Client.Create)
		admin.GET("/clients/:id/edit", handlers.Client.EditForm)
		admin.POST("/clients/:id/edit", handlers.Client.Update)
		admin.POST("/clients/:id/delete", handlers.Client.Delete)

		admin.GET("/contacts/:id/edit", handlers.Contact.EditForm)
		admin.POST("/contacts/:id/edit", handlers.Contact.Update)
		admin.POST("/contacts/:id/delete", handlers.Contact.Delete)

		admin.GET("/subscribers/:id/edit", handlers.Subscriber.EditForm)
		admin.POST("/subscribers/:id/edit", handlers.Subscriber.Update)
		admin.POST("/subscribers/:id/delete", handlers.Subscriber.Delete)
	}

	return router
}
