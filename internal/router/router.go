package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/handler"
	"github.com/hautdegamme/studio-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The health endpoint is used by the hosting platform and by uptime
	// monitors to verify that the service is up and running.
	e.GET("/api/health", handler.Health)
}

// RegisterAuth registers the authentication routes.  Login is open; /me
// requires a valid access token but no particular role.
func RegisterAuth(e *echo.Echo, h *handler.Handler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/login", h.Login)
	g.GET("/me", h.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterPublic registers the unauthenticated browse endpoints: the
// catalog, site content, the active theme, the team page and the blog.
// Visitors can also create clients, reservations and blog comments
// without an account, which is how the booking funnel works.  The cache
// middleware, when enabled, short-circuits the read endpoints.
func RegisterPublic(e *echo.Echo, h *handler.Handler, cache echo.MiddlewareFunc) {
	api := e.Group("/api")

	// Catalog reads.
	api.GET("/services", h.ListServices, cache)
	api.GET("/services/:id", h.GetService, cache)
	api.GET("/formations", h.ListFormations, cache)
	api.GET("/formations/:id", h.GetFormation, cache)

	// Booking funnel: the public site registers the visitor as a client
	// and then books on their behalf.
	api.POST("/clients", h.CreateClient)
	api.POST("/reservations", h.CreateReservation)

	// Site chrome: editable content blocks, settings and the active theme.
	api.GET("/content", h.ListContent, cache)
	api.GET("/settings", h.ListSettings, cache)
	api.GET("/themes/active", h.ActiveTheme, cache)

	// Team page shows active members only.
	api.GET("/team", h.ListTeam, cache)

	// Blog: published posts, approved comments, and comment submission.
	api.GET("/blog/posts", h.ListPosts, cache)
	api.GET("/blog/posts/:id", h.GetPost, cache)
	api.GET("/blog/posts/:id/comments", h.ListPostComments, cache)
	api.POST("/blog/posts/:id/comments", h.CreateComment)
}

// RegisterAdmin registers every back-office endpoint.  The whole group
// runs behind JWT authentication plus the admin role check.
func RegisterAdmin(e *echo.Echo, h *handler.Handler, jwtSecret string) {
	g := e.Group("/api", middleware.JWTAuth(jwtSecret), middleware.RequireAdmin())

	// Catalog management.  Deletes are soft so past reservations keep
	// their reference.
	g.POST("/services", h.CreateService)
	g.PUT("/services/:id", h.UpdateService)
	g.DELETE("/services/:id", h.DeleteService)
	g.POST("/formations", h.CreateFormation)
	g.PUT("/formations/:id", h.UpdateFormation)
	g.DELETE("/formations/:id", h.DeleteFormation)

	// Client records.
	g.GET("/clients", h.ListClients)
	g.GET("/clients/:id", h.GetClient)
	g.PUT("/clients/:id", h.UpdateClient)
	g.DELETE("/clients/:id", h.DeleteClient)

	// Reservation management.
	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/:id", h.GetReservation)
	g.PUT("/reservations/:id", h.UpdateReservation)
	g.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
	g.DELETE("/reservations/:id", h.DeleteReservation)

	// Content blocks and settings.
	g.PUT("/content/:page/:section", h.UpsertContent)
	g.PUT("/settings/:key", h.UpsertSetting)

	// Themes.
	g.GET("/themes", h.ListThemes)
	g.POST("/themes", h.CreateTheme)
	g.PUT("/themes/:id", h.UpdateTheme)
	g.POST("/themes/:id/activate", h.ActivateTheme)
	g.DELETE("/themes/:id", h.DeleteTheme)

	// Team roster, inactive members included.
	g.GET("/team/all", h.ListTeamAll)
	g.GET("/team/:id", h.GetTeamMember)
	g.POST("/team", h.CreateTeamMember)
	g.PUT("/team/:id", h.UpdateTeamMember)
	g.DELETE("/team/:id", h.DeleteTeamMember)

	// Blog administration and comment moderation.
	g.GET("/blog/posts/all", h.ListPostsAll)
	g.POST("/blog/posts", h.CreatePost)
	g.PUT("/blog/posts/:id", h.UpdatePost)
	g.DELETE("/blog/posts/:id", h.DeletePost)
	g.GET("/blog/comments", h.ListComments)
	g.POST("/blog/comments/:id/approve", h.ApproveComment)
	g.DELETE("/blog/comments/:id", h.DeleteComment)

	// Backup of the editable site state.
	g.GET("/backup/export", h.ExportBackup)
	g.POST("/backup/import", h.ImportBackup)
}

// RegisterFallback wires the two catch-alls: unknown /api paths answer
// a JSON 404, every other unmatched path goes to the SPA so the
// client-side router can resolve it.
func RegisterFallback(e *echo.Echo, spa handler.SPA) {
	e.RouteNotFound("/api/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "API route not found"})
	})
	e.RouteNotFound("/*", spa.Serve)
}
