package routes

import (
	"github.com/gofiber/fiber/v3"

	"hiresense/internal/delivery/http/handler"
)

// Registry wires the constructed handlers onto the app: health at the root,
// everything else under /api/v1.
type Registry struct {
	Health       *handler.HealthHandler
	Jobs         *handler.JobsHandler
	Resume       *handler.ResumeHandler
	Applications *handler.ApplicationsHandler
	Chat         *handler.ChatHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.Jobs.RegisterRoutes(v1)
	r.Resume.RegisterRoutes(v1)
	r.Applications.RegisterRoutes(v1)
	r.Chat.RegisterRoutes(v1)
}
