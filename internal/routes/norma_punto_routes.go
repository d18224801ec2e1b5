package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/controllers"
	"isoflow-backend/internal/repository"
)

func SetupRoutesNormaPunto(app *fiber.App, db *mongo.Database, auth fiber.Handler) {
	repo := repository.NewNormaPuntoRepository(db)
	h := controllers.NewNormaPuntoHandler(repo)

	g := app.Group("/api/normas-puntos")
	g.Get("/", h.ListNormasPuntos)
	g.Get("/:id", h.GetNormaPunto)
	g.Post("/", auth, h.CreateNormaPunto)
	g.Put("/:id", auth, h.UpdateNormaPunto)
	g.Delete("/:id", auth, h.DeleteNormaPunto)
}
