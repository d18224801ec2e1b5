package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/controllers"
	"isoflow-backend/internal/repository"
)

func SetupRoutesProceso(app *fiber.App, db *mongo.Database, auth fiber.Handler) {
	repo := repository.NewProcesoRepository(db)
	objetivos := repository.NewObjetivoCalidadRepository(db)
	h := controllers.NewProcesoHandler(repo, objetivos)

	g := app.Group("/api/procesos")
	g.Get("/", h.ListProcesos)
	g.Get("/:id", h.GetProceso)
	g.Post("/", auth, h.CreateProceso)
	g.Put("/:id", auth, h.UpdateProceso)
	g.Delete("/:id", auth, h.DeleteProceso)
}
