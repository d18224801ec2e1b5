package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/controllers"
	"isoflow-backend/internal/repository"
)

func SetupRoutesPuesto(app *fiber.App, db *mongo.Database, auth fiber.Handler) {
	repo := repository.NewPuestoRepository(db)
	departamentos := repository.NewDepartamentoRepository(db)
	personal := repository.NewPersonalRepository(db)
	h := controllers.NewPuestoHandler(repo, departamentos, personal)

	g := app.Group("/api/puestos")
	g.Get("/", h.ListPuestos)
	g.Get("/:id", h.GetPuesto)
	g.Post("/", auth, h.CreatePuesto)
	g.Put("/:id", auth, h.UpdatePuesto)
	g.Delete("/:id", auth, h.DeletePuesto)
}
