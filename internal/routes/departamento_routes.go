package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/controllers"
	"isoflow-backend/internal/repository"
)

func SetupRoutesDepartamento(app *fiber.App, db *mongo.Database, auth fiber.Handler) {
	repo := repository.NewDepartamentoRepository(db)
	puestos := repository.NewPuestoRepository(db)
	personal := repository.NewPersonalRepository(db)
	h := controllers.NewDepartamentoHandler(repo, puestos, personal)

	g := app.Group("/api/departamentos")
	g.Get("/", h.ListDepartamentos)
	g.Get("/:id", h.GetDepartamento)
	g.Post("/", auth, h.CreateDepartamento)
	g.Put("/:id", auth, h.UpdateDepartamento)
	g.Delete("/:id", auth, h.DeleteDepartamento)
}
