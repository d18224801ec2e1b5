package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/controllers"
	"isoflow-backend/internal/repository"
)

func SetupRoutesObjetivoCalidad(app *fiber.App, db *mongo.Database, auth fiber.Handler) {
	repo := repository.NewObjetivoCalidadRepository(db)
	indicadores := repository.NewIndicadorCalidadRepository(db)
	h := controllers.NewObjetivoCalidadHandler(repo, indicadores)

	g := app.Group("/api/objetivos-calidad")
	g.Get("/", h.ListObjetivos)
	g.Get("/:id", h.GetObjetivo)
	g.Post("/", auth, h.CreateObjetivo)
	g.Put("/:id", auth, h.UpdateObjetivo)
	g.Delete("/:id", auth, h.DeleteObjetivo)
}
