package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/controllers"
	"isoflow-backend/internal/repository"
)

func SetupRoutesIndicadorCalidad(app *fiber.App, db *mongo.Database, auth fiber.Handler) {
	repo := repository.NewIndicadorCalidadRepository(db)
	objetivos := repository.NewObjetivoCalidadRepository(db)
	h := controllers.NewIndicadorCalidadHandler(repo, objetivos)

	g := app.Group("/api/indicadores-calidad")
	g.Get("/", h.ListIndicadores)
	g.Get("/objetivo/:objetivoId", h.ListIndicadoresByObjetivo)
	g.Get("/:id", h.GetIndicador)
	g.Post("/", auth, h.CreateIndicador)
	g.Put("/:id", auth, h.UpdateIndicador)
	g.Delete("/:id", auth, h.DeleteIndicador)
}
