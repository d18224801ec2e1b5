package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/controllers"
	"isoflow-backend/internal/repository"
)

func SetupRoutesDocumento(app *fiber.App, db *mongo.Database, auth fiber.Handler) {
	repo := repository.NewDocumentoRepository(db)
	h := controllers.NewDocumentoHandler(repo)

	g := app.Group("/api/documentos")
	g.Get("/", h.ListDocumentos)
	g.Get("/:id", h.GetDocumento)
	g.Post("/", auth, h.CreateDocumento)
	g.Put("/:id", auth, h.UpdateDocumento)
	g.Delete("/:id", auth, h.DeleteDocumento)
}
