package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"isoflow-backend/internal/controllers"
	"isoflow-backend/internal/repository"
)

// SetupRoutesPersonal also mounts register and login under /api/personal.
// Those two stay open; everything mutating requires a token.
func SetupRoutesPersonal(app *fiber.App, db *mongo.Database, auth fiber.Handler, jwtSecret string) {
	repo := repository.NewPersonalRepository(db)
	departamentos := repository.NewDepartamentoRepository(db)
	puestos := repository.NewPuestoRepository(db)
	h := controllers.NewPersonalHandler(repo, departamentos, puestos)
	authH := controllers.NewAuthHandler(repo, jwtSecret)

	g := app.Group("/api/personal")
	g.Post("/register", authH.Register)
	g.Post("/login", authH.Login)
	g.Get("/", h.ListPersonal)
	g.Get("/departamento/:id", h.ListPersonalByDepartamento)
	g.Get("/:id", h.GetPersonal)
	g.Post("/", auth, h.CreatePersonal)
	g.Put("/:id", auth, h.UpdatePersonal)
	g.Delete("/:id", auth, h.DeletePersonal)
}
