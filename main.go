// @title ISOFlow API
// @version 1.0
// @description Administrative backend for ISO quality system records.
// @host localhost:5000
// @BasePath /

package main

import (
	"log"

	_ "isoflow-backend/docs"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"

	"isoflow-backend/bootstrap"
	"isoflow-backend/config"
	"isoflow-backend/database"
	"isoflow-backend/internal/middleware"
	"isoflow-backend/internal/routes"

	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client, db := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer database.DisconnectMongo(client)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "¡El backend está funcionando correctamente!"})
	})

	auth := middleware.RequireJWT(cfg.JWTSecret)

	routes.SetupRoutesDepartamento(app, db, auth)
	routes.SetupRoutesPuesto(app, db, auth)
	routes.SetupRoutesPersonal(app, db, auth, cfg.JWTSecret)
	routes.SetupRoutesProceso(app, db, auth)
	routes.SetupRoutesObjetivoCalidad(app, db, auth)
	routes.SetupRoutesIndicadorCalidad(app, db, auth)
	routes.SetupRoutesDocumento(app, db, auth)
	routes.SetupRoutesNormaPunto(app, db, auth)

	log.Fatal(app.Listen(":" + cfg.Port))
}
