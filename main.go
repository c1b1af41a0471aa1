package main

import (
	"log"

	"studynotion/config"
	"studynotion/database"
	"studynotion/middleware"
	paymentRoutes "studynotion/routers/paymentRoutes"
	"studynotion/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	mailer, err := utils.NewMailer(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to configure mailer: %v", err)
	}
	utils.Mail = mailer

	auditCron, err := utils.InitializeEnrollmentAuditScheduler(database.Database.Db, config.AppConfig.AuditSchedule)
	if err != nil {
		log.Fatalf("Failed to start enrollment audit scheduler: %v", err)
	}
	if auditCron != nil {
		defer auditCron.Stop()
	}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})

	paymentRoutes.SetupPaymentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
