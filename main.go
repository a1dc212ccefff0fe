package main

import (
	"log"

	"github.com/sadang101/MalkarsMarketing/config"
	paymentController "github.com/sadang101/MalkarsMarketing/controllers/payment"
	"github.com/sadang101/MalkarsMarketing/database"
	authRoutes "github.com/sadang101/MalkarsMarketing/routers/authRoutes"
	courseRoutes "github.com/sadang101/MalkarsMarketing/routers/courseRoutes"
	paymentRoutes "github.com/sadang101/MalkarsMarketing/routers/paymentRoutes"
	"github.com/sadang101/MalkarsMarketing/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	paymentController.Gateway = utils.NewRazorpayClient(
		config.AppConfig.RazorpayApiURL,
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
	)

	utils.InitializeReportScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the static marketing site from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
