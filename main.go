package main

import (
	"betteru-backend/configuration"
	"betteru-backend/controllers"
	"betteru-backend/payment"
	"betteru-backend/routes"
	"betteru-backend/scheduler"
	"log"

	"github.com/joho/godotenv"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}
	configuration.ConfigDB()
	configuration.InitRedis()
	controllers.SetPaymentGateway(payment.NewSSLCommerz())
}

func main() {
	//Perform application initialization
	Init()
	scheduler.StartDailyScheduler()

	r := routes.SetupRoutes()

	//Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
