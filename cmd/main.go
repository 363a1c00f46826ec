package main

import (
	"flag"

	"go-rest-brewery/cmd/bootstrap"
	_ "go-rest-brewery/docs"

	"github.com/sirupsen/logrus"
)

// @title BREWERY API
// @version 1.0
// @description Beer inventory REST API
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", ".env", "path to the .env configuration file")
	flag.Parse()

	// Initialize application with all dependencies
	app, err := bootstrap.New(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	app.Run()
}
