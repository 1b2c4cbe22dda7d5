package main

import (
	"fmt"

	"github.com/Naveendeworks/emergent/configs"
	"github.com/Naveendeworks/emergent/middlewares"
	"github.com/Naveendeworks/emergent/routes"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		logrus.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())

	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("order management API running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
