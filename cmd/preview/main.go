package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/gradslides/internal/api"
	"github.com/youruser/gradslides/internal/config"
	"github.com/youruser/gradslides/internal/issue"
	"github.com/youruser/gradslides/internal/slideshow"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	// Load roster and photos at startup
	students, err := slideshow.Prepare(cfg, issue.New(os.Stdout))
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	renderer, err := slideshow.NewRenderer(context.Background(), cfg)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(students, renderer))

	log.Println("starting preview server on " + cfg.Listen)
	if err := r.Run(cfg.Listen); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
