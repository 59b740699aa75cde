package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/youruser/gradslides/internal/config"
	"github.com/youruser/gradslides/internal/slideshow"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sum, err := slideshow.Run(ctx, cfg, os.Stdout)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.Printf("%d students, %d slides, %d photos matched, %d issues",
		sum.Students, sum.Slides, sum.MatchedPhotos, len(sum.Issues))
}
