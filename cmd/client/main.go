package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskhive/task-manager/internal/client/cli"
	"github.com/taskhive/task-manager/internal/client/config"
)

func main() {
	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg)
	os.Exit(app.Run(ctx, args))
}
