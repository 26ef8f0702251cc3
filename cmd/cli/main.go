package main

import (
	"context"

	"qanda-service/internal/client/cli"
	"qanda-service/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
