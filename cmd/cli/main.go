package main

import (
	"context"
	"log"
	"os"

	"github.com/dpetrovs/useradm/internal/buildinfo"
	"github.com/dpetrovs/useradm/internal/client/cli"
	"github.com/dpetrovs/useradm/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
