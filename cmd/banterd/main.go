package main

import (
	"flag"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/lgrossi/banter/internal/daemon"
)

func main() {
	configFlag := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	// Local overrides; absence is not an error.
	_ = godotenv.Load(".env")

	app := fx.New(
		daemon.Module(daemon.Params{ConfigPath: *configFlag}),
	)

	app.Run()
}
