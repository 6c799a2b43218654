package main

import (
	"context"
	"os"

	"github.com/spf13/pflag"

	"github.com/yigit/facultyhub/internal/pkg/logger"
	"github.com/yigit/facultyhub/internal/server"
)

// @title FacultyHub API
// @version 1.0
// @description Faculty management API with admin, head of department and faculty roles

// @contact.name API Support
// @contact.email support@facultech.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	var opts server.Options
	flags := pflag.NewFlagSet("facultyhub", pflag.ExitOnError)
	flags.StringVarP(&opts.ConfigPath, "config", "c", "configs/config.yaml", "path to the YAML config file")
	flags.BoolVar(&opts.MigrateOnly, "migrate-only", false, "apply migrations (and the seed when enabled) then exit")
	flags.BoolVar(&opts.Seed, "seed", false, "seed roles, departments and demo accounts, failing on error")
	_ = flags.Parse(os.Args[1:])

	ctx := context.Background()
	srv, err := server.NewServer(ctx, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}
	if srv == nil {
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
