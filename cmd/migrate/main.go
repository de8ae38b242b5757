package main

import (
	"fmt"
	"marketplace/config"
	"marketplace/helper"
	"marketplace/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const usage = `usage: migrate [flags] <up|down|drop|step-up|version|force>

flags:
`

func main() {
	path := pflag.StringP("path", "p", helper.DefaultMigrationsPath, "directory holding the migration files")
	steps := pflag.IntP("steps", "n", 1, "number of migrations applied by step-up or reverted by down")
	version := pflag.Int("version", 0, "version recorded by force")

	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 || !helper.IsMigrateAction(pflag.Arg(0)) {
		pflag.Usage()
		os.Exit(2)
	}

	cfg := config.Get()

	logger.Init(cfg)

	action := pflag.Arg(0)

	err := helper.Migrate(cfg, action, helper.MigrateOptions{
		Path:    *path,
		Steps:   *steps,
		Version: *version,
	})
	if err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("migration failed")
	}
}
