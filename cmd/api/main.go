package main

import (
	"github.com/yigit/courseapi/internal/cli"
	"github.com/yigit/courseapi/internal/pkg/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("Command failed")
	}
}
