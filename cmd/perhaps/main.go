package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mudler/xlog"

	"github.com/ib-77/perhaps/internal/cli"
)

var version = "dev"

func main() {
	// Initialize xlog at a level of INFO, the desired level is set after parsing the CLI options
	xlog.SetLogger(xlog.NewLogger(xlog.LogLevel("info"), "text"))

	envFiles := []string{".env", "perhaps.env"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		envFiles = append(envFiles, filepath.Join(homeDir, ".config/perhaps.env"))
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			xlog.Debug("env file found, loading environment variables from file", "envFile", envFile)
			if err := godotenv.Load(envFile); err != nil {
				xlog.Error("failed to load environment variables from file", "error", err, "envFile", envFile)
			}
		}
	}

	ctx := kong.Parse(&cli.CLI,
		kong.Name("perhaps"),
		kong.Description(
			`  perhaps loads person documents through a pipeline of steps that each
  return a success or a failure, and prints how every document ended up.

Version: ${version}
`,
		),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	logLevel := "info"
	if cli.CLI.LogLevel == nil {
		cli.CLI.LogLevel = &logLevel
	}
	xlog.SetLogger(xlog.NewLogger(xlog.LogLevel(*cli.CLI.LogLevel), *cli.CLI.LogFormat))

	if err := ctx.Run(&cli.CLI.Context); err != nil {
		xlog.Fatal("Error running the application", "error", err)
	}
}
