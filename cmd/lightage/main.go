package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lox/lightage/internal/api"
	"github.com/lox/lightage/internal/config"
	"github.com/lox/lightage/internal/logging"
	"github.com/lox/lightage/internal/models"
)

// Globals are flags shared by every command.
type Globals struct {
	Config    string `short:"c" help:"YAML config file. Falls back to LIGHTAGE_CONFIG." type:"path"`
	EnvFile   string `name:"env-file" help:"Load environment variables from this file before reading config." type:"path"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn or error. Overrides config."`
	LogFormat string `name:"log-format" help:"Log format: text or json. Overrides config."`
}

type CLI struct {
	Globals

	Serve   ServeCmd   `cmd:"" default:"withargs" help:"Run the web server."`
	Observe ObserveCmd `cmd:"" help:"Compute one observation and print it."`
}

// setup loads the env file and config, applies flag overrides and builds
// the logger.
func (g *Globals) setup(ctx context.Context) (*config.Config, *slog.Logger, error) {
	if g.EnvFile != "" {
		if err := godotenv.Load(g.EnvFile); err != nil {
			return nil, nil, fmt.Errorf("load env file %s: %w", g.EnvFile, err)
		}
	}
	cfg, err := config.Load(ctx, g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.LogFormat = g.LogFormat
	}
	return cfg, logging.New(cfg.LogLevel, cfg.LogFormat), nil
}

type ServeCmd struct {
	Addr string `help:"Listen address, e.g. :8080. Overrides config."`
}

func (c *ServeCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := g.setup(ctx)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	return api.NewServer(cfg, logger).Run(ctx)
}

func newParser(cli *CLI, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("lightage"),
		kong.Description("See how old you look from a star light-years away."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Bind(&cli.Globals),
		kong.BindTo(stdout, (*io.Writer)(nil)),
		kong.Vars{
			"default_age":      strconv.Itoa(models.DefaultAge),
			"default_distance": strconv.FormatFloat(models.DefaultDistance, 'f', -1, 64),
			"default_azimuth":  strconv.FormatFloat(models.DefaultAzimuth, 'f', -1, 64),
			"default_altitude": strconv.FormatFloat(models.DefaultAltitude, 'f', -1, 64),
		},
	)
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lightage:", err)
		os.Exit(1)
	}
}
