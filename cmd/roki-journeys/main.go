package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/roki-journeys/config"
	"github.com/theoremus-urban-solutions/roki-journeys/formatter"
	"github.com/theoremus-urban-solutions/roki-journeys/internal"
	"github.com/theoremus-urban-solutions/roki-journeys/resolver"
	"github.com/theoremus-urban-solutions/roki-journeys/roki"
	"github.com/theoremus-urban-solutions/roki-journeys/siri"
)

func main() {
	app := &cli.App{
		Name:  "roki-journeys",
		Usage: "resolve a captured roki journey-planning response into self-contained journeys",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "captured response dump (overrides config)"},
			&cli.StringFlag{Name: "format", Usage: "journeys|sx (overrides config)"},
			&cli.BoolFlag{Name: "pretty", Usage: "indent JSON output"},
			&cli.BoolFlag{Name: "strict-enums", Usage: "fail on unknown alert enum codes"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(c *cli.Context) error {
	if err := config.LoadAppConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Config
	if v := c.String("input"); v != "" {
		cfg.Input.Path = v
	}
	if v := c.String("format"); v != "" {
		cfg.Output.Format = v
	}
	if c.Bool("pretty") {
		cfg.Output.Pretty = true
	}
	if c.Bool("strict-enums") {
		cfg.Resolver.StrictEnums = true
	}

	internal.InitLogging(cfg.Debug)

	if cfg.Input.Path == "" {
		return errors.New("no input dump; set input.path, ROKI_INPUT or --input")
	}
	raw, err := os.ReadFile(cfg.Input.Path)
	if err != nil {
		return err
	}
	resp, err := roki.DecodeResponse(raw)
	if err != nil {
		return err
	}
	log.Debug().Int("journeys", len(resp.Journeys)).Msg("decoded response")

	r := resolver.New(resolver.Options{StrictEnums: cfg.Resolver.StrictEnums})
	resolved, err := r.Resolve(resp)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	rb := formatter.NewResponseBuilder()
	if cfg.Output.Pretty {
		rb = formatter.NewIndentedResponseBuilder()
	}

	switch cfg.Output.Format {
	case "sx":
		sx := siri.BuildSituationExchange(resolved, cfg.Siri.Codespace, time.Now())
		fmt.Println(string(rb.BuildJSON(siri.WrapSituationExchangeResponse(sx, cfg.Siri.Codespace))))
	default:
		fmt.Println(string(rb.BuildJSON(resolved)))
	}
	return nil
}
