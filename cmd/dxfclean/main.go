package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/jorge-barreto/dxfclean/internal/cleaner"
	"github.com/jorge-barreto/dxfclean/internal/config"
	"github.com/jorge-barreto/dxfclean/internal/docs"
	"github.com/jorge-barreto/dxfclean/internal/logging"
	"github.com/jorge-barreto/dxfclean/internal/scaffold"
	"github.com/jorge-barreto/dxfclean/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "dxfclean",
		Usage:       "Strip a DXF drawing down to its layers and basic geometry",
		Description: "Run 'dxfclean docs' for documentation on config, templates, handles, and more.",
		Commands: []*cli.Command{
			cleanCmd(),
			inspectCmd(),
			initCmd(),
			docsCmd(),
		},
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Config file (default: ./" + config.FileName + " when present)"},
		&cli.StringSliceFlag{Name: "entity-types", Aliases: []string{"types"}, Usage: "Entity kinds to keep, e.g. LINE,ARC"},
		&cli.StringFlag{Name: "template-dir", Usage: "Directory holding the header and footer templates"},
		&cli.StringFlag{Name: "header", Usage: "Header template path"},
		&cli.StringFlag{Name: "footer", Usage: "Footer template path"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		&cli.StringFlag{Name: "log-format", Usage: "console or json"},
		&cli.StringFlag{Name: "log-file", Usage: "Write logs to this file instead of stderr"},
	}
}

func cleanCmd() *cli.Command {
	flags := append(configFlags(),
		&cli.StringFlag{Name: "out-dir", Aliases: []string{"o"}, Usage: "Output directory"},
		&cli.StringFlag{Name: "suffix", Usage: "Output file name suffix"},
		&cli.StringFlag{Name: "handle-base", Usage: "First hex handle for entities without one"},
		&cli.BoolFlag{Name: "report", Usage: "Write a JSON report next to the output"},
		&cli.StringFlag{Name: "metrics-file", Usage: "Write Prometheus metrics to this textfile"},
	)
	return &cli.Command{
		Name:      "clean",
		Usage:     "Clean a DXF file",
		ArgsUsage: "<file.dxf>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one input file is required (usage: dxfclean clean <file.dxf>)")
			}
			input := cmd.Args().First()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := logging.Must(logging.Config{
				Level:      cfg.LogLevel,
				Format:     cfg.LogFormat,
				OutputPath: cfg.LogFile,
			})
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			c := cleaner.New(cfg, logger)
			if _, err := c.Clean(ctx, input); err != nil {
				return fmt.Errorf("cleaning %s: %w", input, err)
			}
			return nil
		},
	}
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the layers and entities of a DXF file without writing anything",
		ArgsUsage: "<file.dxf>",
		Flags:     configFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one input file is required (usage: dxfclean inspect <file.dxf>)")
			}
			input := cmd.Args().First()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c := &cleaner.Cleaner{Config: cfg, Logger: zap.NewNop()}
			d, err := c.Inspect(ctx, input)
			if err != nil {
				return err
			}
			ux.RenderInspect(ux.Out, input, d, cfg.EntityKinds())
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example " + config.FileName + " and editable templates",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			_, err = scaffold.Init(dir)
			return err
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Fprint(ux.Out, "\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Fprintf(ux.Out, "  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Fprintln(ux.Out, "\nRun 'dxfclean docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprint(ux.Out, t.Content)
			return nil
		},
	}
}

// loadConfig resolves the config file and applies flag overrides on top.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(cmd.String("config"), dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.IsSet("entity-types") {
		cfg.EntityTypes = cmd.StringSlice("entity-types")
	}
	overrides := []struct {
		flag string
		dst  *string
	}{
		{"template-dir", &cfg.TemplateDir},
		{"log-level", &cfg.LogLevel},
		{"log-format", &cfg.LogFormat},
		{"log-file", &cfg.LogFile},
		{"out-dir", &cfg.OutputDir},
		{"suffix", &cfg.Suffix},
		{"handle-base", &cfg.HandleBase},
		{"metrics-file", &cfg.MetricsFile},
	}
	for _, o := range overrides {
		if cmd.IsSet(o.flag) {
			*o.dst = cmd.String(o.flag)
		}
	}
	// Template paths given on the command line are relative to the working
	// directory, not to template-dir.
	if cmd.IsSet("header") {
		cfg.HeaderTemplate = fromDir(dir, cmd.String("header"))
	}
	if cmd.IsSet("footer") {
		cfg.FooterTemplate = fromDir(dir, cmd.String("footer"))
	}
	if cmd.IsSet("report") {
		cfg.Report = cmd.Bool("report")
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromDir(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
