// Package main implements the gemsave CLI, which turns cached Gemini CLI
// chat sessions into named checkpoints.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/gemsave/internal/checkpoint"
	"github.com/fyrsmithlabs/gemsave/internal/config"
	"github.com/fyrsmithlabs/gemsave/internal/logging"
	"github.com/fyrsmithlabs/gemsave/internal/picker"
	"github.com/fyrsmithlabs/gemsave/internal/project"
	"github.com/fyrsmithlabs/gemsave/internal/session"
)

var (
	// persistent flags
	projectDir string
	geminiHome string
	configPath string
	logLevel   string
	logFormat  string

	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemsave",
	Short: "Save Gemini CLI chat sessions as checkpoints",
	Long: `gemsave lists the chat sessions the Gemini CLI cached for a project and
saves the one you pick as a named checkpoint the Gemini CLI can resume.

Examples:
  # Pick a session interactively for the current directory
  gemsave

  # Use another project and Gemini home
  gemsave --project-dir ~/src/app --gemini-home /mnt/backup/.gemini`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "Project directory (defaults to current directory)")
	rootCmd.PersistentFlags().StringVar(&geminiHome, "gemini-home", "", "Gemini CLI home directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/gemsave/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json")
}

// app bundles what every command needs after flags and config are resolved.
// The logger travels in ctx.
type app struct {
	cfg        *config.Config
	layout     *project.Layout
	projectDir string
	ctx        context.Context
}

// newApp loads configuration, applies flag overrides and builds the logger.
// Precedence is flag, environment, config file, default.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if geminiHome != "" {
		home, err := config.ExpandHome(geminiHome)
		if err != nil {
			return nil, err
		}
		cfg.Gemini.Home = home
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := newLogger(cfg, cmd)
	if err != nil {
		return nil, err
	}

	layout, err := project.NewLayout(cfg.Gemini.Home)
	if err != nil {
		return nil, err
	}

	dir := projectDir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithInvocationID(ctx, uuid.NewString())
	ctx = logging.WithLogger(ctx, logger)

	logger.Debug(ctx, "configuration resolved")

	return &app{
		cfg:        cfg,
		layout:     layout,
		projectDir: dir,
		ctx:        ctx,
	}, nil
}

func newLogger(cfg *config.Config, cmd *cobra.Command) (*logging.Logger, error) {
	level, err := logging.LevelFromString(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logCfg := logging.NewDefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.Log.Format
	return logging.NewLogger(logCfg, cmd.ErrOrStderr())
}

func (a *app) previewer() *session.Previewer {
	return session.NewPreviewer(session.NewParser(), a.cfg.Preview.SnippetLength)
}

func (a *app) writer() (*checkpoint.Writer, error) {
	return checkpoint.NewWriter(a.layout, session.NewParser(), a.logger())
}

func (a *app) logger() *logging.Logger {
	return logging.FromContext(a.ctx)
}

func (a *app) close() {
	_ = a.logger().Sync()
}

// runInteractive handles the root command
func runInteractive(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	writer, err := a.writer()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p, err := picker.New(picker.Config{
		ProjectDir: a.projectDir,
		Locator:    session.NewLocator(a.layout),
		Previewer:  a.previewer(),
		Saver:      writer,
		Prompter:   picker.NewLinePrompter(cmd.InOrStdin(), out),
		Out:        out,
		Logger:     a.logger(),
	})
	if err != nil {
		return err
	}
	return p.Run(a.ctx)
}
