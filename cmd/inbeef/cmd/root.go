package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rovshanmuradov/inbeef/internal/branding"
	"github.com/rovshanmuradov/inbeef/internal/config"
	"github.com/rovshanmuradov/inbeef/internal/logger"
	"github.com/rovshanmuradov/inbeef/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// annotationQuietConsole keeps log lines off the terminal for commands
// that own the screen.
const annotationQuietConsole = "quiet-console"

// app holds what every subcommand shares once the root command has run.
type app struct {
	cfgFile string
	debug   bool
	logFile string

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the root command
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "inbeef",
		Short: "Simulador comparativo de suplementação Inbeef",
		Long: `inbeef compara o custo e o retorno de um suplemento padrão com o
suplemento Inbeef para um lote de bovinos e gera o relatório em PDF.

Comandos:
  simulate  - calcula uma simulação e imprime ou exporta o resultado
  tui       - formulário interativo no terminal
  serve     - formulário web e API HTTP`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = logger.Sync(a.logger)
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "arquivo de configuração (json, yaml ou toml)")
	root.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "log detalhado")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "grava o log em JSON neste arquivo")

	root.AddCommand(
		newSimulateCmd(a),
		newTUICmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.debug {
		cfg.DebugLogging = true
	}
	if a.logFile != "" {
		cfg.LogFile = a.logFile
	}
	a.cfg = cfg

	var console io.Writer = cmd.ErrOrStderr()
	if cmd.Annotations[annotationQuietConsole] == "true" {
		console = nil
	}

	a.logger = logger.New(logger.Options{
		Debug:      cfg.DebugLogging,
		Console:    console,
		File:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	a.logger.Debug("Configuration loaded",
		zap.String("config", a.cfgFile),
		zap.String("output_dir", cfg.OutputDir))
	return nil
}

// branding loads the optional stylesheet and logo.
func (a *app) branding() branding.Assets {
	return branding.Load(a.cfg.StylesheetPath, a.cfg.LogoPath, a.logger)
}

// exporter builds the report exporter with PDF support.
func (a *app) exporter(assets branding.Assets) *report.Exporter {
	renderer := report.NewRenderer(report.RendererConfig{
		Logger:   a.logger,
		Assets:   assets,
		Compress: a.cfg.Report.Compress,
	})
	return report.NewExporter(a.logger, renderer)
}
