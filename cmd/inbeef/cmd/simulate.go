package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/inbeef/internal/report"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flagName maps a record key to its command-line flag.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func newSimulateCmd(a *app) *cobra.Command {
	var (
		output    string
		export    string
		exportDir string
		raw       = make(map[string]*string, len(simulation.Fields))
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Calcula uma simulação",
		Long: `Calcula uma simulação a partir dos valores padrão da configuração,
sobrescritos pelas flags informadas. Aceita vírgula decimal (12,50).`,
		Example: `  inbeef simulate --days 30 --live-price-per-kg 12,00 --animal-count 100 \
    --standard-price-per-kg 2 --standard-consumption-g 100 \
    --inbeef-price-per-kg 3 --inbeef-consumption-g 120 \
    --standard-daily-gain-g 900 --extra-daily-gain-g 150 --export pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := a.cfg.Defaults.Values()
			for _, f := range simulation.Fields {
				if cmd.Flags().Changed(flagName(f.Key)) {
					values[f.Key] = *raw[f.Key]
				}
			}

			in, err := simulation.ParseInput(values)
			if err != nil {
				return err
			}

			_, rec := simulation.NewEngine(a.logger).Simulate(in)

			if err := printRecord(cmd.OutOrStdout(), rec, output); err != nil {
				return err
			}

			if export == "" {
				return nil
			}
			format, err := report.ParseFormat(export)
			if err != nil {
				return err
			}
			if exportDir == "" {
				exportDir = a.cfg.OutputDir
			}
			path, err := a.exporter(a.branding()).Export(rec, report.ExportOptions{
				Format:    format,
				OutputDir: exportDir,
			})
			if err != nil {
				a.logger.Error("Export failed", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Relatório salvo em %s\n", path)
			return nil
		},
	}

	for _, f := range simulation.Fields {
		raw[f.Key] = cmd.Flags().String(flagName(f.Key), "", f.Label)
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "formato de saída: text, json, yaml ou csv")
	cmd.Flags().StringVar(&export, "export", "", "grava o resultado em arquivo: pdf, json, yaml ou csv")
	cmd.Flags().StringVar(&exportDir, "export-dir", "", "diretório de exportação (padrão: output_dir da configuração)")

	return cmd
}

// printRecord writes rec to w as a text summary or one of the export
// encodings other than PDF.
func printRecord(w io.Writer, rec simulation.Record, output string) error {
	if output == "" || output == "text" {
		_, err := io.WriteString(w, renderSummary(rec)+"\n")
		return err
	}

	format, err := report.ParseFormat(output)
	if err != nil {
		return err
	}
	if format == report.FormatPDF {
		return fmt.Errorf("use --export pdf to write the PDF report")
	}
	return report.NewExporter(nil, nil).Write(w, rec, format)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Faint(true)
)

func renderSummary(rec simulation.Record) string {
	left, right := report.SummaryColumns(rec)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(report.ReportTitle+" – "+report.ReportSubtitle),
		lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Render(renderColumn(left)),
			boxStyle.Render(renderColumn(right)),
		),
		"Interpretação: "+report.Interpretation(rec),
	)
}

func renderColumn(lines []report.Line) string {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.Label))
	}

	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, labelStyle.Width(width+2).Render(l.Label)+l.Value)
	}
	return strings.Join(rows, "\n")
}
