package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rovshanmuradov/inbeef/internal/report"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioArgs = []string{
	"simulate",
	"--days", "30",
	"--live-price-per-kg", "12,00",
	"--animal-count", "100",
	"--standard-price-per-kg", "2",
	"--standard-consumption-g", "100",
	"--inbeef-price-per-kg", "3",
	"--inbeef-consumption-g", "120",
	"--standard-daily-gain-g", "900",
	"--extra-daily-gain-g", "150",
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func withArgs(extra ...string) []string {
	return append(append([]string{}, scenarioArgs...), extra...)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "inbeef v"+Version)
}

func TestSimulateText(t *testing.T) {
	out, err := run(t, scenarioArgs...)
	require.NoError(t, err)

	assert.Contains(t, out, "Relatório Comparativo Inbra")
	assert.Contains(t, out, "Ganho líquido por animal (R$)")
	assert.Contains(t, out, "R$ 49,20")
	assert.Contains(t, out, "Interpretação: Em 30 dias")
}

func TestSimulateJSON(t *testing.T) {
	out, err := run(t, withArgs("--output", "json")...)
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, 12.0, doc.Values.Get(simulation.KeyLivePricePerKg))
	assert.InDelta(t, 11.25, doc.Values.Get(simulation.KeyReturnMultiple), 1e-9)
	assert.InDelta(t, 4920, doc.Values.Get(simulation.KeyLotNetGain), 1e-9)
}

func TestSimulateUsesConfigDefaults(t *testing.T) {
	out, err := run(t, "simulate", "--output", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "days,30\n")
	assert.Contains(t, out, "animal_count,1\n")
}

func TestSimulateExportPDF(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, withArgs("--export", "pdf", "--export-dir", dir)...)
	require.NoError(t, err)

	path := filepath.Join(dir, "sim_inbra_pasto_30d.pdf")
	assert.FileExists(t, path)
	assert.Contains(t, out, "Relatório salvo em "+path)
}

func TestSimulateErrors(t *testing.T) {
	_, err := run(t, withArgs("--days", "0")...)
	assert.ErrorIs(t, err, simulation.ErrInvalidInput)

	_, err = run(t, withArgs("--output", "pdf")...)
	assert.Error(t, err)

	_, err = run(t, withArgs("--export", "docx")...)
	assert.Error(t, err)

	_, err = run(t, "simulate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
