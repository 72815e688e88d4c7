package report

import (
	"fmt"
	"strconv"

	"github.com/rovshanmuradov/inbeef/internal/format"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
)

// Fixed report text.
const (
	ReportTitle    = "Relatório Comparativo Inbra"
	ReportSubtitle = "Inbeef"
	Disclaimer     = "Este relatório apresenta apenas uma projeção baseada nos parâmetros informados. " +
		"Resultados reais podem variar devido a fatores externos não controláveis " +
		"(condições climáticas, qualidade da pastagem, saúde dos animais etc.)."
)

// Line is one labelled value.
type Line struct {
	Label string
	Value string
}

// Interpretation summarises the simulation in one sentence.
func Interpretation(rec simulation.Record) string {
	return fmt.Sprintf(
		"Em %d dias, o investimento extra em Inbeef de %s pode gerar %s vezes o valor adicional investido, "+
			"equivalente a um ganho líquido de %s por animal.",
		rec.Days(),
		format.Currency(rec.Get(simulation.KeyInvestmentDelta), 2),
		format.Fixed(rec.Get(simulation.KeyReturnMultiple), 2),
		format.Currency(rec.Get(simulation.KeyNetGainPerAnimal), 2),
	)
}

// SummaryColumns lists the results the way the interactive screens show
// them, standard figures on the left and Inbeef figures on the right.
func SummaryColumns(rec simulation.Record) (left, right []Line) {
	money := func(key string) string { return format.Currency(rec.Get(key), 2) }
	fixed := func(key string) string { return format.Fixed(rec.Get(key), 2) }

	left = []Line{
		{"Custo diário padrão (R$)", money(simulation.KeyStandardDailyCost)},
		{"Custo total da suplementação padrão (R$)", money(simulation.KeyStandardTotalCost)},
		{"Quantidade de @ produzidas sistema padrão (Arroba)", fixed(simulation.KeyStandardArrobasProduced)},
		{"Valor das @ produzidas padrão (R$)", money(simulation.KeyStandardArrobasValue)},
		{"Diferença de investimento animal/dia (R$)", money(simulation.KeyInvestmentDelta)},
		{"Ganho líquido por animal (R$)", money(simulation.KeyNetGainPerAnimal)},
		{"Ganho líquido do lote (R$)", money(simulation.KeyLotNetGain)},
	}
	right = []Line{
		{"Custo diário Inbeef (R$)", money(simulation.KeyInbeefDailyCost)},
		{"Custo total da suplementação Inbeef (R$)", money(simulation.KeyInbeefTotalCost)},
		{"Quantidade de @ produzidas sistema Inbeef (Arroba)", fixed(simulation.KeyInbeefArrobasProduced)},
		{"Valor das @ produzidas Inbeef (R$)", money(simulation.KeyInbeefArrobasValue)},
		{"Ponto de equilíbrio (g/dia)", fixed(simulation.KeyBreakEvenGainG)},
		{"Retorno sobre Investimento", fixed(simulation.KeyReturnMultiple)},
	}
	return left, right
}

// parameterLines are the inputs printed in the report.
func parameterLines(rec simulation.Record) []Line {
	return []Line{
		{"Número de dias", strconv.Itoa(rec.Days())},
		{"Valor do kg do peso vivo", format.Currency(rec.Get(simulation.KeyLivePricePerKg), 2)},
		{"Nº de animais", strconv.Itoa(wholeNumber(rec, simulation.KeyAnimalCount))},
		{"Custo diário padrão (R$/animal)", format.Currency(rec.Get(simulation.KeyStandardDailyCost), 2)},
		{"Custo diário Inbeef (R$/animal)", format.Currency(rec.Get(simulation.KeyInbeefDailyCost), 2)},
		{"GMD Padrão (g/dia)", format.Fixed(rec.Get(simulation.KeyStandardDailyGainG), 2) + " g/dia"},
		{"Expectativa GMD adicional (g/dia)", format.Fixed(rec.Get(simulation.KeyExtraDailyGainG), 2) + " g/dia"},
	}
}

// resultColumns are the results printed in the report, with shorter labels
// than SummaryColumns and whole-real totals.
func resultColumns(rec simulation.Record) (left, right []Line) {
	money := func(key string, places int) string { return format.Currency(rec.Get(key), places) }

	left = []Line{
		{"Custo diário padrão", money(simulation.KeyStandardDailyCost, 2)},
		{"Custo total da suplem. padrão", money(simulation.KeyStandardTotalCost, 0)},
		{"Quantidade de @ sistema padrão", format.Fixed(rec.Get(simulation.KeyStandardArrobasProduced), 2) + " @"},
		{"Valor das @ produz. padrão", money(simulation.KeyStandardArrobasValue, 0)},
		{"Diferença de invest. animal/dia", money(simulation.KeyInvestmentDelta, 2)},
		{"Ganho líquido por animal", money(simulation.KeyNetGainPerAnimal, 2)},
	}
	right = []Line{
		{"Custo diário Inbeef", money(simulation.KeyInbeefDailyCost, 2)},
		{"Custo total da suplem. Inbeef", money(simulation.KeyInbeefTotalCost, 0)},
		{"Quantidade de @ sistema Inbeef", format.Fixed(rec.Get(simulation.KeyInbeefArrobasProduced), 2) + " @"},
		{"Valor das @ produz. Inbeef", money(simulation.KeyInbeefArrobasValue, 0)},
		{"Ponto de equilíbrio", format.Fixed(rec.Get(simulation.KeyBreakEvenGainG), 2) + " g/dia"},
		{"Retorno sobre Invest.", format.Fixed(rec.Get(simulation.KeyReturnMultiple), 2) + " x"},
	}
	return left, right
}

func wholeNumber(rec simulation.Record, key string) int {
	return int(simulation.Guard(func() float64 { return rec.Get(key) }))
}
