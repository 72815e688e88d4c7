package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func scenarioA() Input {
	return Input{
		Days:                 30,
		LivePricePerKg:       12.00,
		AnimalCount:          100,
		StandardPricePerKg:   2.00,
		StandardConsumptionG: 100,
		InbeefPricePerKg:     3.00,
		InbeefConsumptionG:   120,
		StandardDailyGainG:   900,
		ExtraDailyGainG:      150,
	}
}

func TestRunScenarioA(t *testing.T) {
	res := Run(scenarioA())

	assert.InDelta(t, 0.20, res.StandardDailyCost, 1e-12)
	assert.InDelta(t, 0.36, res.InbeefDailyCost, 1e-12)
	assert.InDelta(t, 0.16, res.InvestmentDelta, 1e-12)
	assert.InDelta(t, 13.333333, res.BreakEvenGainG, 1e-5)
	assert.InDelta(t, 49.2, res.NetGainPerAnimal, 1e-9)
	assert.InDelta(t, 4920, res.LotNetGain, 1e-6)
	assert.InDelta(t, 600, res.StandardTotalCost, 1e-9)
	assert.InDelta(t, 1080, res.InbeefTotalCost, 1e-9)

	assert.InDelta(t, 0.9, res.StandardArrobasProduced, 1e-12)
	assert.InDelta(t, 1.05, res.InbeefArrobasProduced, 1e-12)
	assert.InDelta(t, 32400, res.StandardArrobasValue, 1e-6)
	assert.InDelta(t, 37800, res.InbeefArrobasValue, 1e-6)

	assert.InDelta(t, 11.25, res.ReturnMultiple, 1e-9)
}

func TestRunScenarioB_ZeroLivePrice(t *testing.T) {
	in := scenarioA()
	in.LivePricePerKg = 0

	var res Result
	require.NotPanics(t, func() { res = Run(in) })

	assert.Zero(t, res.BreakEvenGainG)
	assert.Zero(t, res.NetGainPerAnimal)
	assert.Zero(t, res.ReturnMultiple)
	assert.Zero(t, res.StandardArrobasValue)
	assert.InDelta(t, 600, res.StandardTotalCost, 1e-9, "siblings are still computed")
}

func TestRunScenarioC_InbeefCheaper(t *testing.T) {
	in := scenarioA()
	in.InbeefPricePerKg = 1.00

	res := Run(in)

	assert.Less(t, res.InbeefDailyCost, res.StandardDailyCost)
	assert.InDelta(t, -0.08, res.InvestmentDelta, 1e-12)
	assert.Less(t, res.BreakEvenGainG, 0.0)
	assert.Less(t, res.ReturnMultiple, 0.0)
	assert.InDelta(t, (0.15*30*12)/(-0.08*30), res.ReturnMultiple, 1e-9)
	assert.Greater(t, res.NetGainPerAnimal, 0.0)
}

func TestRunZeroDays(t *testing.T) {
	in := scenarioA()
	in.Days = 0

	var res Result
	require.NotPanics(t, func() { res = Run(in) })
	assert.Zero(t, res.ReturnMultiple)
	assert.Zero(t, res.StandardTotalCost)
	assert.Zero(t, res.NetGainPerAnimal)
}

func TestRunIsolatesBadFigures(t *testing.T) {
	in := scenarioA()
	in.StandardConsumptionG = math.NaN()

	res := Run(in)

	assert.Zero(t, res.StandardDailyCost)
	assert.InDelta(t, 0.36, res.InbeefDailyCost, 1e-12)
	assert.InDelta(t, 0.9, res.StandardArrobasProduced, 1e-12)
}

func TestRunIdempotent(t *testing.T) {
	in := scenarioA()
	first := Run(in)
	second := Run(in)
	assert.Equal(t, first, second)

	for _, key := range RecordKeys {
		a := Flatten(in, first).Get(key)
		b := Flatten(in, second).Get(key)
		assert.Equal(t, math.Float64bits(a), math.Float64bits(b), key)
	}
}

func TestEngineSimulate(t *testing.T) {
	engine := NewEngine(zaptest.NewLogger(t))

	res, rec := engine.Simulate(scenarioA())

	assert.Equal(t, Run(scenarioA()), res)
	assert.Len(t, rec, len(RecordKeys))
	assert.Equal(t, 30, rec.Days())
	assert.Equal(t, res.ReturnMultiple, rec.Get(KeyReturnMultiple))
	assert.Zero(t, rec.Get("missing"))
}

func TestNewEngineNilLogger(t *testing.T) {
	engine := NewEngine(nil)
	assert.NotPanics(t, func() { engine.Simulate(DefaultInput()) })
}
