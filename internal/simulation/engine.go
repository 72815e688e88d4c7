package simulation

import (
	"go.uber.org/zap"
)

// Run derives a Result from in. It never fails: any figure that cannot be
// computed is reported as 0.
func Run(in Input) Result {
	var r Result

	r.StandardDailyCost = DailyCost(in.StandardConsumptionG, in.StandardPricePerKg)
	r.InbeefDailyCost = DailyCost(in.InbeefConsumptionG, in.InbeefPricePerKg)
	r.InvestmentDelta = InvestmentDelta(r.InbeefDailyCost, r.StandardDailyCost)
	r.BreakEvenGainG = BreakEvenGain(r.InvestmentDelta, in.LivePricePerKg)
	r.NetGainPerAnimal = NetGainPerAnimal(in.ExtraDailyGainG, r.BreakEvenGainG, in.LivePricePerKg, in.Days)
	r.LotNetGain = LotNetGain(r.NetGainPerAnimal, in.AnimalCount)
	r.StandardTotalCost = StandardTotalCost(in.AnimalCount, r.StandardDailyCost, in.Days)
	r.InbeefTotalCost = InbeefTotalCost(in.AnimalCount, r.InbeefDailyCost, in.Days)

	r.StandardArrobasProduced = ArrobasProduced(in.StandardDailyGainG, in.Days)
	r.StandardArrobasValue = ArrobasValue(r.StandardArrobasProduced, in.LivePricePerKg, in.AnimalCount)
	r.InbeefArrobasProduced = ArrobasProduced(in.StandardDailyGainG+in.ExtraDailyGainG, in.Days)
	r.InbeefArrobasValue = ArrobasValue(r.InbeefArrobasProduced, in.LivePricePerKg, in.AnimalCount)

	r.ReturnMultiple = ReturnMultiple(in.ExtraDailyGainG, in.LivePricePerKg, r.InvestmentDelta, in.Days)

	return r
}

// Engine runs simulations and traces them to a logger.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new engine. A nil logger disables tracing.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger.Named("simulation")}
}

// Simulate runs in and returns the result together with its flat record.
func (e *Engine) Simulate(in Input) (Result, Record) {
	res := Run(in)

	e.logger.Debug("Simulation computed",
		zap.Int("days", in.Days),
		zap.Int("animal_count", in.AnimalCount),
		zap.Float64("investment_delta", res.InvestmentDelta),
		zap.Float64("break_even_gain_g", res.BreakEvenGainG),
		zap.Float64("net_gain_per_animal", res.NetGainPerAnimal),
		zap.Float64("return_multiple", res.ReturnMultiple))

	return res, Flatten(in, res)
}
