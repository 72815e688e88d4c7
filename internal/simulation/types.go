// Package simulation computes the economics of replacing a standard feed
// supplement with the Inbeef supplement for a lot of cattle.
package simulation

import (
	"errors"
	"fmt"
	"math"
)

const (
	// GramsPerKg converts intake and gain figures expressed in grams.
	GramsPerKg = 1000.0
	// KgPerArroba is the Brazilian arroba used to price live weight.
	KgPerArroba = 30.0
)

// ErrInvalidInput is wrapped by every error returned from Input.Validate.
var ErrInvalidInput = errors.New("invalid simulation input")

// Input holds the per-animal figures supplied by the user.
type Input struct {
	Days                 int     `json:"days" yaml:"days" mapstructure:"days"`
	LivePricePerKg       float64 `json:"live_price_per_kg" yaml:"live_price_per_kg" mapstructure:"live_price_per_kg"`
	AnimalCount          int     `json:"animal_count" yaml:"animal_count" mapstructure:"animal_count"`
	StandardPricePerKg   float64 `json:"standard_price_per_kg" yaml:"standard_price_per_kg" mapstructure:"standard_price_per_kg"`
	StandardConsumptionG float64 `json:"standard_consumption_g" yaml:"standard_consumption_g" mapstructure:"standard_consumption_g"`
	InbeefPricePerKg     float64 `json:"inbeef_price_per_kg" yaml:"inbeef_price_per_kg" mapstructure:"inbeef_price_per_kg"`
	InbeefConsumptionG   float64 `json:"inbeef_consumption_g" yaml:"inbeef_consumption_g" mapstructure:"inbeef_consumption_g"`
	StandardDailyGainG   float64 `json:"standard_daily_gain_g" yaml:"standard_daily_gain_g" mapstructure:"standard_daily_gain_g"`
	ExtraDailyGainG      float64 `json:"extra_daily_gain_g" yaml:"extra_daily_gain_g" mapstructure:"extra_daily_gain_g"`
}

// Result holds every figure derived from an Input.
type Result struct {
	StandardDailyCost       float64 `json:"standard_daily_cost" yaml:"standard_daily_cost"`
	InbeefDailyCost         float64 `json:"inbeef_daily_cost" yaml:"inbeef_daily_cost"`
	InvestmentDelta         float64 `json:"investment_delta" yaml:"investment_delta"`
	BreakEvenGainG          float64 `json:"break_even_gain_g" yaml:"break_even_gain_g"`
	NetGainPerAnimal        float64 `json:"net_gain_per_animal" yaml:"net_gain_per_animal"`
	LotNetGain              float64 `json:"lot_net_gain" yaml:"lot_net_gain"`
	StandardTotalCost       float64 `json:"standard_total_cost" yaml:"standard_total_cost"`
	InbeefTotalCost         float64 `json:"inbeef_total_cost" yaml:"inbeef_total_cost"`
	StandardArrobasProduced float64 `json:"standard_arrobas_produced" yaml:"standard_arrobas_produced"`
	InbeefArrobasProduced   float64 `json:"inbeef_arrobas_produced" yaml:"inbeef_arrobas_produced"`
	StandardArrobasValue    float64 `json:"standard_arrobas_value" yaml:"standard_arrobas_value"`
	InbeefArrobasValue      float64 `json:"inbeef_arrobas_value" yaml:"inbeef_arrobas_value"`
	ReturnMultiple          float64 `json:"return_multiple" yaml:"return_multiple"`
}

// DefaultInput returns the values the input form starts with.
func DefaultInput() Input {
	return Input{
		Days:               30,
		LivePricePerKg:     0.01,
		AnimalCount:        1,
		StandardPricePerKg: 0.01,
		InbeefPricePerKg:   0.01,
	}
}

// Validate checks the minimums the form enforces. The engine itself accepts
// any Input.
func (in Input) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...)))
		}
	}

	check(in.Days >= 1, "days must be at least 1, got %d", in.Days)
	check(in.AnimalCount >= 1, "animal_count must be at least 1, got %d", in.AnimalCount)
	check(in.LivePricePerKg > 0, "live_price_per_kg must be positive, got %v", in.LivePricePerKg)
	check(in.StandardPricePerKg > 0, "standard_price_per_kg must be positive, got %v", in.StandardPricePerKg)
	check(in.InbeefPricePerKg > 0, "inbeef_price_per_kg must be positive, got %v", in.InbeefPricePerKg)
	check(in.StandardConsumptionG >= 0, "standard_consumption_g must not be negative, got %v", in.StandardConsumptionG)
	check(in.InbeefConsumptionG >= 0, "inbeef_consumption_g must not be negative, got %v", in.InbeefConsumptionG)
	check(in.StandardDailyGainG >= 0, "standard_daily_gain_g must not be negative, got %v", in.StandardDailyGainG)
	check(in.ExtraDailyGainG >= 0, "extra_daily_gain_g must not be negative, got %v", in.ExtraDailyGainG)

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"live_price_per_kg", in.LivePricePerKg},
		{"standard_price_per_kg", in.StandardPricePerKg},
		{"standard_consumption_g", in.StandardConsumptionG},
		{"inbeef_price_per_kg", in.InbeefPricePerKg},
		{"inbeef_consumption_g", in.InbeefConsumptionG},
		{"standard_daily_gain_g", in.StandardDailyGainG},
		{"extra_daily_gain_g", in.ExtraDailyGainG},
	} {
		check(!math.IsInf(f.v, 0), "%s must be finite, got %v", f.name, f.v)
	}

	return errors.Join(errs...)
}
