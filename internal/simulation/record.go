package simulation

// Keys of a Record. Input keys match the json tags of Input.
const (
	KeyDays                    = "days"
	KeyLivePricePerKg          = "live_price_per_kg"
	KeyAnimalCount             = "animal_count"
	KeyStandardPricePerKg      = "standard_price_per_kg"
	KeyStandardConsumptionG    = "standard_consumption_g"
	KeyInbeefPricePerKg        = "inbeef_price_per_kg"
	KeyInbeefConsumptionG      = "inbeef_consumption_g"
	KeyStandardDailyGainG      = "standard_daily_gain_g"
	KeyExtraDailyGainG         = "extra_daily_gain_g"
	KeyStandardDailyCost       = "standard_daily_cost"
	KeyInbeefDailyCost         = "inbeef_daily_cost"
	KeyInvestmentDelta         = "investment_delta"
	KeyBreakEvenGainG          = "break_even_gain_g"
	KeyNetGainPerAnimal        = "net_gain_per_animal"
	KeyLotNetGain              = "lot_net_gain"
	KeyStandardTotalCost       = "standard_total_cost"
	KeyInbeefTotalCost         = "inbeef_total_cost"
	KeyStandardArrobasProduced = "standard_arrobas_produced"
	KeyStandardArrobasValue    = "standard_arrobas_value"
	KeyInbeefArrobasProduced   = "inbeef_arrobas_produced"
	KeyInbeefArrobasValue      = "inbeef_arrobas_value"
	KeyReturnMultiple          = "return_multiple"
)

// RecordKeys lists every Record key, inputs first, in report order.
var RecordKeys = []string{
	KeyDays,
	KeyLivePricePerKg,
	KeyAnimalCount,
	KeyStandardPricePerKg,
	KeyStandardConsumptionG,
	KeyInbeefPricePerKg,
	KeyInbeefConsumptionG,
	KeyStandardDailyGainG,
	KeyExtraDailyGainG,
	KeyStandardDailyCost,
	KeyInbeefDailyCost,
	KeyInvestmentDelta,
	KeyBreakEvenGainG,
	KeyNetGainPerAnimal,
	KeyLotNetGain,
	KeyStandardTotalCost,
	KeyInbeefTotalCost,
	KeyStandardArrobasProduced,
	KeyStandardArrobasValue,
	KeyInbeefArrobasProduced,
	KeyInbeefArrobasValue,
	KeyReturnMultiple,
}

// Record is the merged Input and Result as a flat mapping of named values.
// It is what reports and exports consume.
type Record map[string]float64

// Get returns the value stored under key, or 0 when it is absent.
func (r Record) Get(key string) float64 {
	return r[key]
}

// Days returns the simulated period as a whole number of days.
func (r Record) Days() int {
	return int(Guard(func() float64 { return r[KeyDays] }))
}

// Flatten merges in and res into a Record.
func Flatten(in Input, res Result) Record {
	return Record{
		KeyDays:                    float64(in.Days),
		KeyLivePricePerKg:          in.LivePricePerKg,
		KeyAnimalCount:             float64(in.AnimalCount),
		KeyStandardPricePerKg:      in.StandardPricePerKg,
		KeyStandardConsumptionG:    in.StandardConsumptionG,
		KeyInbeefPricePerKg:        in.InbeefPricePerKg,
		KeyInbeefConsumptionG:      in.InbeefConsumptionG,
		KeyStandardDailyGainG:      in.StandardDailyGainG,
		KeyExtraDailyGainG:         in.ExtraDailyGainG,
		KeyStandardDailyCost:       res.StandardDailyCost,
		KeyInbeefDailyCost:         res.InbeefDailyCost,
		KeyInvestmentDelta:         res.InvestmentDelta,
		KeyBreakEvenGainG:          res.BreakEvenGainG,
		KeyNetGainPerAnimal:        res.NetGainPerAnimal,
		KeyLotNetGain:              res.LotNetGain,
		KeyStandardTotalCost:       res.StandardTotalCost,
		KeyInbeefTotalCost:         res.InbeefTotalCost,
		KeyStandardArrobasProduced: res.StandardArrobasProduced,
		KeyStandardArrobasValue:    res.StandardArrobasValue,
		KeyInbeefArrobasProduced:   res.InbeefArrobasProduced,
		KeyInbeefArrobasValue:      res.InbeefArrobasValue,
		KeyReturnMultiple:          res.ReturnMultiple,
	}
}
