package simulation

// DailyCost is the per-animal daily supplement cost.
func DailyCost(consumptionG, priceKg float64) float64 {
	return Guard(func() float64 {
		return (consumptionG / GramsPerKg) * priceKg
	})
}

// InvestmentDelta is the extra daily spend per animal on Inbeef. It is
// negative when Inbeef is the cheaper supplement.
func InvestmentDelta(inbeefDailyCost, standardDailyCost float64) float64 {
	return Guard(func() float64 {
		return inbeefDailyCost - standardDailyCost
	})
}

// BreakEvenGain is the extra daily gain in g/day whose live-weight value pays
// for the investment delta.
func BreakEvenGain(investmentDelta, livePricePerKg float64) float64 {
	return Guard(func() float64 {
		if livePricePerKg == 0 {
			return 0
		}
		return (investmentDelta / livePricePerKg) * GramsPerKg
	})
}

// NetGainPerAnimal is the value of the gain above break-even over the whole
// period. Losses are floored at zero, never reported.
func NetGainPerAnimal(extraDailyGainG, breakEvenGainG, livePricePerKg float64, days int) float64 {
	return Guard(func() float64 {
		dailyNetGainKg := (extraDailyGainG - breakEvenGainG) / GramsPerKg
		if dailyNetGainKg < 0 {
			return 0
		}
		gain := dailyNetGainKg * livePricePerKg * float64(days)
		if gain <= 0 {
			return 0
		}
		return gain
	})
}

// LotNetGain scales the per-animal net gain to the whole lot.
func LotNetGain(netGainPerAnimal float64, animalCount int) float64 {
	return Guard(func() float64 {
		return netGainPerAnimal * float64(animalCount)
	})
}

// TotalCost is the supplement bill for the lot over the period.
func TotalCost(animalCount int, dailyCost float64, days int) float64 {
	return Guard(func() float64 {
		return float64(animalCount) * dailyCost * float64(days)
	})
}

// StandardTotalCost is TotalCost for the standard supplement.
func StandardTotalCost(animalCount int, standardDailyCost float64, days int) float64 {
	return TotalCost(animalCount, standardDailyCost, days)
}

// InbeefTotalCost is TotalCost for the Inbeef supplement.
func InbeefTotalCost(animalCount int, inbeefDailyCost float64, days int) float64 {
	return TotalCost(animalCount, inbeefDailyCost, days)
}

// ArrobasProduced converts a daily gain held for days into arrobas per animal.
func ArrobasProduced(dailyGainG float64, days int) float64 {
	return Guard(func() float64 {
		return ((dailyGainG / GramsPerKg) * float64(days)) / KgPerArroba
	})
}

// ArrobasValue prices the arrobas produced by the whole lot.
func ArrobasValue(arrobas, livePricePerKg float64, animalCount int) float64 {
	return Guard(func() float64 {
		return arrobas * (livePricePerKg * KgPerArroba) * float64(animalCount)
	})
}

// ReturnMultiple is the value of the extra gain divided by the extra cost
// that produced it. A negative delta gives a negative multiple; the sign is
// kept as is.
func ReturnMultiple(extraDailyGainG, livePricePerKg, investmentDelta float64, days int) float64 {
	return Guard(func() float64 {
		cost := investmentDelta * float64(days)
		if cost == 0 {
			return 0
		}
		return ((extraDailyGainG / GramsPerKg) * float64(days) * livePricePerKg) / cost
	})
}
