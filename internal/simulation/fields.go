package simulation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rovshanmuradov/inbeef/internal/format"
)

// Field describes one input as the forms present it.
type Field struct {
	Key     string
	Label   string
	Help    string
	Unit    string
	Integer bool
	Min     float64
}

// Fields lists the inputs in form order.
var Fields = []Field{
	{Key: KeyDays, Label: "Período – Número de dias (dias)", Help: "Informe a duração do tratamento, em número inteiro de dias.", Unit: "dias", Integer: true, Min: 1},
	{Key: KeyLivePricePerKg, Label: "Valor do kg do peso vivo", Help: "Informe o valor do quilo do peso vivo utilizado para recria.", Unit: "R$/kg", Min: 0.01},
	{Key: KeyAnimalCount, Label: "Número total de animais – (número)", Help: "Total de animais no lote.", Unit: "animais", Integer: true, Min: 1},
	{Key: KeyStandardPricePerKg, Label: "Preço do produto padrão (R$/kg)", Help: "Preço do suplemento padrão por quilo.", Unit: "R$/kg", Min: 0.01},
	{Key: KeyStandardConsumptionG, Label: "Consumo do produto padrão (g/dia)", Help: "Consumo diário em gramas do suplemento padrão.", Unit: "g/dia"},
	{Key: KeyInbeefPricePerKg, Label: "Preço do produto com Inbeef (R$/kg)", Help: "Preço do suplemento com Inbeef por quilo.", Unit: "R$/kg", Min: 0.01},
	{Key: KeyInbeefConsumptionG, Label: "Consumo do produto c/ Inbeef (g/dia)", Help: "Consumo diário em gramas do suplemento com Inbeef.", Unit: "g/dia"},
	{Key: KeyStandardDailyGainG, Label: "GMD Padrão (g/dia)", Help: "Ganho médio diário de peso padrão.", Unit: "g/dia"},
	{Key: KeyExtraDailyGainG, Label: "Expectativa GMD adicional (g/dia)", Help: "Ganho médio diário adicional esperado.", Unit: "g/dia"},
}

// ParseField converts raw form text for f and enforces its minimum.
func ParseField(f Field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidInput, f.Key)
	}

	var v float64
	if f.Integer {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a whole number", ErrInvalidInput, f.Key)
		}
		v = float64(n)
	} else {
		d, err := format.ParseDecimal(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidInput, f.Key, err)
		}
		v = d
	}

	if v < f.Min {
		return 0, fmt.Errorf("%w: %s must be at least %s", ErrInvalidInput, f.Key, format.Number(f.Min, 2))
	}
	return v, nil
}

// ParseInput builds an Input from raw form values keyed by Field.Key. Every
// field is reported, not only the first bad one.
func ParseInput(values map[string]string) (Input, error) {
	parsed := make(map[string]float64, len(Fields))
	var errs []error
	for _, f := range Fields {
		v, err := ParseField(f, values[f.Key])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		parsed[f.Key] = v
	}
	if len(errs) > 0 {
		return Input{}, errors.Join(errs...)
	}

	return Input{
		Days:                 int(parsed[KeyDays]),
		LivePricePerKg:       parsed[KeyLivePricePerKg],
		AnimalCount:          int(parsed[KeyAnimalCount]),
		StandardPricePerKg:   parsed[KeyStandardPricePerKg],
		StandardConsumptionG: parsed[KeyStandardConsumptionG],
		InbeefPricePerKg:     parsed[KeyInbeefPricePerKg],
		InbeefConsumptionG:   parsed[KeyInbeefConsumptionG],
		StandardDailyGainG:   parsed[KeyStandardDailyGainG],
		ExtraDailyGainG:      parsed[KeyExtraDailyGainG],
	}, nil
}

// Values renders in as raw form values, the inverse of ParseInput.
func (in Input) Values() map[string]string {
	plain := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return map[string]string{
		KeyDays:                 strconv.Itoa(in.Days),
		KeyLivePricePerKg:       plain(in.LivePricePerKg),
		KeyAnimalCount:          strconv.Itoa(in.AnimalCount),
		KeyStandardPricePerKg:   plain(in.StandardPricePerKg),
		KeyStandardConsumptionG: plain(in.StandardConsumptionG),
		KeyInbeefPricePerKg:     plain(in.InbeefPricePerKg),
		KeyInbeefConsumptionG:   plain(in.InbeefConsumptionG),
		KeyStandardDailyGainG:   plain(in.StandardDailyGainG),
		KeyExtraDailyGainG:      plain(in.ExtraDailyGainG),
	}
}
