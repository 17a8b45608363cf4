package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentChange devolve a variação percentual com uma casa decimal. Sem base
// de comparação (previous zero) a variação é zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return math.Round((current-previous)/math.Abs(previous)*1000) / 10
}
