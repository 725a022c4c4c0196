package utils

import "math"

// RoundInt arredonda para o inteiro mais próximo, meio para cima como o Math.round do navegador.
func RoundInt(f float64) int {
	return int(math.Floor(f + 0.5))
}

// Clamp limita v ao intervalo [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
