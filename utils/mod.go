package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Clamp(value, lo, hi float64) float64 {
	return max(min(value, hi), lo)
}
