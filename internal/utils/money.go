package utils

import "fmt"

// FormatBRL renders centavos as a Brazilian currency string, e.g. 123456789
// becomes "R$ 1.234.567,89".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	reais := cents / 100
	centavos := cents % 100

	digits := fmt.Sprintf("%d", reais)
	var grouped []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, c)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped, centavos)
}
