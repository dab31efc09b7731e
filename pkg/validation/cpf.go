package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Dots are optional in the punctuated form, the dash is not.
var cpfShape = regexp.MustCompile(`^(\d{3}\.?\d{3}\.?\d{3}-\d{2}|\d{11})$`)

// ValidCPF reports whether s is a well-formed Brazilian CPF, either as
// NNN.NNN.NNN-NN (dots optional) or as eleven bare digits, with both check
// digits correct.
// Sequences of one repeated digit pass the checksum but are not valid CPFs.
func ValidCPF(s string) bool {
	if !cpfShape.MatchString(s) {
		return false
	}

	d := make([]int, 0, 11)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			d = append(d, int(r-'0'))
		}
	}

	repeated := true
	for _, v := range d[1:] {
		if v != d[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	return cpfCheckDigit(d[:9]) == d[9] && cpfCheckDigit(d[:10]) == d[10]
}

// cpfCheckDigit computes the mod-11 check digit over digits, weighting the
// first one with len(digits)+1 down to 2 for the last.
func cpfCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, v := range digits {
		sum += v * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func validateCPF(fl validator.FieldLevel) bool {
	return ValidCPF(fl.Field().String())
}
