package validation

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// genCPF draws nine base digits, not all equal, and appends both check digits.
func genCPF() *rapid.Generator[[]int] {
	return rapid.Custom(func(t *rapid.T) []int {
		base := rapid.SliceOfN(rapid.IntRange(0, 9), 9, 9).
			Filter(func(d []int) bool {
				for _, v := range d[1:] {
					if v != d[0] {
						return true
					}
				}
				return false
			}).
			Draw(t, "base")
		d := append(base, cpfCheckDigit(base))
		return append(d, cpfCheckDigit(d))
	})
}

func digitsString(d []int) string {
	var b strings.Builder
	for _, v := range d {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

func formatted(d []int) string {
	s := digitsString(d)
	return fmt.Sprintf("%s.%s.%s-%s", s[0:3], s[3:6], s[6:9], s[9:11])
}

func TestValidCPFAcceptsGeneratedNumbers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := genCPF().Draw(t, "cpf")
		if !ValidCPF(digitsString(d)) {
			t.Fatalf("bare %s rejected", digitsString(d))
		}
		if !ValidCPF(formatted(d)) {
			t.Fatalf("formatted %s rejected", formatted(d))
		}
		dashOnly := strings.ReplaceAll(formatted(d), ".", "")
		if !ValidCPF(dashOnly) {
			t.Fatalf("dash-only %s rejected", dashOnly)
		}
	})
}

func TestValidCPFRejectsWrongCheckDigit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := genCPF().Draw(t, "cpf")
		pos := rapid.IntRange(9, 10).Draw(t, "pos")
		delta := rapid.IntRange(1, 9).Draw(t, "delta")

		bad := append([]int(nil), d...)
		bad[pos] = (bad[pos] + delta) % 10
		if ValidCPF(formatted(bad)) {
			t.Fatalf("%s accepted with altered check digit", formatted(bad))
		}
	})
}

func TestValidCPFRejectsRepeatedDigits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.IntRange(0, 9).Draw(t, "digit")
		s := strings.Repeat(string(rune('0'+v)), 11)
		if ValidCPF(s) {
			t.Fatalf("%s accepted", s)
		}
	})
}
