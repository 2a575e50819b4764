// Package cpf validates and normalizes Brazilian CPF numbers.
package cpf

import (
	"errors"
	"strings"
)

var ErrInvalidCPF = errors.New("invalid CPF")

// Normalize strips formatting characters, validates the 11-digit number and its
// two check digits, and returns the digits-only form.
func Normalize(raw string) (string, error) {
	digits := onlyDigits(raw)
	if len(digits) != 11 {
		return "", ErrInvalidCPF
	}

	// CPFs with all digits equal pass the check-digit math but are not valid.
	if strings.Count(digits, string(digits[0])) == 11 {
		return "", ErrInvalidCPF
	}

	if digits[9] != checkDigit(digits[:9], 10) || digits[10] != checkDigit(digits[:10], 11) {
		return "", ErrInvalidCPF
	}

	return digits, nil
}

// IsValid reports whether raw is a well-formed CPF after normalization.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func checkDigit(digits string, startWeight int) byte {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * (startWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return byte('0' + rest)
}
