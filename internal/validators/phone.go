package validators

import (
	"regexp"
	"strings"
)

var e164 = regexp.MustCompile(`^[1-9]\d{7,14}$`)

// DigitsOnly remove tudo que não for dígito.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone aceita números com 8 a 15 dígitos, ignorando máscara.
func IsValidPhone(phone string) bool {
	return e164.MatchString(DigitsOnly(strings.TrimSpace(phone)))
}

// NormalizeBRPhone prefixa o DDI 55 em números nacionais (DDD + número).
func NormalizeBRPhone(phone string) string {
	d := DigitsOnly(phone)
	if len(d) == 10 || len(d) == 11 {
		return "55" + d
	}
	return d
}
