package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents хранит денежную сумму в центах, без float64:
// сложение и SUM в SQL остаются точными
type Cents int64

// ParseCents разбирает десятичную строку вида "20", "20.5", "-3.10".
// Допускается не больше двух знаков после точки.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount has more than two decimal places")
	}

	var wholePart int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %q", s)
		}
		wholePart = n
	}

	var fracPart int64
	if frac != "" {
		n, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid amount: %q", s)
		}
		fracPart = n
		if len(frac) == 1 {
			fracPart *= 10
		}
	}

	const maxWhole = (1<<63 - 1) / 100
	if wholePart > maxWhole {
		return 0, fmt.Errorf("amount out of range")
	}

	total := wholePart*100 + fracPart
	if neg {
		total = -total
	}

	return Cents(total), nil
}

// String форматирует сумму как десятичную строку с двумя знаками
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON сериализует сумму как JSON number: 2050 -> 20.50
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON принимает и number, и строку в кавычках
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseCents(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
