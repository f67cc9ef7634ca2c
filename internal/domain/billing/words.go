package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var frUnits = [...]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

var frTens = [...]string{"", "", "vingt", "trente", "quarante", "cinquante", "soixante"}

// AmountInWords escribe un monto en dirhams en letras (francés), tal como se imprime
// bajo los totales: "mille deux cent trente-quatre dirhams et cinquante centimes".
// El monto se redondea antes a 2 decimales.
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Round(MoneyPlaces)
	negative := amount.IsNegative()
	amount = amount.Abs()

	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Mul(hundred).IntPart()

	var b strings.Builder
	if negative {
		b.WriteString("moins ")
	}
	w := whole.IntPart()
	b.WriteString(IntegerToWords(w))
	if w > 1 {
		b.WriteString(" dirhams")
	} else {
		b.WriteString(" dirham")
	}
	if cents > 0 {
		b.WriteString(" et ")
		b.WriteString(IntegerToWords(cents))
		if cents > 1 {
			b.WriteString(" centimes")
		} else {
			b.WriteString(" centime")
		}
	}
	return b.String()
}

// IntegerToWords convierte un entero no negativo a letras en francés (ortografía tradicional).
func IntegerToWords(n int64) string {
	if n < 0 {
		return "moins " + IntegerToWords(-n)
	}
	if n == 0 {
		return frUnits[0]
	}
	var parts []string
	if billions := n / 1_000_000_000; billions > 0 {
		parts = append(parts, scale(IntegerToWords(billions), billions, "milliard"))
	}
	if millions := (n / 1_000_000) % 1000; millions > 0 {
		parts = append(parts, scale(below1000(int(millions), false), millions, "million"))
	}
	if thousands := (n / 1000) % 1000; thousands > 0 {
		if thousands == 1 {
			parts = append(parts, "mille")
		} else {
			parts = append(parts, below1000(int(thousands), true)+" mille")
		}
	}
	if rest := n % 1000; rest > 0 {
		parts = append(parts, below1000(int(rest), false))
	}
	return strings.Join(parts, " ")
}

func scale(words string, n int64, unit string) string {
	if n > 1 {
		return words + " " + unit + "s"
	}
	return words + " " + unit
}

// below1000: "cent" y "quatre-vingt" solo llevan s al final del número, nunca delante de "mille".
func below1000(n int, beforeMille bool) string {
	hundreds, rest := n/100, n%100
	var parts []string
	if hundreds > 0 {
		w := "cent"
		if hundreds > 1 {
			w = frUnits[hundreds] + " cent"
			if rest == 0 && !beforeMille {
				w += "s"
			}
		}
		parts = append(parts, w)
	}
	if rest > 0 {
		w := below100(rest)
		if rest == 80 && beforeMille {
			w = "quatre-vingt"
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, " ")
}

func below100(n int) string {
	if n < 17 {
		return frUnits[n]
	}
	if n < 20 {
		return "dix-" + frUnits[n-10]
	}
	tens, unit := n/10, n%10
	switch tens {
	case 7:
		if unit == 1 {
			return "soixante et onze"
		}
		return "soixante-" + below100(10+unit)
	case 8:
		if unit == 0 {
			return "quatre-vingts"
		}
		return "quatre-vingt-" + frUnits[unit]
	case 9:
		return "quatre-vingt-" + below100(10+unit)
	}
	switch unit {
	case 0:
		return frTens[tens]
	case 1:
		return frTens[tens] + " et un"
	}
	return frTens[tens] + "-" + frUnits[unit]
}
