package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency formata um valor monetário para exibição em logs e
// relatórios, ex: 1234.5 -> "$1,234.50"
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	s := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(s, ".", 2)

	formatted := "$" + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatNumber formata uma contagem com separador de milhar,
// ex: 12345 -> "12,345"
func FormatNumber(value int) string {
	negative := value < 0
	if negative {
		value = -value
	}

	formatted := groupThousands(fmt.Sprintf("%d", value))
	if negative {
		return "-" + formatted
	}
	return formatted
}

// groupThousands insere vírgulas a cada três dígitos, da direita para a esquerda
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
