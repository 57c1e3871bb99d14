package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatVND renders an amount rounded to whole dong with dot thousand separators,
// e.g. 1800000 -> "1.800.000 VND".
func FormatVND(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%s VND", sign, formatThousand(n))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
