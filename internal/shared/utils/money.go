package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatThousandsUSD renders an amount in whole thousands of dollars, the way
// the CRM cards show values: 125000 is "$125K", 12500 is "$13K" and
// 1250000 is "$1,250K". Halves round away from zero.
func FormatThousandsUSD(value float64) string {
	return moneyPrinter.Sprintf("$%dK", int64(math.Round(value/1000)))
}
