package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda valores monetários com meio-para-par (bancário),
// então 29.005 vira 29.00 e 29.015 vira 29.02.
func RoundWithTwoDecimalPlace(d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}

	return d.RoundBank(2).InexactFloat64()
}

// SafeDivide retorna zero quando o divisor é zero
func SafeDivide(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}

	return numerator.Div(denominator)
}
