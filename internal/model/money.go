package model

// Money represents a monetary value as integer minor units plus a divisor,
// the way the Etsy API serializes prices. The decimal value is amount/divisor.
type Money struct {
	Amount       int64  `json:"amount"`
	Divisor      int64  `json:"divisor"`
	CurrencyCode string `json:"currency_code"`
}

// Float returns the decimal value for display. The stored integers are
// never rounded or mutated.
func (m Money) Float() float64 {
	if m.Divisor == 0 {
		return 0
	}
	return float64(m.Amount) / float64(m.Divisor)
}

// USD builds a USD money value with the standard cent divisor.
func USD(cents int64) Money {
	return Money{Amount: cents, Divisor: 100, CurrencyCode: "USD"}
}
