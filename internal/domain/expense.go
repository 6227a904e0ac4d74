package domain

// ExpenseTypeExtra is the fixed type of every user-added budget line.
const ExpenseTypeExtra = "extra"

// CustomExpense is a user-added, session-only budget line. The EUR/NOK pair is
// computed once with the rate in effect at entry time and frozen: later rate
// changes never re-price an expense that was already paid for.
type CustomExpense struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	PriceNOK float64 `json:"price_nok"`
	PriceEUR float64 `json:"price_eur"`
	Type     string  `json:"type"`
}

// NewCustomExpense freezes the amount entered in the given display currency
// into both currencies at the supplied rate.
func NewCustomExpense(id, title string, amount float64, currency Currency, rate float64) *CustomExpense {
	e := &CustomExpense{
		ID:    id,
		Title: title,
		Type:  ExpenseTypeExtra,
	}
	if currency == CurrencyNOK {
		e.PriceNOK = amount
		e.PriceEUR = amount / rate
	} else {
		e.PriceEUR = amount
		e.PriceNOK = amount * rate
	}
	return e
}
