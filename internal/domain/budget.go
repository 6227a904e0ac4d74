package domain

import "math"

// BudgetTotals are the planned/spent/pending sums of the day, kept in EUR. The
// planned itinerary is always re-expressed at the live rate when displayed;
// only custom expenses freeze their conversion at entry time.
type BudgetTotals struct {
	TotalEUR   float64
	SpentEUR   float64
	PendingEUR float64
}

// ComputeBudget aggregates the itinerary and the custom expense list.
// Activities count toward spent only when their id is in the paid set; custom
// expenses represent money already handed over and are spent immediately.
func ComputeBudget(activities []*Activity, expenses []*CustomExpense, paid map[string]bool) BudgetTotals {
	var planned, spentPlanned, custom float64

	for _, a := range activities {
		planned += a.PriceEUR
		if paid[a.ID] {
			spentPlanned += a.PriceEUR
		}
	}
	for _, e := range expenses {
		custom += e.PriceEUR
	}

	total := planned + custom
	spent := spentPlanned + custom

	return BudgetTotals{
		TotalEUR:   total,
		SpentEUR:   spent,
		PendingEUR: total - spent,
	}
}

// InCurrency re-expresses an EUR amount in the display currency at the given
// rate (1 EUR = rate NOK). Computed at query time so a rate change immediately
// re-prices every total.
func InCurrency(amountEUR float64, currency Currency, rate float64) float64 {
	if currency == CurrencyNOK {
		return amountEUR * rate
	}
	return amountEUR
}

// DisplayAmount truncates a monetary value to whole units for headline
// figures (127 EUR at 11.8 displays as 1498 kr).
func DisplayAmount(v float64) int {
	return int(math.Trunc(v))
}

// ConvertDirection is the standalone converter's direction.
type ConvertDirection string

const (
	ConvertEURToNOK ConvertDirection = "EUR_TO_NOK"
	ConvertNOKToEUR ConvertDirection = "NOK_TO_EUR"
)

// Convert applies the converter tool's arithmetic: multiply toward NOK, divide
// toward EUR.
func Convert(amount float64, direction ConvertDirection, rate float64) float64 {
	if direction == ConvertEURToNOK {
		return amount * rate
	}
	return amount / rate
}
