package dto

// BudgetItemDTO is one priced itinerary entry in the ledger.
type BudgetItemDTO struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	PriceNOK float64 `json:"price_nok"`
	PriceEUR float64 `json:"price_eur"`
	Amount   int     `json:"amount"`
	Paid     bool    `json:"paid"`
}

// ExpenseDTO is one user-added budget line.
type ExpenseDTO struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	PriceNOK float64 `json:"price_nok"`
	PriceEUR float64 `json:"price_eur"`
	Amount   int     `json:"amount"`
}

// RateDTO describes the conversion rate applied to the summary.
type RateDTO struct {
	EURToNOK  float64 `json:"eur_to_nok"`
	Fallback  bool    `json:"fallback"`
	FetchedAt string  `json:"fetched_at,omitempty"`
}

// BudgetSummaryResponse is the full ledger in the display currency. The
// headline figures are truncated to whole units.
type BudgetSummaryResponse struct {
	Currency string          `json:"currency"`
	Rate     RateDTO         `json:"rate"`
	Total    int             `json:"total"`
	Spent    int             `json:"spent"`
	Pending  int             `json:"pending"`
	Items    []BudgetItemDTO `json:"items"`
	Expenses []ExpenseDTO    `json:"expenses"`
}

// PaidToggleResponse reports paid-set membership after a toggle.
type PaidToggleResponse struct {
	ID   string `json:"id"`
	Paid bool   `json:"paid"`
}

// AddExpenseRequest adds a custom expense; the amount is read in the given
// display currency and frozen at the rate in effect. A zero amount is a
// valid expense (a free extra recorded for completeness), negatives are not.
type AddExpenseRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=100"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency" validate:"required,oneof=EUR NOK"`
}

// ConvertRequest is the standalone converter input.
type ConvertRequest struct {
	Amount    float64 `json:"amount" validate:"gte=0"`
	Direction string  `json:"direction" validate:"required,oneof=EUR_TO_NOK NOK_TO_EUR"`
}

// ConvertResponse is the converter output, alongside the rate used.
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"`
	Result    float64 `json:"result"`
	Rate      float64 `json:"rate"`
}

// SetCurrencyRequest selects the display currency.
type SetCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,oneof=EUR NOK"`
}
