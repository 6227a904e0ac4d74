package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/content"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/state"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// BudgetUseCase owns the day's ledger: the priced itinerary entries, the paid
// set, custom expenses and the standalone converter. Planned prices are
// re-expressed at the live rate on every read; only custom expenses stay
// frozen at their entry-time conversion.
type BudgetUseCase struct {
	store    *content.Store
	appState *state.AppState
	logger   *zap.Logger
}

func NewBudgetUseCase(store *content.Store, appState *state.AppState, logger *zap.Logger) *BudgetUseCase {
	return &BudgetUseCase{
		store:    store,
		appState: appState,
		logger:   logger,
	}
}

// GetSummary returns the ledger in the display currency. An explicit currency
// override switches the session's display currency first.
func (uc *BudgetUseCase) GetSummary(ctx context.Context, currencyOverride string) (*dto.BudgetSummaryResponse, error) {
	if currencyOverride != "" {
		c := domain.Currency(currencyOverride)
		if !c.Valid() {
			return nil, errors.ErrCurrencyInvalid
		}
		uc.appState.SetCurrency(c)
	}

	currency := uc.appState.Currency()
	rate := uc.appState.Rate()
	paid := uc.appState.PaidSet()
	expenses := uc.appState.Expenses()

	var priced []*domain.Activity
	for _, a := range uc.store.Activities() {
		if a.IsPriced() {
			priced = append(priced, a)
		}
	}

	totals := domain.ComputeBudget(priced, expenses, paid)

	items := make([]dto.BudgetItemDTO, 0, len(priced))
	for _, a := range priced {
		items = append(items, dto.BudgetItemDTO{
			ID:       a.ID,
			Title:    a.Title,
			PriceNOK: a.PriceNOK,
			PriceEUR: a.PriceEUR,
			Amount:   domain.DisplayAmount(domain.InCurrency(a.PriceEUR, currency, rate.EURToNOK)),
			Paid:     paid[a.ID],
		})
	}

	expenseDTOs := make([]dto.ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		amountEUR := e.PriceEUR
		amount := domain.DisplayAmount(amountEUR)
		if currency == domain.CurrencyNOK {
			// Frozen NOK price, not a re-conversion
			amount = domain.DisplayAmount(e.PriceNOK)
		}
		expenseDTOs = append(expenseDTOs, dto.ExpenseDTO{
			ID:       e.ID,
			Title:    e.Title,
			PriceNOK: e.PriceNOK,
			PriceEUR: e.PriceEUR,
			Amount:   amount,
		})
	}

	resp := &dto.BudgetSummaryResponse{
		Currency: string(currency),
		Rate: dto.RateDTO{
			EURToNOK: rate.EURToNOK,
			Fallback: rate.Fallback,
		},
		Total:    domain.DisplayAmount(domain.InCurrency(totals.TotalEUR, currency, rate.EURToNOK)),
		Spent:    domain.DisplayAmount(domain.InCurrency(totals.SpentEUR, currency, rate.EURToNOK)),
		Pending:  domain.DisplayAmount(domain.InCurrency(totals.PendingEUR, currency, rate.EURToNOK)),
		Items:    items,
		Expenses: expenseDTOs,
	}
	if !rate.FetchedAt.IsZero() {
		resp.Rate.FetchedAt = rate.FetchedAt.Format(time.RFC3339)
	}

	return resp, nil
}

// TogglePaid flips paid-set membership for a priced activity.
func (uc *BudgetUseCase) TogglePaid(ctx context.Context, id string) (*dto.PaidToggleResponse, error) {
	a := uc.store.Activity(id)
	if a == nil {
		return nil, errors.ErrActivityNotFound
	}
	if !a.IsPriced() {
		return nil, errors.ErrActivityNotPriced
	}

	paidNow := uc.appState.TogglePaid(id)
	uc.logger.Info("Activity payment toggled",
		zap.String("activity_id", id),
		zap.Bool("paid", paidNow))

	return &dto.PaidToggleResponse{ID: id, Paid: paidNow}, nil
}

// AddExpense records a custom expense, freezing its EUR/NOK pair at the rate
// in effect.
func (uc *BudgetUseCase) AddExpense(ctx context.Context, req *dto.AddExpenseRequest) (*dto.ExpenseDTO, error) {
	currency := domain.Currency(req.Currency)
	if !currency.Valid() {
		return nil, errors.ErrCurrencyInvalid
	}

	rate := uc.appState.Rate()
	e := domain.NewCustomExpense(uuid.NewString(), req.Title, req.Amount, currency, rate.EURToNOK)
	uc.appState.AddExpense(e)

	uc.logger.Info("Custom expense added",
		zap.String("expense_id", e.ID),
		zap.Float64("price_eur", e.PriceEUR),
		zap.Float64("rate", rate.EURToNOK))

	return &dto.ExpenseDTO{
		ID:       e.ID,
		Title:    e.Title,
		PriceNOK: e.PriceNOK,
		PriceEUR: e.PriceEUR,
		Amount:   domain.DisplayAmount(domain.InCurrency(e.PriceEUR, uc.appState.Currency(), rate.EURToNOK)),
	}, nil
}

// RemoveExpense deletes a custom expense; an absent id is a no-op.
func (uc *BudgetUseCase) RemoveExpense(ctx context.Context, id string) {
	if uc.appState.RemoveExpense(id) {
		uc.logger.Info("Custom expense removed", zap.String("expense_id", id))
	}
}

// Convert applies the standalone converter at the current rate.
func (uc *BudgetUseCase) Convert(ctx context.Context, req *dto.ConvertRequest) (*dto.ConvertResponse, error) {
	direction := domain.ConvertDirection(req.Direction)
	if direction != domain.ConvertEURToNOK && direction != domain.ConvertNOKToEUR {
		return nil, errors.ErrInvalidRequest
	}

	rate := uc.appState.Rate()
	return &dto.ConvertResponse{
		Amount:    req.Amount,
		Direction: req.Direction,
		Result:    domain.Convert(req.Amount, direction, rate.EURToNOK),
		Rate:      rate.EURToNOK,
	}, nil
}
