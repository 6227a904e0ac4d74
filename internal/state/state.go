package state

import (
	"sync"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

// AppState owns every mutable value of the running session: completion flags,
// the paid set, custom expenses, the display currency, the live position and
// the external-data snapshots. Handlers, the refresh goroutines and the
// position worker all funnel their writes through these methods, preserving a
// single-writer discipline under concurrent access. Nothing here survives the
// process.
type AppState struct {
	mu sync.RWMutex

	completed map[string]bool
	paid      map[string]bool
	expenses  []*domain.CustomExpense

	currency domain.Currency
	rate     domain.RateSnapshot

	position *domain.PositionFix
	weather  *domain.WeatherSnapshot
	solar    *domain.SolarSnapshot
}

// New seeds the state with the fallback rate and NOK as the default display
// currency.
func New(fallbackRate float64) *AppState {
	return &AppState{
		completed: make(map[string]bool),
		paid:      make(map[string]bool),
		currency:  domain.CurrencyNOK,
		rate: domain.RateSnapshot{
			EURToNOK: fallbackRate,
			Fallback: true,
		},
	}
}

// ToggleCompleted flips the user-controlled completion flag of an activity and
// returns the new value. Toggling twice restores the original state.
func (s *AppState) ToggleCompleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[id] = !s.completed[id]
	return s.completed[id]
}

// IsCompleted reads one completion flag.
func (s *AppState) IsCompleted(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completed[id]
}

// CompletedSet returns a copy of the completion flags.
func (s *AppState) CompletedSet() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySet(s.completed)
}

// TogglePaid flips an activity's membership in the paid set and returns the
// new membership.
func (s *AppState) TogglePaid(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paid[id] {
		delete(s.paid, id)
		return false
	}
	s.paid[id] = true
	return true
}

// PaidSet returns a copy of the paid activity ids.
func (s *AppState) PaidSet() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySet(s.paid)
}

// AddExpense appends a custom expense.
func (s *AppState) AddExpense(e *domain.CustomExpense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

// RemoveExpense removes an expense by id; an absent id is a no-op. Returns
// whether anything was removed.
func (s *AppState) RemoveExpense(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true
		}
	}
	return false
}

// Expenses returns a copy of the custom expense list.
func (s *AppState) Expenses() []*domain.CustomExpense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.CustomExpense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Currency returns the selected display currency.
func (s *AppState) Currency() domain.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// SetCurrency selects the display currency.
func (s *AppState) SetCurrency(c domain.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = c
}

// Rate returns the conversion rate snapshot in effect.
func (s *AppState) Rate() domain.RateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// SetRate replaces the conversion rate snapshot.
func (s *AppState) SetRate(r domain.RateSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rate = r
}

// Position returns the latest device fix, or nil while no location is known.
func (s *AppState) Position() *domain.PositionFix {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

// SetPosition replaces the current device position. Each fix supersedes the
// previous one; no history is kept.
func (s *AppState) SetPosition(fix *domain.PositionFix) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = fix
}

// Weather returns the forecast snapshot, or nil while not yet loaded.
func (s *AppState) Weather() *domain.WeatherSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weather
}

// SetWeather replaces the forecast snapshot.
func (s *AppState) SetWeather(w *domain.WeatherSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weather = w
}

// Solar returns the solar snapshot, or nil while not yet loaded.
func (s *AppState) Solar() *domain.SolarSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.solar
}

// SetSolar replaces the solar snapshot.
func (s *AppState) SetSolar(sol *domain.SolarSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solar = sol
}

func copySet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
