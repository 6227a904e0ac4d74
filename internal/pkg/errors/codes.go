package errors

import "net/http"

var (
	ErrActivityNotFound = New(
		"ACTIVITY_NOT_FOUND",
		"Activity not found",
		http.StatusNotFound,
	)

	ErrTrackSetNotFound = New(
		"TRACK_SET_NOT_FOUND",
		"Activity has no audio guide",
		http.StatusNotFound,
	)

	ErrTrackNotFound = New(
		"TRACK_NOT_FOUND",
		"Audio track not found",
		http.StatusNotFound,
	)

	ErrExpenseInvalid = New(
		"EXPENSE_INVALID",
		"Expense name must be non-empty and amount a non-negative number",
		http.StatusBadRequest,
	)

	ErrAmountInvalid = New(
		"AMOUNT_INVALID",
		"Amount is not a valid number",
		http.StatusBadRequest,
	)

	ErrCurrencyInvalid = New(
		"CURRENCY_INVALID",
		"Currency must be EUR or NOK",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrNoLocation = New(
		"NO_LOCATION",
		"Device position is not available",
		http.StatusConflict,
	)

	ErrActivityNotPriced = New(
		"ACTIVITY_NOT_PRICED",
		"Activity has no price and cannot be marked paid",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
