package shared

import (
	"errors"
	"fmt"

	"alwaysliquid_posts/sdk"
)

// Rejections shared by both contracts. Each one maps to a short revert symbol
// so callers and indexers can tell them apart without parsing messages.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrPaused              = errors.New("minting paused")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrDeadlinePassed      = errors.New("minting deadline has passed")
	ErrPreviewTooLong      = errors.New("text preview is too long")
	ErrNotFound            = errors.New("not found")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNotInitialized      = errors.New("contract not initialized")
	ErrAlreadyInitialized  = errors.New("contract already initialized")
)

var symbols = []struct {
	err    error
	symbol string
}{
	{ErrUnauthorized, "unauthorized"},
	{ErrPaused, "paused"},
	{ErrInsufficientPayment, "insufficient_payment"},
	{ErrDeadlinePassed, "deadline_passed"},
	{ErrPreviewTooLong, "preview_too_long"},
	{ErrNotFound, "not_found"},
	{ErrInvalidQuantity, "invalid_quantity"},
	{ErrInvalidArgument, "invalid_argument"},
	{ErrNotInitialized, "not_initialized"},
	{ErrAlreadyInitialized, "already_initialized"},
}

// Symbol returns the revert symbol for err, "error" when it wraps none of the sentinels.
func Symbol(err error) string {
	for _, s := range symbols {
		if errors.Is(err, s.err) {
			return s.symbol
		}
	}
	return "error"
}

// Fail reverts the running transaction with the error message and its symbol.
// It never returns.
func Fail(err error) {
	sdk.Revert(err.Error(), Symbol(err))
}

// Failf wraps sentinel with a formatted context message and reverts.
// Example payload: Failf(ErrNotFound, "token %d", 7)
func Failf(sentinel error, format string, args ...interface{}) {
	Fail(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel))
}
