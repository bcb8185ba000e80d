package exchange

import "fmt"

type ExchangeError struct {
	Message string
}

func (errorValue ExchangeError) Error() string {
	return errorValue.Message
}

// NotFoundError reports an exchange the indexer does not know.
type NotFoundError struct {
	ExchangeError
	Exchange string
}

func NewNotFoundError(exchange string) error {
	return NotFoundError{
		ExchangeError: ExchangeError{Message: fmt.Sprintf("exchange %s not found", exchange)},
		Exchange:      exchange,
	}
}

// CancelledError reports an accept against a cancelled exchange.
type CancelledError struct {
	ExchangeError
	Exchange string
}

func NewCancelledError(exchange string) error {
	return CancelledError{
		ExchangeError: ExchangeError{Message: fmt.Sprintf("exchange %s is cancelled", exchange)},
		Exchange:      exchange,
	}
}

// AmountMismatchError reports an accept whose agreed amount no longer matches
// the exchange.
type AmountMismatchError struct {
	ExchangeError
	Exchange string
	Expected uint64
	Actual   uint64
}

func NewAmountMismatchError(exchange string, expected uint64, actual uint64) error {
	return AmountMismatchError{
		ExchangeError: ExchangeError{
			Message: fmt.Sprintf("exchange %s expects %d, taker agreed to %d", exchange, actual, expected),
		},
		Exchange: exchange,
		Expected: expected,
		Actual:   actual,
	}
}
