package cards

import (
	"errors"
	"fmt"
)

// ErrShoeExhausted is returned when drawing from a shoe with no cards left
// in play. It is the only failure mode of NextCard.
var ErrShoeExhausted = errors.New("no cards left in the shoe")

// InvalidSizeError reports a malformed quantity, such as a negative deck
// count or a negative cutoff. It is distinct from InvalidArgumentError,
// which covers well-formed but out-of-range values.
type InvalidSizeError struct {
	What  string
	Value int
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.What, e.Value)
}

// InvalidArgumentError reports a well-formed but unacceptable argument,
// such as a zero deck count or a cutoff larger than the shoe.
type InvalidArgumentError struct {
	Msg string
}

func (e InvalidArgumentError) Error() string {
	return e.Msg
}
