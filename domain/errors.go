package domain

// IllegalStateError reports an operation attempted against an object whose
// lifecycle does not allow it, such as adding a card to a closed hand or
// settling a wager twice.
type IllegalStateError struct {
	Msg string
}

func (e IllegalStateError) Error() string {
	return e.Msg
}

// IllegalArgumentError reports a well-formed but unacceptable argument,
// such as a non-positive wager amount or a duplicate card instance.
type IllegalArgumentError struct {
	Msg string
}

func (e IllegalArgumentError) Error() string {
	return e.Msg
}

// NullReferenceError reports a nil dealer or player where a real one is
// required.
type NullReferenceError struct {
	Msg string
}

func (e NullReferenceError) Error() string {
	return e.Msg
}
