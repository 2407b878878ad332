package currency

import "fmt"

// Currency identifies the currency of an amount, e.g. "USD".
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// ConversionNeededError reports arithmetic between amounts of different
// currencies. The caller must convert one side first.
type ConversionNeededError struct {
	Left  Currency
	Right Currency
}

func (e ConversionNeededError) Error() string {
	return fmt.Sprintf("conversion needed between %s and %s", e.Left, e.Right)
}

// Amount is a monetary amount in minor units (e.g. cents) tied to one
// currency. It is an immutable value; every operation returns a new Amount.
type Amount struct {
	minor    int64
	currency Currency
}

// NewAmount creates an amount of minor units in the given currency.
func NewAmount(minor int64, currency Currency) Amount {
	return Amount{minor: minor, currency: currency}
}

// Cents creates a US dollar amount from cents.
func Cents(minor int64) Amount {
	return NewAmount(minor, USD)
}

// Zero returns the zero amount in the given currency.
func Zero(currency Currency) Amount {
	return Amount{currency: currency}
}

// MinorUnits returns the amount in minor units.
func (a Amount) MinorUnits() int64 { return a.minor }

// Currency returns the amount's currency.
func (a Amount) Currency() Currency { return a.currency }

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool { return a.minor > 0 }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.minor == 0 }

// sameCurrency enforces the precondition shared by all two-amount
// operations.
func (a Amount) sameCurrency(other Amount) error {
	if a.currency != other.currency {
		return ConversionNeededError{Left: a.currency, Right: other.currency}
	}
	return nil
}

// Add returns a + other. It fails with ConversionNeededError when the
// currencies differ.
func (a Amount) Add(other Amount) (Amount, error) {
	if err := a.sameCurrency(other); err != nil {
		return Amount{}, err
	}
	return Amount{minor: a.minor + other.minor, currency: a.currency}, nil
}

// Neg returns the negated amount.
func (a Amount) Neg() Amount {
	return Amount{minor: -a.minor, currency: a.currency}
}

// MulInt returns the amount multiplied by an integer factor.
func (a Amount) MulInt(n int64) Amount {
	return Amount{minor: a.minor * n, currency: a.currency}
}

// DivInt returns the amount divided by an integer divisor, truncating
// toward zero. It panics on a zero divisor, like any integer division.
func (a Amount) DivInt(n int64) Amount {
	return Amount{minor: a.minor / n, currency: a.currency}
}

// MulRatio returns the amount scaled by num/den in one step, so an exact
// ratio like 3/2 loses nothing to intermediate truncation.
func (a Amount) MulRatio(num, den int64) Amount {
	return Amount{minor: a.minor * num / den, currency: a.currency}
}

// Cmp compares two amounts of the same currency: -1 if a < other, 0 if
// equal, +1 if a > other. It fails with ConversionNeededError when the
// currencies differ.
func (a Amount) Cmp(other Amount) (int, error) {
	if err := a.sameCurrency(other); err != nil {
		return 0, err
	}
	switch {
	case a.minor < other.minor:
		return -1, nil
	case a.minor > other.minor:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equals reports whether both amounts have the same currency and value.
func (a Amount) Equals(other Amount) bool {
	return a.currency == other.currency && a.minor == other.minor
}

// String renders the amount with two decimal places, e.g. "USD 150.00" or
// "USD -100.00". Locale-aware formatting belongs to the presentation layer.
func (a Amount) String() string {
	minor := a.minor
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s %s%d.%02d", a.currency, sign, minor/100, minor%100)
}
