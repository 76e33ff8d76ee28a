package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimals between NOK and øre.
const minorUnitExponent = 2

// ToMinorUnits converts an amount in major units (NOK) to minor units (øre).
//
// Supported input types: string, float64, int, int64, decimal.Decimal and
// *decimal.Decimal. Amounts with more than two decimals are rejected rather
// than rounded.
func ToMinorUnits(amount any) (int64, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch v := amount.(type) {
	case string:
		d, err = decimal.NewFromString(v)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", v, err)
		}
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return 0, errors.New("nil amount")
		}
		d = *v
	default:
		return 0, fmt.Errorf("unsupported amount type %T", amount)
	}

	minor := d.Shift(minorUnitExponent)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than %d decimals", d.String(), minorUnitExponent)
	}
	return minor.IntPart(), nil
}

// FromMinorUnits converts minor units (øre) to major units (NOK).
func FromMinorUnits(value int64) decimal.Decimal {
	return decimal.New(value, -minorUnitExponent)
}

// NewAmount builds an ePayment Amount from a major-unit value.
func NewAmount(currency Currency, major any) (Amount, error) {
	value, err := ToMinorUnits(major)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Currency: currency, Value: value}, nil
}

// Decimal returns a in major units.
func (a Amount) Decimal() decimal.Decimal {
	return FromMinorUnits(a.Value)
}

// String formats a as "10.00 NOK".
func (a Amount) String() string {
	return a.Decimal().StringFixed(minorUnitExponent) + " " + string(a.Currency)
}

// Decimal returns a in major units.
func (a CheckoutAmount) Decimal() decimal.Decimal {
	return FromMinorUnits(a.Value)
}
