// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// AmountDecimals is the number of decimal places between one whole unit of
// value and the smallest unit an [Amount] counts.
const AmountDecimals = 9

// OneUnit is one whole unit expressed in the smallest unit.
const OneUnit Amount = 1_000_000_000

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a non-negative quantity of value in the smallest unit. It is
// stored as BIGINT, so it never exceeds math.MaxInt64.
type Amount uint64

// ParseAmount parses a decimal string of whole units ("1", "0.25") into an
// Amount. Fractions finer than the smallest unit are rejected.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}

	base := d.Shift(AmountDecimals)
	if !base.Equal(base.Truncate(0)) {
		return 0, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, AmountDecimals)
	}
	if base.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}

	return Amount(base.IntPart()), nil
}

// String renders the amount in whole units without trailing zeroes.
func (a Amount) String() string {
	return decimal.NewFromInt(int64(a)).Shift(-AmountDecimals).String()
}

// Add returns a+b, failing instead of wrapping past the storable range.
func (a Amount) Add(b Amount) (Amount, error) {
	if uint64(b) > math.MaxInt64-uint64(a) {
		return 0, fmt.Errorf("%w: %d + %d overflows", ErrInvalidAmount, a, b)
	}
	return a + b, nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	if uint64(a) > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d exceeds BIGINT", ErrInvalidAmount, uint64(a))
	}
	return int64(a), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	var n int64
	switch v := src.(type) {
	case int64:
		n = v
	case []byte:
		parsed, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}
		n = parsed
	case nil:
		n = 0
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidAmount, src)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative value %d", ErrInvalidAmount, n)
	}
	*a = Amount(n)
	return nil
}
