package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Price is a currency amount stored numeric in the database and rendered as a
// "$12.99" style string at the API boundary. The storefront relies on that
// string format, so it is part of the JSON contract, not a display concern.
type Price float64

// String formats the price the way the client expects it.
func (p Price) String() string {
	return fmt.Sprintf("$%.2f", float64(p))
}

// MarshalJSON always emits the "$x.xx" string form.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts a bare number, "7.99", or "$7.99". Admin forms send
// whichever they happen to have.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", s)
	}
	*p = Price(f)
	return nil
}

// Scan implements sql.Scanner. lib/pq hands NUMERIC columns back as bytes.
func (p *Price) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = 0
		return nil
	case float64:
		*p = Price(v)
		return nil
	case int64:
		*p = Price(v)
		return nil
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q: %w", v, err)
		}
		*p = Price(f)
		return nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q: %w", v, err)
		}
		*p = Price(f)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Price", src)
	}
}

// Value implements driver.Valuer.
func (p Price) Value() (driver.Value, error) {
	return float64(p), nil
}
