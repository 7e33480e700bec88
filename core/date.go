package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales/es"
	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

var (
	NowFunc = time.Now // mockable

	esLocale = es.New()
)

// Date is a calendar date (no time of day, UTC), serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

func Today() Date {
	return DateOf(NowFunc())
}

// ParseDate accepts "YYYY-MM-DD" and RFC 3339 timestamps (the date part is kept).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals; it panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool  { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool  { return d.Time.Equal(other.Time) }

// FormatLong renders the date the Spanish long way, e.g. "19 de enero de 2025".
func (d Date) FormatLong() string {
	if d.IsZero() {
		return ""
	}
	return esLocale.FmtDateLong(d.Time)
}

// FormatShort renders "DD/MM/YYYY".
func (d Date) FormatShort() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("02/01/2006")
}

// FormatDayMonth renders the day and abbreviated Spanish month, used as chart labels.
func (d Date) FormatDayMonth() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s", d.Day(), esLocale.MonthAbbreviated(d.Month()))
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "decoding date")
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalParam lets echo bind dates from query parameters.
func (d *Date) UnmarshalParam(param string) error {
	if strings.TrimSpace(param) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
