package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var ErrInvalidTimeString = errors.New("types: invalid time string")

// TimeString время суток в формате "HH:MM"
// Хранится в колонках PostgreSQL типа TIME
type TimeString string

// ParseTimeString разбирает "HH:MM" или "HH:MM:SS"
func ParseTimeString(s string) (TimeString, error) {
	t, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return TimeString(t.Format(timeLayout)), nil
}

// FromTime берёт время суток из time.Time
func FromTime(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

func parseClock(s string) (time.Time, error) {
	for _, layout := range []string{timeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, err := parseClock(string(t))
	return err
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := parseClock(string(t))
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore сравнивает два значения; невалидные значения не меньше ничего
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// Scan реализует sql.Scanner
// lib/pq отдаёт TIME как строку "HH:MM:SS" или []byte
func (t *TimeString) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = FromTime(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, value)
	}

	parsed, err := ParseTimeString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
