package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	clockLayout        = "15:04"
	clockSecondsLayout = "15:04:05"
	dateLayout         = "2006-01-02"
	minutesPerDay      = 24 * 60
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("types: invalid time format")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("types: invalid date format")

	// ErrDayOverflow возвращается, когда время выходит за пределы суток
	ErrDayOverflow = errors.New("types: time is out of day bounds")

	// ErrDateMismatch возвращается, когда datetime приходится на другую дату
	ErrDateMismatch = errors.New("types: datetime is on another date")
)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// TimeString время суток в формате HH:MM
// Секунды и доли секунд отбрасываются при разборе
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(clockLayout))
}

// NewTimeStringFromString разбирает строку в форматах HH:MM, HH:MM:SS
// или ISO datetime (RFC3339, "2006-01-02T15:04:05"). Для datetime берется часть времени
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidTime)
	}

	for _, layout := range []string{clockLayout, clockSecondsLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeString(t), nil
		}
	}
	if t, err := ParseDateTime(s); err == nil {
		return NewTimeString(t), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

// ParseDateTime разбирает ISO datetime. Значение без смещения считается UTC
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

// ClockOn переносит время суток на дату. ISO datetime переводится в UTC
// и должен приходиться на ту же дату, иначе ErrDateMismatch
func ClockOn(date time.Time, s string) (time.Time, error) {
	if dt, err := ParseDateTime(s); err == nil {
		dt = dt.UTC()
		if FormatDate(dt) != FormatDate(date) {
			return time.Time{}, fmt.Errorf("%w: %q is not on %s", ErrDateMismatch, s, FormatDate(date))
		}
		return NewTimeString(dt).On(date)
	}

	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return time.Time{}, err
	}
	return ts.On(date)
}

// MustTimeString для заранее проверенных значений (константы, конфигурация после Validate)
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(clockLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(clockLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes прибавляет минуты. Выход за пределы суток - ошибка
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := current + minutes
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min", ErrDayOverflow, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore сравнивает два времени суток
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

// IsAfter сравнивает два времени суток
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a > b
}

// On возвращает момент времени в UTC для указанной даты
func (t TimeString) On(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, time.UTC), nil
}

// MarshalJSON сериализует время как строку
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON принимает HH:MM, HH:MM:SS или ISO datetime
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if raw == "" {
		*t = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseDate разбирает дату YYYY-MM-DD и возвращает полночь UTC
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d.UTC(), nil
}

// FormatDate форматирует дату как YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
