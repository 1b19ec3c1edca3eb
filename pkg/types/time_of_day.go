package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// Day длительность суток, верхняя граница для TimeOfDay
	Day = 24 * time.Hour

	timeOfDayLayout      = "15:04:05.999999999"
	timeOfDayShortLayout = "15:04"
)

var (
	// ErrInvalidTimeOfDay возвращается при некорректном формате времени
	ErrInvalidTimeOfDay = errors.New("invalid time of day format")

	// ErrTimeOfDayOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOfDayOutOfRange = errors.New("time of day out of range")
)

// TimeOfDay время суток без даты с точностью до наносекунды.
// Хранится как смещение от полуночи, поэтому арифметика над ним не накапливает погрешность.
type TimeOfDay struct {
	offset time.Duration
}

// NewTimeOfDay создает время суток из часов, минут, секунд и наносекунд
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	offset := time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(nanosecond)

	return TimeOfDayFromOffset(offset)
}

// MustTimeOfDay как NewTimeOfDay, но паникует при ошибке. Для констант и тестов.
func MustTimeOfDay(hour, minute, second, nanosecond int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFromOffset создает время суток из смещения от полуночи
func TimeOfDayFromOffset(offset time.Duration) (TimeOfDay, error) {
	if offset < 0 || offset >= Day {
		return TimeOfDay{}, fmt.Errorf("%w: offset=%s", ErrTimeOfDayOutOfRange, offset)
	}
	return TimeOfDay{offset: offset}, nil
}

// TimeOfDayFromTime извлекает время суток из time.Time (дата отбрасывается)
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		offset: time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second +
			time.Duration(t.Nanosecond()),
	}
}

// ParseTimeOfDay парсит строку в форматах "HH:MM", "HH:MM:SS" и "HH:MM:SS.fffffffff"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)

	layout := timeOfDayLayout
	if len(s) == len(timeOfDayShortLayout) {
		layout = timeOfDayShortLayout
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return TimeOfDayFromTime(t), nil
}

// Offset возвращает смещение от полуночи
func (t TimeOfDay) Offset() time.Duration {
	return t.offset
}

// Add возвращает время, сдвинутое на d
func (t TimeOfDay) Add(d time.Duration) (TimeOfDay, error) {
	return TimeOfDayFromOffset(t.offset + d)
}

// Truncate округляет время вниз до кратного d
func (t TimeOfDay) Truncate(d time.Duration) TimeOfDay {
	return TimeOfDay{offset: t.offset.Truncate(d)}
}

// Sub возвращает длительность t - other
func (t TimeOfDay) Sub(other TimeOfDay) time.Duration {
	return t.offset - other.offset
}

// Before проверяет, что t строго раньше other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.offset < other.offset
}

// After проверяет, что t строго позже other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.offset > other.offset
}

// Equal проверяет равенство
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.offset == other.offset
}

// IsZero возвращает true для полуночи
func (t TimeOfDay) IsZero() bool {
	return t.offset == 0
}

// OnDate собирает time.Time из даты и времени суток
func (t TimeOfDay) OnDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(t.offset)
}

// String возвращает "HH:MM:SS", дробная часть добавляется только если она ненулевая
func (t TimeOfDay) String() string {
	return time.Time{}.Add(t.offset).Format(timeOfDayLayout)
}

// Value реализует driver.Valuer для колонок типа TIME
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner. lib/pq отдает TIME как time.Time, но поддерживаем и текст.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDayFromTime(v)
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidTimeOfDay)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeOfDay, src)
	}
}

// MarshalJSON сериализует время как строку "HH:MM:SS"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON парсит время из строки
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeOfDay, err)
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
