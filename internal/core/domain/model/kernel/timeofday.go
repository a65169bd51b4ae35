package kernel

import (
	"fmt"
	"time"

	"riderspool/internal/pkg/errs"
	"riderspool/internal/pkg/guard"
)

const (
	// TimeOfDayMinHour is the minimum valid hour value.
	TimeOfDayMinHour = 0
	// TimeOfDayMaxHour is the maximum valid hour value.
	TimeOfDayMaxHour = 23
	// TimeOfDayMinMinute is the minimum valid minute value.
	TimeOfDayMinMinute = 0
	// TimeOfDayMaxMinute is the maximum valid minute value.
	TimeOfDayMaxMinute = 59
)

// ErrTimeOfDayIsNotConstructed is returned when attempting to use an improperly
// initialized TimeOfDay. TimeOfDay must be created using the NewTimeOfDay or
// ParseTimeOfDay constructors to ensure validity.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"time of day must be created via NewTimeOfDay or ParseTimeOfDay constructors")

// TimeOfDay represents a wall-clock time with validated hour and minute.
// TimeOfDay is an immutable value object; the zero value is invalid and will
// fail validation - use the constructors to create instances.
//
// Example:
//
//	tod, err := kernel.NewTimeOfDay(14, 30)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Interview at %s", tod) // Output: Interview at 14:30
type TimeOfDay struct { //nolint:recvcheck //using for validation
	hour   int
	minute int
	guard  guard.ConstructorGuard
}

// NewTimeOfDay creates a TimeOfDay with the specified hour and minute.
// Hour must be within [0..23] and minute within [0..59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < TimeOfDayMinHour || hour > TimeOfDayMaxHour {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, TimeOfDayMinHour, TimeOfDayMaxHour)
	}
	if minute < TimeOfDayMinMinute || minute > TimeOfDayMaxMinute {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, TimeOfDayMinMinute, TimeOfDayMaxMinute)
	}

	return TimeOfDay{
		hour:   hour,
		minute: minute,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ParseTimeOfDay parses a TimeOfDay from its "15:04" string representation.
// Used when reconstructing schedules from persistence or request payloads.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time", err)
	}
	return NewTimeOfDay(parsed.Hour(), parsed.Minute())
}

// Hour returns the hour component [0..23].
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute returns the minute component [0..59].
func (t TimeOfDay) Minute() int {
	return t.minute
}

// String returns the "15:04" representation of the time of day.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// IsEqual compares two times of day by hour and minute.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.hour == other.hour && t.minute == other.minute
}

// Validate checks that the TimeOfDay was properly constructed.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}
