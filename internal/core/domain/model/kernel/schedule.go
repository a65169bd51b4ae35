package kernel

import (
	"fmt"
	"time"

	"riderspool/internal/pkg/errs"
	"riderspool/internal/pkg/guard"
)

// ErrScheduleIsNotConstructed is returned when attempting to use an improperly
// initialized Schedule. Schedules must be created via NewSchedule.
var ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError(
	"schedule must be created via NewSchedule constructor")

// ErrScheduleDayIsRequired is returned when creating a schedule with a zero day.
var ErrScheduleDayIsRequired = errs.NewValueIsRequiredError("date")

// Schedule represents the booked moment of an interview: a calendar day
// combined with a time of day. Schedule is an immutable value object; the
// zero value is invalid and must be created via NewSchedule.
//
// Example:
//
//	tod, _ := kernel.NewTimeOfDay(10, 0)
//	schedule, err := kernel.NewSchedule(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), tod)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(schedule.At()) // 2026-09-01 10:00:00 +0000 UTC
type Schedule struct { //nolint:recvcheck //using for validation
	day       time.Time
	timeOfDay TimeOfDay
	guard     guard.ConstructorGuard
}

// NewSchedule creates a Schedule for the given day and time of day.
// The day is truncated to midnight UTC; any clock component it carries is
// discarded in favor of timeOfDay.
func NewSchedule(day time.Time, timeOfDay TimeOfDay) (Schedule, error) {
	if day.IsZero() {
		return Schedule{}, ErrScheduleDayIsRequired
	}
	if err := timeOfDay.Validate(); err != nil {
		return Schedule{}, err
	}

	y, m, d := day.Date()
	return Schedule{
		day:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		timeOfDay: timeOfDay,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Day returns the calendar day at midnight UTC.
func (s Schedule) Day() time.Time {
	return s.day
}

// TimeOfDay returns the wall-clock time component.
func (s Schedule) TimeOfDay() TimeOfDay {
	return s.timeOfDay
}

// At returns the full moment the schedule refers to: day combined with the
// time of day, in UTC.
func (s Schedule) At() time.Time {
	return s.day.Add(time.Duration(s.timeOfDay.Hour())*time.Hour +
		time.Duration(s.timeOfDay.Minute())*time.Minute)
}

// String returns the "2006-01-02 15:04" representation of the schedule.
func (s Schedule) String() string {
	return fmt.Sprintf("%s %s", s.day.Format("2006-01-02"), s.timeOfDay)
}

// IsEqual compares two schedules by day and time of day.
func (s Schedule) IsEqual(other Schedule) bool {
	return s.day.Equal(other.day) && s.timeOfDay.IsEqual(other.timeOfDay)
}

// Validate checks that the Schedule was properly constructed.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}
