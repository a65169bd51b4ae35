// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides:
//   - UUID: validated unique identifiers for entities and aggregates
//   - TimeOfDay: a validated wall-clock time (hour and minute)
//   - Schedule: a calendar day combined with a TimeOfDay, the moment an
//     interview is booked for
//
// All kernel types are immutable value objects. Their zero values are invalid
// and must be created through the provided constructor functions, which
// enforce validation rules at construction time.
package kernel
