package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Day is a day of the week in its canonical lower case form
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days lists the week in order
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayType classifies the days a restaurant schedule covers
type DayType string

const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
	Holiday DayType = "holiday"
)

// DayTypes lists the accepted day types
var DayTypes = []DayType{Weekday, Weekend, Holiday}

// ParseDay returns the canonical day for s
func ParseDay(s string) (Day, error) {
	for _, day := range Days {
		if string(day) == s {
			return day, nil
		}
	}
	return "", fmt.Errorf("invalid day %q, expected one of %s", s, joinValues(Days))
}

// ParseDayType returns the canonical day type for s
func ParseDayType(s string) (DayType, error) {
	for _, dayType := range DayTypes {
		if string(dayType) == s {
			return dayType, nil
		}
	}
	return "", fmt.Errorf("invalid day type %q, expected one of %s", s, joinValues(DayTypes))
}

// ParseClock parses a "HH:MM:SS" wall clock time. Hours run 0-23.
// Single digit fields such as "9:00:00" are accepted.
func ParseClock(s string) (datatypes.Time, error) {
	if len(s) < 6 || len(s) > 8 {
		return datatypes.Time(0), fmt.Errorf("invalid time %q, expected HH:MM:SS", s)
	}

	parsed, err := time.Parse("15:4:5", s)
	if err != nil {
		return datatypes.Time(0), fmt.Errorf("invalid time %q, expected HH:MM:SS", s)
	}

	return datatypes.NewTime(parsed.Hour(), parsed.Minute(), parsed.Second(), 0), nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = string(value)
	}
	return strings.Join(parts, ", ")
}
