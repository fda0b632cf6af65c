package utils

import "time"

// DateTimeLocalLayout is the value format of an HTML datetime-local input.
const DateTimeLocalLayout = "2006-01-02T15:04"

// ParseDateTimeLocal parses a datetime-local form value in server-local time.
// A blank value is a nil timestamp, not an error.
func ParseDateTimeLocal(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(DateTimeLocalLayout, value, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDateTimeLocal renders a stored timestamp back into the form's input
// representation, for pre-filling the edit form.
func FormatDateTimeLocal(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(time.Local).Format(DateTimeLocalLayout)
}
