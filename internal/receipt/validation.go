package receipt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValidationError is a user-presentable failure describing which field of the
// input was malformed. Callers can rely on the message being safe to return to
// the client; any other error kind from this package is an internal fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// requireTrimmedText validates that value is a non-empty string and returns it
// with surrounding whitespace removed.
func requireTrimmedText(value any, label string) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", validationErrorf("%s must be a string", label)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", validationErrorf("%s must be a non-empty string", label)
	}
	return trimmed, nil
}

// requireDate validates that value is a YYYY-MM-DD calendar date and returns
// it as UTC midnight. Impossible dates (2022-02-30) are rejected.
func requireDate(value any) (time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, validationErrorf("purchaseDate must be a string")
	}
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, validationErrorf("purchaseDate must be a valid date")
	}
	return date, nil
}

// requireNumeric validates that value is a number or a string holding a finite
// decimal. JSON numbers arrive as float64 and pass through unchanged.
func requireNumeric(value any, label string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, validationErrorf("%s must be a valid string representing a number", label)
		}
		return f, nil
	default:
		return 0, validationErrorf("%s must be a valid string representing a number", label)
	}
}
