package errors

import (
	"fmt"

	"daybook/pkg/model"
)

// MissingAnswerError reports a raw record that carried no answer for one of
// the tracked intake questions. The record is dropped, never defaulted.
type MissingAnswerError struct {
	BookingID string
	Field     model.CanonicalField
}

func (e *MissingAnswerError) Error() string {
	return fmt.Sprintf("booking %s: missing answer for %s", e.BookingID, e.Field)
}

// MalformedTimestampError reports a raw record whose timestamp could not be
// parsed as a date-time.
type MalformedTimestampError struct {
	BookingID string
	Field     string
	Err       error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("booking %s: malformed %s timestamp: %v", e.BookingID, e.Field, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.Err
}
