package service

import (
	"time"

	bookingserrors "daybook/internal/bookings/errors"
	"daybook/internal/bookings/ycbm"
	"daybook/pkg/model"
)

// MapAnswers translates a record's unordered answer pairs into a lookup keyed
// by canonical field. Duplicate codes are last-write-wins; codes outside the
// tracked enumeration are supplementary provider answers and are skipped.
func MapAnswers(pairs []ycbm.Answer) map[model.CanonicalField]string {
	answers := make(map[model.CanonicalField]string, len(pairs))
	for _, pair := range pairs {
		field, ok := model.FieldForCode(model.AnswerCode(pair.Code))
		if !ok {
			continue
		}
		answers[field] = pair.String
	}
	return answers
}

// Normalize turns one raw provider record into a canonical Booking. It is a
// pure function: a record either normalizes completely or fails with a typed
// error naming what was wrong; no partially-filled Booking ever leaves here.
func Normalize(raw ycbm.BookingDTO) (*model.Booking, error) {
	createdAt, err := parseTimestamp(raw.ID, "createdAt", raw.CreatedAt)
	if err != nil {
		return nil, err
	}
	startsAt, err := parseTimestamp(raw.ID, "startsAt", raw.StartsAt)
	if err != nil {
		return nil, err
	}
	endsAt, err := parseTimestamp(raw.ID, "endsAt", raw.EndsAt)
	if err != nil {
		return nil, err
	}

	answers := MapAnswers(raw.Answers)
	for _, field := range model.CanonicalFields {
		if _, ok := answers[field]; !ok {
			return nil, &bookingserrors.MissingAnswerError{
				BookingID: raw.ID,
				Field:     field,
			}
		}
	}

	return &model.Booking{
		ID:        raw.ID,
		Title:     raw.Title,
		Cancelled: raw.Cancelled,
		CreatedAt: createdAt,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		FirstName: answers[model.FieldFirstName],
		LastName:  answers[model.FieldLastName],
		Email:     answers[model.FieldEmail],
		Phone:     answers[model.FieldPhone],
		Notes:     answers[model.FieldNotes],
		Duration:  raw.DisplayDurationFull,
	}, nil
}

func parseTimestamp(bookingID, field, value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &bookingserrors.MalformedTimestampError{
			BookingID: bookingID,
			Field:     field,
			Err:       err,
		}
	}
	return ts, nil
}
