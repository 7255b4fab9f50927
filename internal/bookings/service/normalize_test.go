package service

import (
	"errors"
	"testing"
	"time"

	bookingserrors "daybook/internal/bookings/errors"
	"daybook/internal/bookings/ycbm"
	"daybook/pkg/model"
)

func fullAnswers() []ycbm.Answer {
	return []ycbm.Answer{
		{Code: "FNAME", String: "Ada"},
		{Code: "LNAME", String: "Lovelace"},
		{Code: "EMAIL", String: "ada@example.com"},
		{Code: "Q7", String: "+15550100"},
		{Code: "Q5", String: "bring laptop"},
	}
}

func rawBooking(id string) ycbm.BookingDTO {
	return ycbm.BookingDTO{
		ID:                  id,
		Title:               "Intro call",
		Cancelled:           false,
		CreatedAt:           "2026-03-10T09:00:00Z",
		StartsAt:            "2026-03-14T10:00:00Z",
		EndsAt:              "2026-03-14T10:30:00Z",
		Answers:             fullAnswers(),
		DisplayDurationFull: "30 minutes",
	}
}

func TestMapAnswers(t *testing.T) {
	answers := MapAnswers(fullAnswers())

	expected := map[model.CanonicalField]string{
		model.FieldFirstName: "Ada",
		model.FieldLastName:  "Lovelace",
		model.FieldEmail:     "ada@example.com",
		model.FieldPhone:     "+15550100",
		model.FieldNotes:     "bring laptop",
	}
	for field, want := range expected {
		if got := answers[field]; got != want {
			t.Errorf("field %s: expected %q, got %q", field, want, got)
		}
	}
	if len(answers) != len(expected) {
		t.Errorf("expected %d mapped answers, got %d", len(expected), len(answers))
	}
}

func TestMapAnswers_DuplicateCodesLastWriteWins(t *testing.T) {
	answers := MapAnswers([]ycbm.Answer{
		{Code: "EMAIL", String: "first@example.com"},
		{Code: "EMAIL", String: "second@example.com"},
	})

	if got := answers[model.FieldEmail]; got != "second@example.com" {
		t.Errorf("expected later pair to win, got %q", got)
	}
}

func TestMapAnswers_UnrecognizedCodesIgnored(t *testing.T) {
	answers := MapAnswers([]ycbm.Answer{
		{Code: "Q99", String: "supplementary"},
		{Code: "FNAME", String: "Ada"},
	})

	if len(answers) != 1 {
		t.Errorf("expected only tracked codes to map, got %v", answers)
	}
	if answers[model.FieldFirstName] != "Ada" {
		t.Errorf("expected tracked code to survive, got %v", answers)
	}
}

func TestNormalize_FullRecord(t *testing.T) {
	booking, err := Normalize(rawBooking("bk-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.ID != "bk-1" || booking.Title != "Intro call" || booking.Cancelled {
		t.Errorf("expected header fields copied verbatim, got %+v", booking)
	}
	if booking.Duration != "30 minutes" {
		t.Errorf("expected duration copied verbatim, got %q", booking.Duration)
	}

	wantStart := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	if !booking.StartsAt.Equal(wantStart) {
		t.Errorf("expected startsAt %v, got %v", wantStart, booking.StartsAt)
	}
	wantCreated := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	if !booking.CreatedAt.Equal(wantCreated) {
		t.Errorf("expected createdAt %v, got %v", wantCreated, booking.CreatedAt)
	}
	wantEnd := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)
	if !booking.EndsAt.Equal(wantEnd) {
		t.Errorf("expected endsAt %v, got %v", wantEnd, booking.EndsAt)
	}

	if booking.FirstName != "Ada" || booking.LastName != "Lovelace" ||
		booking.Email != "ada@example.com" || booking.Phone != "+15550100" ||
		booking.Notes != "bring laptop" {
		t.Errorf("expected every canonical field populated from answers, got %+v", booking)
	}
}

func TestNormalize_MissingAnswer(t *testing.T) {
	raw := rawBooking("bk-2")
	var withoutEmail []ycbm.Answer
	for _, a := range raw.Answers {
		if a.Code != "EMAIL" {
			withoutEmail = append(withoutEmail, a)
		}
	}
	raw.Answers = withoutEmail

	booking, err := Normalize(raw)
	if booking != nil {
		t.Fatal("expected no booking for a record with a missing answer")
	}

	var missing *bookingserrors.MissingAnswerError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingAnswerError, got %v", err)
	}
	if missing.BookingID != "bk-2" {
		t.Errorf("expected error to name the record, got %q", missing.BookingID)
	}
	if missing.Field != model.FieldEmail {
		t.Errorf("expected error to name the email field, got %q", missing.Field)
	}
}

func TestNormalize_MalformedTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ycbm.BookingDTO)
		field  string
	}{
		{"bad startsAt", func(dto *ycbm.BookingDTO) { dto.StartsAt = "yesterday" }, "startsAt"},
		{"bad endsAt", func(dto *ycbm.BookingDTO) { dto.EndsAt = "" }, "endsAt"},
		{"bad createdAt", func(dto *ycbm.BookingDTO) { dto.CreatedAt = "2026-03-10" }, "createdAt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawBooking("bk-3")
			tt.mutate(&raw)

			booking, err := Normalize(raw)
			if booking != nil {
				t.Fatal("expected no booking for a record with a malformed timestamp")
			}

			var malformed *bookingserrors.MalformedTimestampError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedTimestampError, got %v", err)
			}
			if malformed.BookingID != "bk-3" {
				t.Errorf("expected error to name the record, got %q", malformed.BookingID)
			}
			if malformed.Field != tt.field {
				t.Errorf("expected error to name field %s, got %q", tt.field, malformed.Field)
			}
		})
	}
}

func TestNormalize_IsPure(t *testing.T) {
	raw := rawBooking("bk-4")

	first, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *first != *second {
		t.Errorf("expected identical output for identical input:\n%+v\n%+v", first, second)
	}
}
