package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	apperrors "daybook/pkg/errors"
	"daybook/pkg/logger"
	"daybook/pkg/model"
)

// Mock service for testing
type mockBookingService struct {
	getForDayFunc func(ctx context.Context, date string) (*model.DayBookings, error)
}

func (m *mockBookingService) GetForDay(ctx context.Context, date string) (*model.DayBookings, error) {
	if m.getForDayFunc != nil {
		return m.getForDayFunc(ctx, date)
	}
	return &model.DayBookings{
		Bookings:  []model.Booking{},
		Cancelled: []model.Booking{},
	}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func serve(t *testing.T, h *BookingHandler, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := httprouter.New()
	h.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetForDay_Success(t *testing.T) {
	active := model.Booking{
		ID:        "bk-1",
		Title:     "Intro call",
		CreatedAt: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
		StartsAt:  time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+15550100",
		Notes:     "bring laptop",
		Duration:  "30 minutes",
	}
	cancelled := active
	cancelled.ID = "bk-2"
	cancelled.Cancelled = true

	var receivedDate string
	mockService := &mockBookingService{
		getForDayFunc: func(ctx context.Context, date string) (*model.DayBookings, error) {
			receivedDate = date
			return &model.DayBookings{
				Bookings:  []model.Booking{active},
				Cancelled: []model.Booking{cancelled},
			}, nil
		},
	}

	rec := serve(t, NewBookingHandler(mockService, testLogger()), "/api/v1/bookings?date=2026-03-14")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if receivedDate != "2026-03-14" {
		t.Errorf("expected service to receive the raw date parameter, got %q", receivedDate)
	}

	var body struct {
		Bookings  []map[string]any `json:"bookings"`
		Cancelled []map[string]any `json:"cancelled"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}

	if len(body.Bookings) != 1 || len(body.Cancelled) != 1 {
		t.Fatalf("expected 1 active and 1 cancelled booking, got %d and %d", len(body.Bookings), len(body.Cancelled))
	}
	if body.Bookings[0]["id"] != "bk-1" || body.Bookings[0]["email"] != "ada@example.com" {
		t.Errorf("unexpected active booking payload: %v", body.Bookings[0])
	}
	if body.Bookings[0]["startsAt"] != "2026-03-14T10:00:00Z" {
		t.Errorf("expected ISO-8601 timestamps on the wire, got %v", body.Bookings[0]["startsAt"])
	}
	if body.Cancelled[0]["cancelled"] != true {
		t.Errorf("expected cancelled flag set, got %v", body.Cancelled[0])
	}
}

func TestGetForDay_EmptyDayIsSerializedAsEmptyLists(t *testing.T) {
	rec := serve(t, NewBookingHandler(&mockBookingService{}, testLogger()), "/api/v1/bookings?date=2026-03-14")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if string(body["bookings"]) != "[]" || string(body["cancelled"]) != "[]" {
		t.Errorf("expected empty arrays, got bookings=%s cancelled=%s", body["bookings"], body["cancelled"])
	}
}

func TestGetForDay_ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectStatus int
		expectCode   string
	}{
		{
			name:         "invalid date",
			serviceErr:   apperrors.InvalidDate("junk"),
			expectStatus: http.StatusBadRequest,
			expectCode:   apperrors.CodeInvalidDate,
		},
		{
			name:         "upstream failure",
			serviceErr:   apperrors.Upstream(context.DeadlineExceeded),
			expectStatus: http.StatusBadGateway,
			expectCode:   apperrors.CodeUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockBookingService{
				getForDayFunc: func(ctx context.Context, date string) (*model.DayBookings, error) {
					return nil, tt.serviceErr
				},
			}

			rec := serve(t, NewBookingHandler(mockService, testLogger()), "/api/v1/bookings?date=junk")

			if rec.Code != tt.expectStatus {
				t.Fatalf("expected status %d, got %d", tt.expectStatus, rec.Code)
			}

			var body struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("error response is not valid JSON: %v", err)
			}
			if body.Code != tt.expectCode {
				t.Errorf("expected stable error code %s, got %s", tt.expectCode, body.Code)
			}
		})
	}
}
