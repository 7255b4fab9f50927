package service

import (
	"context"
	"time"

	"daybook/internal/bookings/validator"
	"daybook/internal/bookings/ycbm"
	"daybook/pkg/config"
	apperrors "daybook/pkg/errors"
	"daybook/pkg/metrics"
	"daybook/pkg/model"
)

// dayLayouts are the accepted shapes of the inbound date parameter: a full
// date-time or a bare calendar date.
var dayLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type BookingService interface {
	GetForDay(ctx context.Context, date string) (*model.DayBookings, error)
}

// Fetcher is the slice of the provider client the pipeline needs.
type Fetcher interface {
	FetchBookings(ctx context.Context, day time.Time) ([]ycbm.BookingDTO, error)
}

type bookingService struct {
	fetcher   Fetcher
	validator *validator.BookingValidator
	metrics   *metrics.Metrics
	cfg       *config.Config
}

func NewBookingService(
	fetcher Fetcher,
	bookingValidator *validator.BookingValidator,
	m *metrics.Metrics,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		fetcher:   fetcher,
		validator: bookingValidator,
		metrics:   m,
		cfg:       cfg,
	}
}

// GetForDay runs the whole pipeline for one requested calendar day: fetch,
// normalize per record, filter to the day, partition by cancellation state.
//
// Data-quality failures are isolated per record: a record that cannot be
// fully normalized is logged and dropped so one malformed provider record
// does not hide the rest of the day's bookings.
func (s *bookingService) GetForDay(ctx context.Context, date string) (*model.DayBookings, error) {
	day, err := s.parseDay(date)
	if err != nil {
		return nil, err
	}

	raw, err := s.fetcher.FetchBookings(ctx, day)
	if err != nil {
		s.countUpstream("error")
		return nil, apperrors.Upstream(err)
	}
	s.countUpstream("success")

	bookings := make([]model.Booking, 0, len(raw))
	for _, dto := range raw {
		booking, err := Normalize(dto)
		if err != nil {
			s.dropRecord(dto.ID, err)
			continue
		}
		if err := s.validator.Validate(booking); err != nil {
			s.dropRecord(dto.ID, err)
			continue
		}
		bookings = append(bookings, *booking)
	}

	forDay := s.FilterByDay(bookings, day)
	partition := Partition(forDay)

	s.cfg.Log.Info("Assembled day bookings",
		"date", day.Format("2006-01-02"),
		"fetched", len(raw),
		"matched", len(forDay),
		"active", len(partition.Bookings),
		"cancelled", len(partition.Cancelled),
	)

	return &partition, nil
}

// parseDay resolves the date parameter in the service timezone. There is no
// fallback to "today": an unusable value fails the request.
func (s *bookingService) parseDay(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, apperrors.InvalidDate(date)
	}
	for _, layout := range dayLayouts {
		if day, err := time.ParseInLocation(layout, date, s.cfg.Location); err == nil {
			return day, nil
		}
	}
	return time.Time{}, apperrors.InvalidDate(date)
}

// FilterByDay retains bookings starting on the requested calendar day.
// Matching needs year and day-of-year to agree: day-of-year alone would
// accept a booking from a different year. Input order is preserved.
func (s *bookingService) FilterByDay(bookings []model.Booking, day time.Time) []model.Booking {
	day = day.In(s.cfg.Location)

	matched := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		start := b.StartsAt.In(s.cfg.Location)
		if start.Year() == day.Year() && start.YearDay() == day.YearDay() {
			matched = append(matched, b)
		}
	}
	return matched
}

// Partition splits bookings into active and cancelled sets. Every input
// booking lands in exactly one bucket, in input order.
func Partition(bookings []model.Booking) model.DayBookings {
	partition := model.DayBookings{
		Bookings:  make([]model.Booking, 0, len(bookings)),
		Cancelled: make([]model.Booking, 0),
	}
	for _, b := range bookings {
		if b.Cancelled {
			partition.Cancelled = append(partition.Cancelled, b)
		} else {
			partition.Bookings = append(partition.Bookings, b)
		}
	}
	return partition
}

func (s *bookingService) dropRecord(bookingID string, err error) {
	s.cfg.Log.Warn("Dropping booking record",
		"booking_id", bookingID,
		"error", err,
	)
	if s.metrics != nil {
		s.metrics.DroppedRecords.Inc()
	}
}

func (s *bookingService) countUpstream(outcome string) {
	if s.metrics != nil {
		s.metrics.UpstreamTotal.WithLabelValues(outcome).Inc()
	}
}
