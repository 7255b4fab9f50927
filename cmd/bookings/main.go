package main

import (
	"daybook/internal/bookings/handler"
	"daybook/internal/bookings/service"
	"daybook/internal/bookings/validator"
	"daybook/internal/bookings/ycbm"
	"daybook/pkg/app"
	"daybook/pkg/config"
	"daybook/pkg/metrics"
	"daybook/pkg/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting day-bookings service")

	ycbmClient := ycbm.NewClient(
		cfg.YCBMBaseURL,
		cfg.YCBMAccountID,
		cfg.YCBMProfileID,
		cfg.YCBMUsername,
		cfg.YCBMAPIKey,
		cfg.YCBMTimeout,
		cfg.Log,
	)

	m := metrics.New(ServiceName)
	bookingService := initServices(cfg, ycbmClient, m)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		handler.NewHealthHandler(ycbmClient, cfg.Log),
		middleware.Metrics(m),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, fetcher service.Fetcher, m *metrics.Metrics) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingService := service.NewBookingService(fetcher, bookingValidator, m, cfg)

	cfg.Log.Info("Booking service initialized",
		"provider_base_url", cfg.YCBMBaseURL,
		"profile_id", cfg.YCBMProfileID,
	)
	return bookingService
}
