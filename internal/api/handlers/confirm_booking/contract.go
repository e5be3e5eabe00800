package confirm_booking

import (
	"context"

	confirmBooking "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/confirm_booking"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error)
}

// BookingObserver records confirmed bookings (nil disables recording)
type BookingObserver interface {
	ObserveBookingConfirmed()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
