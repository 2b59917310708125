package create_booking

import (
	"fmt"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if req.VehicleID == "" {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if req.BookingStart.IsZero() || req.BookingEnd.IsZero() {
		return fmt.Errorf("%w: bookingStart and bookingEnd are required", ErrInvalidInput)
	}

	if !req.BookingEnd.After(req.BookingStart) {
		return fmt.Errorf("%w: bookingEnd must be after bookingStart", ErrInvalidInput)
	}

	if req.BookingEnd.Before(now) {
		return fmt.Errorf("%w: booking window is entirely in the past", ErrInvalidInput)
	}

	if req.UsePoints < 0 {
		return fmt.Errorf("%w: usePoints must not be negative", ErrInvalidInput)
	}

	if err := validatePaymentMethod(req.PaymentMethod); err != nil {
		return err
	}

	return nil
}

// validatePaymentMethod проверяет, что способ оплаты поддерживается
func validatePaymentMethod(method domain.PaymentMethod) error {
	switch method {
	case domain.MethodCard, domain.MethodUPI, domain.MethodCash, domain.MethodWallet:
		return nil
	default:
		return fmt.Errorf("%w: unsupported payment method %q", ErrInvalidInput, method)
	}
}
