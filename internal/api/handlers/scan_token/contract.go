package scan_token

import (
	"context"

	scanToken "github.com/parkwise/PW-BookingService/internal/usecase/scan_token"
)

type ScanTokenUseCase interface {
	Execute(ctx context.Context, req *scanToken.Request) (*scanToken.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
