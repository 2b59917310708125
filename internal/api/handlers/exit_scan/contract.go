package exit_scan

import (
	"context"

	exitScan "github.com/parkwise/PW-BookingService/internal/usecase/exit_scan"
)

type ExitScanUseCase interface {
	Execute(ctx context.Context, req *exitScan.Request) (*exitScan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
