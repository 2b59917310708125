package entry_scan

import (
	"context"

	entryScan "github.com/parkwise/PW-BookingService/internal/usecase/entry_scan"
)

type EntryScanUseCase interface {
	Execute(ctx context.Context, req *entryScan.Request) (*entryScan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
