package exit_scan

import (
	"time"

	exitScan "github.com/parkwise/PW-BookingService/internal/usecase/exit_scan"
)

// ExitScanRequest HTTP request model
// Принимает либо содержимое QR-кода, либо пару bookingId+tokenCode
type ExitScanRequest struct {
	QRData    string `json:"qrData,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
	TokenCode string `json:"tokenCode,omitempty"`
}

// ExitScanResponse HTTP response model
type ExitScanResponse struct {
	BookingID        string  `json:"bookingId"`
	Status           string  `json:"status"`
	ActualStart      string  `json:"actualStart"`
	ActualEnd        string  `json:"actualEnd"`
	ActualHours      int     `json:"actualHours"`
	SettlementAmount float64 `json:"settlementAmount"`
	ExtraHours       int     `json:"extraHours"`
	ExtraAmount      float64 `json:"extraAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ExitScanRequest) ToUseCaseRequest() *exitScan.Request {
	return &exitScan.Request{
		QRData:    r.QRData,
		BookingID: r.BookingID,
		TokenCode: r.TokenCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *exitScan.Response) *ExitScanResponse {
	return &ExitScanResponse{
		BookingID:        resp.BookingID,
		Status:           resp.Status,
		ActualStart:      resp.ActualStart.Format(time.RFC3339),
		ActualEnd:        resp.ActualEnd.Format(time.RFC3339),
		ActualHours:      resp.ActualHours,
		SettlementAmount: resp.SettlementAmount,
		ExtraHours:       resp.ExtraHours,
		ExtraAmount:      resp.ExtraAmount,
	}
}
