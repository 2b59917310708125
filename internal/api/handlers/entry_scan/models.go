package entry_scan

import (
	"time"

	entryScan "github.com/parkwise/PW-BookingService/internal/usecase/entry_scan"
)

// EntryScanRequest HTTP request model
// Принимает либо содержимое QR-кода, либо пару bookingId+tokenCode
type EntryScanRequest struct {
	QRData    string `json:"qrData,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
	TokenCode string `json:"tokenCode,omitempty"`
}

// EntryScanResponse HTTP response model
type EntryScanResponse struct {
	BookingID   string `json:"bookingId"`
	Status      string `json:"status"`
	ActualStart string `json:"actualStart"`
	SlotNumber  string `json:"slotNumber"`
	ZoneName    string `json:"zoneName"`
	FloorNumber *int   `json:"floorNumber,omitempty"`
	CentreName  string `json:"centreName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EntryScanRequest) ToUseCaseRequest() *entryScan.Request {
	return &entryScan.Request{
		QRData:    r.QRData,
		BookingID: r.BookingID,
		TokenCode: r.TokenCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *entryScan.Response) *EntryScanResponse {
	return &EntryScanResponse{
		BookingID:   resp.BookingID,
		Status:      resp.Status,
		ActualStart: resp.ActualStart.Format(time.RFC3339),
		SlotNumber:  resp.SlotNumber,
		ZoneName:    resp.ZoneName,
		FloorNumber: resp.FloorNumber,
		CentreName:  resp.CentreName,
	}
}
