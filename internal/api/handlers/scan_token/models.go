package scan_token

import (
	"time"

	scanToken "github.com/parkwise/PW-BookingService/internal/usecase/scan_token"
)

// ScanTokenRequest HTTP request model
// Принимает либо содержимое QR-кода, либо пару bookingId+tokenCode
type ScanTokenRequest struct {
	QRData    string `json:"qrData,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
	TokenCode string `json:"tokenCode,omitempty"`
}

// ScanTokenResponse HTTP response model
type ScanTokenResponse struct {
	TokenCode     string `json:"tokenCode"`
	BookingID     string `json:"bookingId"`
	BookingStatus string `json:"bookingStatus"`
	IsUsed        bool   `json:"isUsed"`
	UsedAt        string `json:"usedAt,omitempty"`
	SlotNumber    string `json:"slotNumber"`
	ZoneName      string `json:"zoneName"`
	CentreName    string `json:"centreName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScanTokenRequest) ToUseCaseRequest() *scanToken.Request {
	return &scanToken.Request{
		QRData:    r.QRData,
		BookingID: r.BookingID,
		TokenCode: r.TokenCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scanToken.Response) *ScanTokenResponse {
	response := &ScanTokenResponse{
		TokenCode:     resp.TokenCode,
		BookingID:     resp.BookingID,
		BookingStatus: resp.BookingStatus,
		IsUsed:        resp.IsUsed,
		SlotNumber:    resp.SlotNumber,
		ZoneName:      resp.ZoneName,
		CentreName:    resp.CentreName,
	}

	if resp.UsedAt != nil {
		response.UsedAt = resp.UsedAt.Format(time.RFC3339)
	}

	return response
}
