package qrtoken

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Префикс кодов токенов ParkWise
const codePrefix = "PKW"

// Payload содержимое QR-кода пропуска
// Валидируется сравнением с записями tokens/bookings, без криптографической подписи
type Payload struct {
	BookingID  string `json:"booking_id"`
	TokenCode  string `json:"token_code"`
	SlotNumber string `json:"slot"`
	Vehicle    string `json:"vehicle"`
}

// NewCode генерирует код токена вида PKW-<unix_ms>-<9 символов>
func NewCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
	return fmt.Sprintf("%s-%d-%s", codePrefix, now.UnixMilli(), suffix)
}

// Encode сериализует payload в строку для QR-кода
func Encode(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("qrtoken: encode payload: %w", err)
	}
	return string(data), nil
}

// Decode разбирает строку QR-кода в payload
func Decode(raw string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, fmt.Errorf("qrtoken: decode payload: %w", err)
	}
	if p.BookingID == "" || p.TokenCode == "" {
		return Payload{}, fmt.Errorf("qrtoken: payload missing booking_id or token_code")
	}
	return p, nil
}
