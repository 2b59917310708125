package qrtoken

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	code := NewCode(now)

	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "PKW", parts[0])
	assert.Equal(t, "1760529600000", parts[1])
	assert.Len(t, parts[2], 9)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestNewCode_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := NewCode(now)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestEncodeDecode(t *testing.T) {
	p := Payload{
		BookingID:  "7b0c9c1e-55a1-4a6e-9a1d-2f9f7a1b2c3d",
		TokenCode:  "PKW-1760529600000-AB12CD34E",
		SlotNumber: "A-12",
		Vehicle:    "KA01AB1234",
	}

	raw, err := Encode(p)
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not-a-json"},
		{"missing booking_id", `{"token_code":"PKW-1-X"}`},
		{"missing token_code", `{"booking_id":"abc"}`},
		{"empty", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			assert.Error(t, err)
		})
	}
}
