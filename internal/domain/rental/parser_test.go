package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotification_CompleteMessage(t *testing.T) {
	text := `Новая аренда!
Сервер: Rodina RP
Персонаж: Ivan_Petrov
Транспорт: BMW M5
Номер транспорта: AB123CD
Цена: $1500
Длительность: 2 дня
Арендатор: Oleg_Sidorov`

	parsed, err := ParseNotification(text)
	require.NoError(t, err)
	require.NotNil(t, parsed)

	assert.Equal(t, "Rodina RP", parsed.Server)
	assert.Equal(t, "Ivan_Petrov", parsed.CharacterName)
	assert.Equal(t, "BMW M5", parsed.Transport)
	assert.Equal(t, "AB123CD", parsed.LicensePlate)
	assert.Equal(t, 1500.0, parsed.Price)
	assert.Equal(t, "2 дня", parsed.Duration)
	assert.Equal(t, "Oleg_Sidorov", parsed.Renter)
}

func TestParseNotification_ShortPlateLabel(t *testing.T) {
	// The game also sends the plate label in its shortened form, and
	// formats prices with embedded spaces.
	text := `Сервер: RedCounty
Персонаж: John
Транспорт: Sedan
Номер: ABC123
Цена: $ 1 500
Длительность: 2 days
Арендатор: Mike`

	parsed, err := ParseNotification(text)
	require.NoError(t, err)

	assert.Equal(t, "ABC123", parsed.LicensePlate)
	assert.Equal(t, 1500.0, parsed.Price)
	assert.Equal(t, "2 days", parsed.Duration)
	assert.Equal(t, "Mike", parsed.Renter)
}

func TestParseNotification_MissingField(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty message", ""},
		{"unrelated text", "hello, is the sedan available tomorrow?"},
		{
			"missing renter",
			"Сервер: S\nПерсонаж: P\nТранспорт: T\nНомер: A1\nЦена: $100\nДлительность: 1 день",
		},
		{
			"missing price",
			"Сервер: S\nПерсонаж: P\nТранспорт: T\nНомер: A1\nДлительность: 1 день\nАрендатор: R",
		},
		{
			"missing plate",
			"Сервер: S\nПерсонаж: P\nТранспорт: T\nЦена: $100\nДлительность: 1 день\nАрендатор: R",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseNotification(tt.text)
			assert.Nil(t, parsed)
			assert.ErrorIs(t, err, ErrNoRentalData)
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "1500", 1500},
		{"embedded spaces", "1 500", 1500},
		{"thousands comma", "1,500", 1500},
		{"spaces and commas", "12, 500", 12500},
		{"no digits", " , ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePrice(tt.raw))
		})
	}
}
