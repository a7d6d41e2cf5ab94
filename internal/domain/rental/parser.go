package rental

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoRentalData is returned when the text does not contain all seven
// labeled fields of a rental notification. It is a user-correctable
// condition, not a system fault: the sender is expected to resend.
var ErrNoRentalData = errors.New("no rental data found in message")

// ParsedRental is the structured result of parsing one notification.
type ParsedRental struct {
	Server        string
	CharacterName string
	Transport     string
	LicensePlate  string
	Price         float64
	Duration      string
	Renter        string
}

// Notification field patterns. The game sends one labeled field per line;
// the plate label appears both as "Номер транспорта" and shortened "Номер".
var (
	serverPattern    = regexp.MustCompile(`Сервер:\s*(.+)`)
	characterPattern = regexp.MustCompile(`Персонаж:\s*(.+)`)
	transportPattern = regexp.MustCompile(`Транспорт:\s*(.+)`)
	platePattern     = regexp.MustCompile(`Номер(?: транспорта)?:\s*([A-Za-z0-9]+)`)
	pricePattern     = regexp.MustCompile(`Цена:\s*\$?\s*([\d\s,]+)`)
	durationPattern  = regexp.MustCompile(`Длительность:\s*(.+)`)
	renterPattern    = regexp.MustCompile(`Арендатор:\s*(.+)`)

	digitRunPattern = regexp.MustCompile(`\d+`)
)

// ParseNotification extracts a rental from free-form notification text.
// It is a pure function: either every field is present and a fully populated
// result is returned, or the whole parse is rejected with ErrNoRentalData.
func ParseNotification(text string) (*ParsedRental, error) {
	server, okServer := matchField(serverPattern, text)
	character, okCharacter := matchField(characterPattern, text)
	transport, okTransport := matchField(transportPattern, text)
	plate, okPlate := matchField(platePattern, text)
	priceRaw, okPrice := matchField(pricePattern, text)
	duration, okDuration := matchField(durationPattern, text)
	renter, okRenter := matchField(renterPattern, text)

	if !okServer || !okCharacter || !okTransport || !okPlate || !okPrice || !okDuration || !okRenter {
		return nil, ErrNoRentalData
	}

	return &ParsedRental{
		Server:        server,
		CharacterName: character,
		Transport:     transport,
		LicensePlate:  plate,
		Price:         parsePrice(priceRaw),
		Duration:      duration,
		Renter:        renter,
	}, nil
}

func matchField(pattern *regexp.Regexp, text string) (string, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// parsePrice converts the captured price token to a number. The game formats
// prices with embedded spaces and thousands commas ("$ 1 500"); both are
// stripped. If conversion still fails, every digit run in the raw capture is
// concatenated and read as an integer; with no digits at all the price is 0.
func parsePrice(raw string) float64 {
	cleaned := strings.NewReplacer(" ", "", ",", "").Replace(raw)
	if price, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return price
	}

	digits := digitRunPattern.FindAllString(raw, -1)
	if len(digits) == 0 {
		return 0
	}

	price, err := strconv.ParseFloat(strings.Join(digits, ""), 64)
	if err != nil {
		return 0
	}
	return price
}
