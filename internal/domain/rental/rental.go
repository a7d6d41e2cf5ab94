// Package rental holds the rental transaction entity and the notification
// parser that turns game chat messages into structured rentals.
package rental

import (
	"fmt"
	"time"

	"autopark/internal/domain/fleet"
	"autopark/internal/shared/biztime"
)

// Rental is one rental transaction. Rentals are append-only: once recorded
// they are never updated or deleted by the ingestion path.
type Rental struct {
	id            uint
	server        string
	characterName string
	transport     string
	licensePlate  string
	price         float64
	duration      string
	renter        string
	createdAt     time.Time
}

// NewRental creates a rental record. The license plate is normalized to its
// canonical uppercase form so it joins against the fleet registry.
func NewRental(server, characterName, transport, licensePlate string, price float64, duration, renter string) (*Rental, error) {
	if server == "" {
		return nil, fmt.Errorf("server is required")
	}
	if characterName == "" {
		return nil, fmt.Errorf("character name is required")
	}
	if transport == "" {
		return nil, fmt.Errorf("transport is required")
	}
	if err := fleet.ValidatePlate(licensePlate); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if duration == "" {
		return nil, fmt.Errorf("duration is required")
	}
	if renter == "" {
		return nil, fmt.Errorf("renter is required")
	}

	return &Rental{
		server:        server,
		characterName: characterName,
		transport:     transport,
		licensePlate:  fleet.NormalizePlate(licensePlate),
		price:         price,
		duration:      duration,
		renter:        renter,
		createdAt:     biztime.NowUTC(),
	}, nil
}

// SetID assigns the persistence identifier after insert.
func (r *Rental) SetID(id uint) {
	r.id = id
}

func (r *Rental) ID() uint              { return r.id }
func (r *Rental) Server() string        { return r.server }
func (r *Rental) CharacterName() string { return r.characterName }
func (r *Rental) Transport() string     { return r.transport }
func (r *Rental) LicensePlate() string  { return r.licensePlate }
func (r *Rental) Price() float64        { return r.price }
func (r *Rental) Duration() string      { return r.duration }
func (r *Rental) Renter() string        { return r.renter }
func (r *Rental) CreatedAt() time.Time  { return r.createdAt }

// ReconstructRental rebuilds a rental from persisted state.
func ReconstructRental(
	id uint,
	server, characterName, transport, licensePlate string,
	price float64,
	duration, renter string,
	createdAt time.Time,
) *Rental {
	return &Rental{
		id:            id,
		server:        server,
		characterName: characterName,
		transport:     transport,
		licensePlate:  licensePlate,
		price:         price,
		duration:      duration,
		renter:        renter,
		createdAt:     createdAt,
	}
}
