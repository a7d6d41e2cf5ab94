package rental

import "context"

// GroupStat is one row of a grouped income breakdown (by server or by
// transport label).
type GroupStat struct {
	Key     string
	Rentals int64
	Income  float64
}

type RentalRepository interface {
	// Create appends a rental. The ingestion path never updates or deletes.
	Create(ctx context.Context, rental *Rental) error
	// FindAll returns every rental, most recent first.
	FindAll(ctx context.Context) ([]*Rental, error)
	// FindByPlate returns rentals for a normalized plate, most recent first.
	FindByPlate(ctx context.Context, plate string) ([]*Rental, error)
	Count(ctx context.Context) (int64, error)
	SumPrices(ctx context.Context) (float64, error)
	// StatsByServer groups income by server, highest income first.
	StatsByServer(ctx context.Context) ([]GroupStat, error)
	// StatsByTransport groups income by transport label, highest income first.
	StatsByTransport(ctx context.Context) ([]GroupStat, error)
}
