package usecases

import (
	"context"

	"autopark/internal/domain/fleet"
	vo "autopark/internal/domain/fleet/valueobjects"
	"autopark/internal/domain/rental"
	"autopark/internal/shared/logger"
)

type mockRentalRepository struct {
	CreateFunc           func(ctx context.Context, r *rental.Rental) error
	FindAllFunc          func(ctx context.Context) ([]*rental.Rental, error)
	FindByPlateFunc      func(ctx context.Context, plate string) ([]*rental.Rental, error)
	CountFunc            func(ctx context.Context) (int64, error)
	SumPricesFunc        func(ctx context.Context) (float64, error)
	StatsByServerFunc    func(ctx context.Context) ([]rental.GroupStat, error)
	StatsByTransportFunc func(ctx context.Context) ([]rental.GroupStat, error)
}

func (m *mockRentalRepository) Create(ctx context.Context, r *rental.Rental) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRentalRepository) FindAll(ctx context.Context) ([]*rental.Rental, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRentalRepository) FindByPlate(ctx context.Context, plate string) ([]*rental.Rental, error) {
	if m.FindByPlateFunc != nil {
		return m.FindByPlateFunc(ctx, plate)
	}
	return nil, nil
}

func (m *mockRentalRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockRentalRepository) SumPrices(ctx context.Context) (float64, error) {
	if m.SumPricesFunc != nil {
		return m.SumPricesFunc(ctx)
	}
	return 0, nil
}

func (m *mockRentalRepository) StatsByServer(ctx context.Context) ([]rental.GroupStat, error) {
	if m.StatsByServerFunc != nil {
		return m.StatsByServerFunc(ctx)
	}
	return nil, nil
}

func (m *mockRentalRepository) StatsByTransport(ctx context.Context) ([]rental.GroupStat, error) {
	if m.StatsByTransportFunc != nil {
		return m.StatsByTransportFunc(ctx)
	}
	return nil, nil
}

type mockVehicleRepository struct {
	CreateFunc               func(ctx context.Context, v *fleet.Vehicle) error
	UpdateFunc               func(ctx context.Context, v *fleet.Vehicle) error
	FindByPlateFunc          func(ctx context.Context, plate string) (*fleet.Vehicle, error)
	FindByPlateForUpdateFunc func(ctx context.Context, plate string) (*fleet.Vehicle, error)
	FindByIDFunc             func(ctx context.Context, id uint) (*fleet.Vehicle, error)
	FindAllFunc              func(ctx context.Context) ([]*fleet.Vehicle, error)
	FindByStatusFunc         func(ctx context.Context, status vo.Status) ([]*fleet.Vehicle, error)
	DeleteFunc               func(ctx context.Context, id uint) error
	GetFleetStatsFunc        func(ctx context.Context) (*fleet.FleetStats, error)
	SumPurchasePricesFunc    func(ctx context.Context) (float64, error)
	SumSalePricesFunc        func(ctx context.Context) (float64, error)
}

func (m *mockVehicleRepository) Create(ctx context.Context, v *fleet.Vehicle) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *mockVehicleRepository) Update(ctx context.Context, v *fleet.Vehicle) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, v)
	}
	return nil
}

func (m *mockVehicleRepository) FindByPlate(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	if m.FindByPlateFunc != nil {
		return m.FindByPlateFunc(ctx, plate)
	}
	return nil, nil
}

func (m *mockVehicleRepository) FindByPlateForUpdate(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	if m.FindByPlateForUpdateFunc != nil {
		return m.FindByPlateForUpdateFunc(ctx, plate)
	}
	return nil, nil
}

func (m *mockVehicleRepository) FindByID(ctx context.Context, id uint) (*fleet.Vehicle, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockVehicleRepository) FindAll(ctx context.Context) ([]*fleet.Vehicle, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockVehicleRepository) FindByStatus(ctx context.Context, status vo.Status) ([]*fleet.Vehicle, error) {
	if m.FindByStatusFunc != nil {
		return m.FindByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockVehicleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockVehicleRepository) GetFleetStats(ctx context.Context) (*fleet.FleetStats, error) {
	if m.GetFleetStatsFunc != nil {
		return m.GetFleetStatsFunc(ctx)
	}
	return &fleet.FleetStats{}, nil
}

func (m *mockVehicleRepository) SumPurchasePrices(ctx context.Context) (float64, error) {
	if m.SumPurchasePricesFunc != nil {
		return m.SumPurchasePricesFunc(ctx)
	}
	return 0, nil
}

func (m *mockVehicleRepository) SumSalePrices(ctx context.Context) (float64, error) {
	if m.SumSalePricesFunc != nil {
		return m.SumSalePricesFunc(ctx)
	}
	return 0, nil
}

// mockTransactionManager runs the unit of work directly on the given context.
type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}
