package usecases

import "context"

// TransactionManager runs a function inside one storage transaction.
// The cascade delete of a vehicle and its maintenance history goes
// through it.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RegisterVehicleExecutor interface {
	Execute(ctx context.Context, cmd RegisterVehicleCommand) (*RegisterVehicleResult, error)
}

type UpdateVehicleExecutor interface {
	Execute(ctx context.Context, cmd UpdateVehicleCommand) (*VehicleResult, error)
}

type ChangeVehicleStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeVehicleStatusCommand) (*VehicleResult, error)
}

type SellVehicleExecutor interface {
	Execute(ctx context.Context, cmd SellVehicleCommand) (*VehicleResult, error)
}

type DeleteVehicleExecutor interface {
	Execute(ctx context.Context, cmd DeleteVehicleCommand) error
}

type GetVehicleExecutor interface {
	Execute(ctx context.Context, query GetVehicleQuery) (*VehicleResult, error)
}

type ListVehiclesExecutor interface {
	Execute(ctx context.Context, query ListVehiclesQuery) (*ListVehiclesResult, error)
}

type GetFleetStatsExecutor interface {
	Execute(ctx context.Context) (*GetFleetStatsResult, error)
}
