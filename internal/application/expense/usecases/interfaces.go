package usecases

import "context"

type AddMaintenanceExecutor interface {
	Execute(ctx context.Context, cmd AddMaintenanceCommand) (*AddMaintenanceResult, error)
}

type ListMaintenanceExecutor interface {
	Execute(ctx context.Context, query ListMaintenanceQuery) (*ListMaintenanceResult, error)
}

type AddCostExecutor interface {
	Execute(ctx context.Context, cmd AddCostCommand) (*AddCostResult, error)
}

type ListCostsExecutor interface {
	Execute(ctx context.Context, query ListCostsQuery) (*ListCostsResult, error)
}
