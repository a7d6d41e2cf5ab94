package usecases

import "context"

// TransactionManager runs a function inside one storage transaction. The
// reconciliation unit of work commits or rolls back as a whole through it.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type IngestNotificationExecutor interface {
	Execute(ctx context.Context, cmd IngestNotificationCommand) (*IngestNotificationResult, error)
}

type ListRentalsExecutor interface {
	Execute(ctx context.Context, query ListRentalsQuery) (*ListRentalsResult, error)
}
