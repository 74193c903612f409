package repository

import "context"

// RepositoryFactory hands out repository instances bound to one
// transaction. Only the repositories that participate in multi-table
// writes are exposed here.
type RepositoryFactory interface {
	OfferRepo() OfferRepository
	ProductRepo() ProductRepository
}

// TransactionManager runs a function inside a single database
// transaction. The implementation must commit on success, roll back on
// error or panic, and release the connection on every exit path.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
