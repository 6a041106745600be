package ports

import "context"

// TxManager scopes a function to one transactional unit of work. The
// function receives a derived context that repositories recognise; any error
// rolls the whole unit back, leaving no partial writes.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
