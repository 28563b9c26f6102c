package storage

import "context"

// TxManager ejecuta fn dentro de una transacción de storage.
// El handle de la transacción viaja en el ctx que recibe fn; los repos lo
// levantan de ahí. Si fn devuelve error se hace rollback completo.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
