package users

import "time"

// User es la cuenta local de una identidad emitida por el proveedor externo.
// ID es el sub de Google; se upserta en cada login.
type User struct {
	ID      string
	Email   string
	Name    string
	Picture string

	CreatedAt time.Time
	UpdatedAt time.Time
}
