package dogs

import "time"

// Dog es el perfil de un perro registrado por un usuario.
// ProfilePicture es un data URI (imagen embebida), no una referencia a blob store.
type Dog struct {
	ID     string
	UserID string

	Name           string
	ProfilePicture string

	CreatedAt time.Time
	UpdatedAt time.Time
}
