package vets

import "time"

// Vet es un veterinario registrado por el usuario.
type Vet struct {
	ID     string
	UserID string

	Name        string
	ContactInfo string
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
