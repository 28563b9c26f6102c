package dogs

import "context"

// Owned verifica que el perro exista y pertenezca al usuario.
// Lo usan los módulos con ownership transitivo (events, vet visits,
// medicine events) para validar sus foreign keys sin ciclos de import.
func (s *Service) Owned(ctx context.Context, userID, dogID string) error {
	_, err := s.repo.GetForUser(ctx, dogID, userID)
	return err
}
