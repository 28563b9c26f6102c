package auth

// Claims representa la identidad verificada de un request.
// UserID es el id que asigna el proveedor externo (sub de Google) y es
// también la primary key de users.
type Claims struct {
	UserID  string
	Email   string
	Name    string
	Picture string
}
