package entity

import "time"

// User representa un operador del sistema. La identidad resuelta (ID) se pasa
// explícitamente como performed_by a toda operación que muta inventario.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
