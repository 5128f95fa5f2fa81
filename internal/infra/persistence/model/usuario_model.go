package model

import "github.com/google/uuid"

// UsuarioModel mirrors the 'usuarios' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UsuarioModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(50);unique;not null"`
	Nombre       string    `gorm:"type:varchar(100);not null"`
	Edad         int
	Telefono     string `gorm:"type:varchar(20)"`
	Role         string `gorm:"type:varchar(20);not null;index"`
	PasswordSalt string `gorm:"type:varchar(64);not null"`
	PasswordHash string `gorm:"type:varchar(128);not null"`

	AuditFields
}

// TableName explicitly sets the table name for GORM.
func (UsuarioModel) TableName() string {
	return "usuarios"
}
