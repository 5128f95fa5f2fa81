package model

import "github.com/google/uuid"

// MascotaModel mirrors the 'mascotas' table. The owner reference is the
// denormalized username, matching the renaming cascade.
type MascotaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Nombre      string    `gorm:"type:varchar(100);not null"`
	Tipo        string    `gorm:"type:varchar(20);not null;index"`
	Raza        string    `gorm:"type:varchar(100)"`
	Edad        int
	Peso        float64
	Propietario string `gorm:"type:varchar(50);not null;index"`

	Dueno *UsuarioModel `gorm:"foreignKey:Propietario;references:Username"`

	AuditFields
}

// TableName explicitly sets the table name for GORM.
func (MascotaModel) TableName() string {
	return "mascotas"
}
