package model

import (
	"time"

	"github.com/google/uuid"
)

// CitaModel mirrors the 'citas' table.
type CitaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IDMascota   uuid.UUID `gorm:"type:uuid;column:id_mascota;not null;index"`
	Fecha       time.Time `gorm:"not null;index"`
	Motivo      string    `gorm:"type:text;not null"`
	Veterinario string    `gorm:"type:varchar(50);not null;index"`
	Estado      string    `gorm:"type:varchar(20);not null;index"`
	Diagnostico *string   `gorm:"type:text"`
	Tratamiento *string   `gorm:"type:text"`

	Mascota *MascotaModel `gorm:"foreignKey:IDMascota"`
	Vet     *UsuarioModel `gorm:"foreignKey:Veterinario;references:Username"`

	AuditFields
}

// TableName explicitly sets the table name for GORM.
func (CitaModel) TableName() string {
	return "citas"
}
