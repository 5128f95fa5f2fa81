package model

import (
	"time"

	"github.com/google/uuid"
)

// VacunaModel mirrors the 'vacunas' table.
type VacunaModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IDMascota       uuid.UUID  `gorm:"type:uuid;column:id_mascota;not null;index"`
	TipoVacuna      string     `gorm:"type:varchar(30);column:tipo_vacuna;not null;index"`
	FechaAplicacion time.Time  `gorm:"column:fecha_aplicacion;not null;index"`
	Veterinario     string     `gorm:"type:varchar(50);not null;index"`
	LoteVacuna      string     `gorm:"type:varchar(50);column:lote_vacuna"`
	ProximaDosis    *time.Time `gorm:"column:proxima_dosis"`

	Mascota *MascotaModel `gorm:"foreignKey:IDMascota"`
	Vet     *UsuarioModel `gorm:"foreignKey:Veterinario;references:Username"`

	AuditFields
}

// TableName explicitly sets the table name for GORM.
func (VacunaModel) TableName() string {
	return "vacunas"
}
