package model

import (
	"time"

	"github.com/google/uuid"
)

// RecetaModel mirrors the 'recetas' table. Each cita has at most one receta.
type RecetaModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IDCita       uuid.UUID `gorm:"type:uuid;column:id_cita;not null;index"`
	FechaEmision time.Time `gorm:"column:fecha_emision;not null"`
	Veterinario  string    `gorm:"type:varchar(50);not null;index"`
	Indicaciones string    `gorm:"type:text"`

	Cita   *CitaModel         `gorm:"foreignKey:IDCita"`
	Lineas []RecetaLineaModel `gorm:"foreignKey:IDReceta"`

	AuditFields
}

// TableName explicitly sets the table name for GORM.
func (RecetaModel) TableName() string {
	return "recetas"
}

// RecetaLineaModel mirrors the 'receta_lineas' table. Lines are replaced
// wholesale whenever a receta is updated.
type RecetaLineaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IDReceta    uuid.UUID `gorm:"type:uuid;column:id_receta;not null;index"`
	Medicamento string    `gorm:"type:varchar(150);not null"`
	Dosis       string    `gorm:"type:varchar(100);not null"`
	Frecuencia  string    `gorm:"type:varchar(100);not null"`
	Duracion    string    `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecetaLineaModel) TableName() string {
	return "receta_lineas"
}
