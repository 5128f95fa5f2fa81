package model

import (
	"time"

	"github.com/google/uuid"
)

// FacturaModel mirrors the 'facturas' table. Exactly one of IDCita or
// IDVacuna is set; the database keeps a check constraint to the same effect.
type FacturaModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NumeroFactura string     `gorm:"type:varchar(30);column:numero_factura;unique;not null"`
	IDCita        *uuid.UUID `gorm:"type:uuid;column:id_cita;index"`
	IDVacuna      *uuid.UUID `gorm:"type:uuid;column:id_vacuna;index"`
	IDMascota     uuid.UUID  `gorm:"type:uuid;column:id_mascota;not null;index"`
	FechaFactura  time.Time  `gorm:"column:fecha_factura;not null;index"`
	TipoServicio  string     `gorm:"type:varchar(30);column:tipo_servicio;not null"`
	Descripcion   string     `gorm:"type:text"`
	Veterinario   string     `gorm:"type:varchar(50);not null;index"`
	ValorServicio float64    `gorm:"column:valor_servicio;not null"`
	IVA           float64    `gorm:"column:iva;not null"`
	Descuento     float64    `gorm:"not null"`
	Total         float64    `gorm:"not null"`
	Estado        string     `gorm:"type:varchar(20);not null;index"`

	Mascota *MascotaModel `gorm:"foreignKey:IDMascota"`
	Vet     *UsuarioModel `gorm:"foreignKey:Veterinario;references:Username"`

	AuditFields
}

// TableName explicitly sets the table name for GORM.
func (FacturaModel) TableName() string {
	return "facturas"
}
