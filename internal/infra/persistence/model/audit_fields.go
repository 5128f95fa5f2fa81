// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditFields mirrors the audit and soft-delete columns shared by every
// clinical table. Stamps are written by the domain layer, not by GORM hooks,
// so the columns carry no auto-time tags.
type AuditFields struct {
	IDUsuarioCreacion      *uuid.UUID `gorm:"type:uuid;column:id_usuario_creacion"`
	IDUsuarioActualizacion *uuid.UUID `gorm:"type:uuid;column:id_usuario_actualizacion"`
	FechaCreacion          time.Time  `gorm:"column:fecha_creacion"`
	FechaActualizacion     time.Time  `gorm:"column:fecha_actualizacion"`

	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false;index"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`
	DeletedBy *uuid.UUID `gorm:"type:uuid;column:deleted_by"`
}
