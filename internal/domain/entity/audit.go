package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit carries the creation/update stamps and the soft-delete marker shared
// by every clinical record. Soft-deleted rows stay in storage; listings skip
// them unless explicitly asked for, while direct lookups still return them so
// a record can be restored.
type Audit struct {
	IDUsuarioCreacion      *uuid.UUID // User that created the record.
	IDUsuarioActualizacion *uuid.UUID // User that last modified the record.
	FechaCreacion          time.Time
	FechaActualizacion     time.Time

	IsDeleted bool
	DeletedAt *time.Time
	DeletedBy *uuid.UUID
}

// StampCreated records the creator and creation time.
func (a *Audit) StampCreated(by uuid.UUID, at time.Time) {
	a.IDUsuarioCreacion = &by
	a.FechaCreacion = at
	a.StampUpdated(by, at)
}

// StampUpdated records the last modifier and modification time.
func (a *Audit) StampUpdated(by uuid.UUID, at time.Time) {
	a.IDUsuarioActualizacion = &by
	a.FechaActualizacion = at
}

// MarkDeleted sets the soft-delete marker.
func (a *Audit) MarkDeleted(by uuid.UUID, at time.Time) {
	a.IsDeleted = true
	a.DeletedAt = &at
	a.DeletedBy = &by
	a.StampUpdated(by, at)
}

// ClearDeleted removes the soft-delete marker, restoring the record.
func (a *Audit) ClearDeleted(by uuid.UUID, at time.Time) {
	a.IsDeleted = false
	a.DeletedAt = nil
	a.DeletedBy = nil
	a.StampUpdated(by, at)
}
