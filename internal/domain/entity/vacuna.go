package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vacuna represents an applied vaccination record. FechaAplicacion is always
// the server's "today" in the clinic timezone; clients cannot backdate it.
type Vacuna struct {
	ID              uuid.UUID
	IDMascota       uuid.UUID
	TipoVacuna      TipoVacuna
	FechaAplicacion time.Time
	Veterinario     string // Username of the vet who applied the dose.
	LoteVacuna      string
	ProximaDosis    *time.Time // Optional; must be strictly after FechaAplicacion.

	// Populated on detail reads for response enrichment.
	Mascota *Mascota
	Vet     *Usuario

	Audit
}
