package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receta represents the prescription issued for a cita. Each cita carries at
// most one receta; its medication lines are replaced wholesale on update.
type Receta struct {
	ID           uuid.UUID
	IDCita       uuid.UUID
	FechaEmision time.Time
	Veterinario  string // Username of the issuing vet.
	Indicaciones string
	Lineas       []RecetaLinea

	// Populated on detail reads for response enrichment.
	Cita *Cita

	Audit
}

// RecetaLinea is a single medication line of a prescription.
type RecetaLinea struct {
	ID          uuid.UUID
	IDReceta    uuid.UUID
	Medicamento string
	Dosis       string
	Frecuencia  string
	Duracion    string
}
