package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cita represents a scheduled appointment for a pet with a veterinarian.
// Cancelling a cita both flips its estado and soft-deletes it in the same
// transaction, so a cancelled cita never shows up in default listings.
type Cita struct {
	ID          uuid.UUID
	IDMascota   uuid.UUID
	Fecha       time.Time // Wall-clock appointment time in the clinic timezone.
	Motivo      string
	Veterinario string // Assigned veterinarian username.
	Estado      EstadoCita
	Diagnostico *string
	Tratamiento *string

	// Populated on detail reads for response enrichment.
	Mascota *Mascota
	Vet     *Usuario

	Audit
}
