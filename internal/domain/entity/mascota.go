package entity

import "github.com/google/uuid"

// Mascota represents a patient of the clinic. Ownership is tracked by the
// owner's username; renaming a user cascades into this field.
type Mascota struct {
	ID          uuid.UUID
	Nombre      string
	Tipo        TipoMascota
	Raza        string
	Edad        int
	Peso        float64
	Propietario string // Owner username.

	// Owner account, populated on detail reads for response enrichment.
	Dueno *Usuario

	Audit
}
