package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Factura represents an invoice issued for exactly one cita or one vacuna.
// A paid invoice is immutable and can never be voided; voiding flips estado
// to anulada and soft-deletes the record atomically.
type Factura struct {
	ID            uuid.UUID
	NumeroFactura string
	IDCita        *uuid.UUID
	IDVacuna      *uuid.UUID
	IDMascota     uuid.UUID
	FechaFactura  time.Time
	TipoServicio  TipoServicio
	Descripcion   string
	Veterinario   string // Username of the issuing vet, always the caller.
	ValorServicio float64
	IVA           float64
	Descuento     float64
	Total         float64
	Estado        EstadoFactura

	// Populated on detail reads for response enrichment.
	Mascota *Mascota
	Vet     *Usuario

	Audit
}

// RecomputeTotal derives the invoice total from its monetary components.
func (f *Factura) RecomputeTotal() {
	f.Total = (f.ValorServicio + f.IVA) - f.Descuento
}

// NewNumeroFactura builds an invoice number of the form FAC-{year}-{8 hex}
// from a freshly generated UUID.
func NewNumeroFactura(year int) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]

	return fmt.Sprintf("FAC-%d-%s", year, strings.ToUpper(suffix))
}
