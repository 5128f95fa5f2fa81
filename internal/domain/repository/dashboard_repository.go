package repository

import (
	"context"
	"time"

	"vetclinic/internal/domain/entity"
)

// DashboardRepository exposes the aggregate counts behind the role-scoped
// dashboard. Every count excludes soft-deleted rows.
type DashboardRepository interface {
	// CountMascotas counts all patients, or only those owned by propietario
	// when it is non-empty.
	CountMascotas(ctx context.Context, propietario string) (int64, error)

	// CountMascotasAtendidasPor counts the distinct patients with at least
	// one cita assigned to the given vet.
	CountMascotasAtendidasPor(ctx context.Context, veterinario string) (int64, error)

	// CountUsuarios counts all non-deleted accounts.
	CountUsuarios(ctx context.Context) (int64, error)

	// CountCitas counts citas in the given estado, optionally scoped to a
	// pet owner or to an assigned vet (empty strings mean no scoping).
	CountCitas(ctx context.Context, estado entity.EstadoCita, propietario, veterinario string) (int64, error)

	// CountCitasEntre counts citas with fecha in the half-open interval
	// [desde, hasta).
	CountCitasEntre(ctx context.Context, desde, hasta time.Time) (int64, error)

	// CountVacunas counts vacunas, optionally scoped to a pet owner or to
	// the applying vet.
	CountVacunas(ctx context.Context, propietario, veterinario string) (int64, error)

	// CountVacunasEntre counts vacunas applied in the half-open interval
	// [desde, hasta).
	CountVacunasEntre(ctx context.Context, desde, hasta time.Time) (int64, error)

	// CountFacturas counts facturas in the given estado, optionally scoped
	// to a pet owner or to the issuing vet.
	CountFacturas(ctx context.Context, estado entity.EstadoFactura, propietario, veterinario string) (int64, error)

	// SumIngresosEntre sums the total of paid facturas with fecha_factura in
	// the half-open interval [desde, hasta). Returns 0 when none match.
	SumIngresosEntre(ctx context.Context, desde, hasta time.Time) (float64, error)
}
