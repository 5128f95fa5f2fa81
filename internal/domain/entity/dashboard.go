package entity

// EstadisticasCliente aggregates a pet owner's view of the clinic, scoped to
// their own non-deleted pets.
type EstadisticasCliente struct {
	MisMascotas        int64
	CitasPendientes    int64
	CitasCompletadas   int64
	VacunasAplicadas   int64
	FacturasPendientes int64
	FacturasPagadas    int64
}

// EstadisticasVeterinario aggregates a veterinarian's workload, scoped to
// records assigned to them.
type EstadisticasVeterinario struct {
	MisMascotas      int64
	CitasAsignadas   int64
	CitasCompletadas int64
	VacunasAplicadas int64
	FacturasEmitidas int64
	FacturasCobradas int64
}

// EstadisticasAdmin aggregates clinic-wide figures, including the running
// month's revenue over paid invoices.
type EstadisticasAdmin struct {
	TotalMascotas      int64
	TotalUsuarios      int64
	CitasPendientes    int64
	CitasHoy           int64
	VacunasMes         int64
	FacturasPendientes int64
	IngresosMes        float64
}
