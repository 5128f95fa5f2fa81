package entity

// TipoMascota enumerates the species the clinic attends.
type TipoMascota string

const (
	TipoMascotaPerro TipoMascota = "perro"
	TipoMascotaGato  TipoMascota = "gato"
	TipoMascotaAve   TipoMascota = "ave"
)

// String returns the string representation of the TipoMascota.
func (t TipoMascota) String() string {
	return string(t)
}

// IsValid checks if the TipoMascota is a valid value.
func (t TipoMascota) IsValid() bool {
	switch t {
	case TipoMascotaPerro, TipoMascotaGato, TipoMascotaAve:
		return true
	default:
		return false
	}
}

// EstadoCita enumerates the lifecycle states of an appointment.
type EstadoCita string

const (
	EstadoCitaPendiente  EstadoCita = "pendiente"
	EstadoCitaConfirmada EstadoCita = "confirmada"
	EstadoCitaCompletada EstadoCita = "completada"
	EstadoCitaCancelada  EstadoCita = "cancelada"
)

// String returns the string representation of the EstadoCita.
func (e EstadoCita) String() string {
	return string(e)
}

// IsValid checks if the EstadoCita is a valid value.
func (e EstadoCita) IsValid() bool {
	switch e {
	case EstadoCitaPendiente, EstadoCitaConfirmada, EstadoCitaCompletada, EstadoCitaCancelada:
		return true
	default:
		return false
	}
}

// TipoVacuna enumerates the vaccine catalogue.
type TipoVacuna string

const (
	TipoVacunaRabia        TipoVacuna = "rabia"
	TipoVacunaParvovirus   TipoVacuna = "parvovirus"
	TipoVacunaMoquillo     TipoVacuna = "moquillo"
	TipoVacunaLeucemia     TipoVacuna = "leucemia_felina"
	TipoVacunaTripleFelina TipoVacuna = "triple_felina"
	TipoVacunaNewcastle    TipoVacuna = "newcastle"
)

// String returns the string representation of the TipoVacuna.
func (t TipoVacuna) String() string {
	return string(t)
}

// IsValid checks if the TipoVacuna is a valid value.
func (t TipoVacuna) IsValid() bool {
	switch t {
	case TipoVacunaRabia, TipoVacunaParvovirus, TipoVacunaMoquillo,
		TipoVacunaLeucemia, TipoVacunaTripleFelina, TipoVacunaNewcastle:
		return true
	default:
		return false
	}
}

// EstadoFactura enumerates the payment states of an invoice.
type EstadoFactura string

const (
	EstadoFacturaPendiente EstadoFactura = "pendiente"
	EstadoFacturaPagada    EstadoFactura = "pagada"
	EstadoFacturaAnulada   EstadoFactura = "anulada"
)

// String returns the string representation of the EstadoFactura.
func (e EstadoFactura) String() string {
	return string(e)
}

// IsValid checks if the EstadoFactura is a valid value.
func (e EstadoFactura) IsValid() bool {
	switch e {
	case EstadoFacturaPendiente, EstadoFacturaPagada, EstadoFacturaAnulada:
		return true
	default:
		return false
	}
}

// TipoServicio enumerates the billable service categories.
type TipoServicio string

const (
	TipoServicioConsultaGeneral TipoServicio = "consulta_general"
	TipoServicioVacunacion      TipoServicio = "vacunacion"
	TipoServicioCirugia         TipoServicio = "cirugia"
	TipoServicioEmergencia      TipoServicio = "emergencia"
	TipoServicioControl         TipoServicio = "control"
	TipoServicioDesparasitacion TipoServicio = "desparasitacion"
)

// String returns the string representation of the TipoServicio.
func (t TipoServicio) String() string {
	return string(t)
}

// IsValid checks if the TipoServicio is a valid value.
func (t TipoServicio) IsValid() bool {
	switch t {
	case TipoServicioConsultaGeneral, TipoServicioVacunacion, TipoServicioCirugia,
		TipoServicioEmergencia, TipoServicioControl, TipoServicioDesparasitacion:
		return true
	default:
		return false
	}
}
