package handler

import (
	"time"

	"vetclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// Wire DTOs. Entities never reach the wire directly: credentials stay out of
// responses and the JSON vocabulary stays Spanish and stable even if the
// domain structs move.

// UsuarioResponse is the wire form of an account.
type UsuarioResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Nombre    string     `json:"nombre"`
	Edad      int        `json:"edad"`
	Telefono  string     `json:"telefono"`
	Role      string     `json:"role"`
	IsDeleted bool       `json:"is_deleted"`
	CreatedAt time.Time  `json:"fecha_creacion"`
	UpdatedAt time.Time  `json:"fecha_actualizacion"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func newUsuarioResponse(u *entity.Usuario) *UsuarioResponse {
	if u == nil {
		return nil
	}

	return &UsuarioResponse{
		ID:        u.ID,
		Username:  u.Username,
		Nombre:    u.Nombre,
		Edad:      u.Edad,
		Telefono:  u.Telefono,
		Role:      u.Role.String(),
		IsDeleted: u.IsDeleted,
		CreatedAt: u.FechaCreacion,
		UpdatedAt: u.FechaActualizacion,
		DeletedAt: u.DeletedAt,
	}
}

func newUsuarioResponses(usuarios []*entity.Usuario) []*UsuarioResponse {
	out := make([]*UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, newUsuarioResponse(u))
	}

	return out
}

// LoginResponse is the wire form of a successful login.
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	Usuario     *UsuarioResponse `json:"usuario"`
}

// MascotaResponse is the wire form of a patient.
type MascotaResponse struct {
	ID          uuid.UUID        `json:"id"`
	Nombre      string           `json:"nombre"`
	Tipo        string           `json:"tipo"`
	Raza        string           `json:"raza"`
	Edad        int              `json:"edad"`
	Peso        float64          `json:"peso"`
	Propietario string           `json:"propietario"`
	Dueno       *UsuarioResponse `json:"dueno,omitempty"`
	IsDeleted   bool             `json:"is_deleted"`
	CreatedAt   time.Time        `json:"fecha_creacion"`
	UpdatedAt   time.Time        `json:"fecha_actualizacion"`
}

func newMascotaResponse(m *entity.Mascota) *MascotaResponse {
	if m == nil {
		return nil
	}

	return &MascotaResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Tipo:        m.Tipo.String(),
		Raza:        m.Raza,
		Edad:        m.Edad,
		Peso:        m.Peso,
		Propietario: m.Propietario,
		Dueno:       newUsuarioResponse(m.Dueno),
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.FechaCreacion,
		UpdatedAt:   m.FechaActualizacion,
	}
}

func newMascotaResponses(mascotas []*entity.Mascota) []*MascotaResponse {
	out := make([]*MascotaResponse, 0, len(mascotas))
	for _, m := range mascotas {
		out = append(out, newMascotaResponse(m))
	}

	return out
}

// CitaResponse is the wire form of an appointment.
type CitaResponse struct {
	ID          uuid.UUID        `json:"id"`
	IDMascota   uuid.UUID        `json:"id_mascota"`
	Fecha       time.Time        `json:"fecha"`
	Motivo      string           `json:"motivo"`
	Veterinario string           `json:"veterinario"`
	Estado      string           `json:"estado"`
	Diagnostico *string          `json:"diagnostico,omitempty"`
	Tratamiento *string          `json:"tratamiento,omitempty"`
	Mascota     *MascotaResponse `json:"mascota,omitempty"`
	IsDeleted   bool             `json:"is_deleted"`
	CreatedAt   time.Time        `json:"fecha_creacion"`
	UpdatedAt   time.Time        `json:"fecha_actualizacion"`
}

func newCitaResponse(cita *entity.Cita) *CitaResponse {
	if cita == nil {
		return nil
	}

	return &CitaResponse{
		ID:          cita.ID,
		IDMascota:   cita.IDMascota,
		Fecha:       cita.Fecha,
		Motivo:      cita.Motivo,
		Veterinario: cita.Veterinario,
		Estado:      cita.Estado.String(),
		Diagnostico: cita.Diagnostico,
		Tratamiento: cita.Tratamiento,
		Mascota:     newMascotaResponse(cita.Mascota),
		IsDeleted:   cita.IsDeleted,
		CreatedAt:   cita.FechaCreacion,
		UpdatedAt:   cita.FechaActualizacion,
	}
}

func newCitaResponses(citas []*entity.Cita) []*CitaResponse {
	out := make([]*CitaResponse, 0, len(citas))
	for _, cita := range citas {
		out = append(out, newCitaResponse(cita))
	}

	return out
}

// VacunaResponse is the wire form of a vaccination record.
type VacunaResponse struct {
	ID              uuid.UUID        `json:"id"`
	IDMascota       uuid.UUID        `json:"id_mascota"`
	TipoVacuna      string           `json:"tipo_vacuna"`
	FechaAplicacion time.Time        `json:"fecha_aplicacion"`
	Veterinario     string           `json:"veterinario"`
	LoteVacuna      string           `json:"lote_vacuna"`
	ProximaDosis    *time.Time       `json:"proxima_dosis,omitempty"`
	Mascota         *MascotaResponse `json:"mascota,omitempty"`
	IsDeleted       bool             `json:"is_deleted"`
	CreatedAt       time.Time        `json:"fecha_creacion"`
	UpdatedAt       time.Time        `json:"fecha_actualizacion"`
}

func newVacunaResponse(v *entity.Vacuna) *VacunaResponse {
	if v == nil {
		return nil
	}

	return &VacunaResponse{
		ID:              v.ID,
		IDMascota:       v.IDMascota,
		TipoVacuna:      v.TipoVacuna.String(),
		FechaAplicacion: v.FechaAplicacion,
		Veterinario:     v.Veterinario,
		LoteVacuna:      v.LoteVacuna,
		ProximaDosis:    v.ProximaDosis,
		Mascota:         newMascotaResponse(v.Mascota),
		IsDeleted:       v.IsDeleted,
		CreatedAt:       v.FechaCreacion,
		UpdatedAt:       v.FechaActualizacion,
	}
}

func newVacunaResponses(vacunas []*entity.Vacuna) []*VacunaResponse {
	out := make([]*VacunaResponse, 0, len(vacunas))
	for _, v := range vacunas {
		out = append(out, newVacunaResponse(v))
	}

	return out
}

// FacturaResponse is the wire form of an invoice.
type FacturaResponse struct {
	ID            uuid.UUID        `json:"id"`
	NumeroFactura string           `json:"numero_factura"`
	IDCita        *uuid.UUID       `json:"id_cita,omitempty"`
	IDVacuna      *uuid.UUID       `json:"id_vacuna,omitempty"`
	IDMascota     uuid.UUID        `json:"id_mascota"`
	FechaFactura  time.Time        `json:"fecha_factura"`
	TipoServicio  string           `json:"tipo_servicio"`
	Descripcion   string           `json:"descripcion"`
	Veterinario   string           `json:"veterinario"`
	ValorServicio float64          `json:"valor_servicio"`
	IVA           float64          `json:"iva"`
	Descuento     float64          `json:"descuento"`
	Total         float64          `json:"total"`
	Estado        string           `json:"estado"`
	Mascota       *MascotaResponse `json:"mascota,omitempty"`
	IsDeleted     bool             `json:"is_deleted"`
	CreatedAt     time.Time        `json:"fecha_creacion"`
	UpdatedAt     time.Time        `json:"fecha_actualizacion"`
}

func newFacturaResponse(f *entity.Factura) *FacturaResponse {
	if f == nil {
		return nil
	}

	return &FacturaResponse{
		ID:            f.ID,
		NumeroFactura: f.NumeroFactura,
		IDCita:        f.IDCita,
		IDVacuna:      f.IDVacuna,
		IDMascota:     f.IDMascota,
		FechaFactura:  f.FechaFactura,
		TipoServicio:  f.TipoServicio.String(),
		Descripcion:   f.Descripcion,
		Veterinario:   f.Veterinario,
		ValorServicio: f.ValorServicio,
		IVA:           f.IVA,
		Descuento:     f.Descuento,
		Total:         f.Total,
		Estado:        f.Estado.String(),
		Mascota:       newMascotaResponse(f.Mascota),
		IsDeleted:     f.IsDeleted,
		CreatedAt:     f.FechaCreacion,
		UpdatedAt:     f.FechaActualizacion,
	}
}

func newFacturaResponses(facturas []*entity.Factura) []*FacturaResponse {
	out := make([]*FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, newFacturaResponse(f))
	}

	return out
}

// RecetaLineaResponse is one medication line of a prescription.
type RecetaLineaResponse struct {
	ID          uuid.UUID `json:"id"`
	Medicamento string    `json:"medicamento"`
	Dosis       string    `json:"dosis"`
	Frecuencia  string    `json:"frecuencia"`
	Duracion    string    `json:"duracion"`
}

// RecetaResponse is the wire form of a prescription.
type RecetaResponse struct {
	ID           uuid.UUID             `json:"id"`
	IDCita       uuid.UUID             `json:"id_cita"`
	FechaEmision time.Time             `json:"fecha_emision"`
	Veterinario  string                `json:"veterinario"`
	Indicaciones string                `json:"indicaciones"`
	Lineas       []RecetaLineaResponse `json:"lineas"`
	Cita         *CitaResponse         `json:"cita,omitempty"`
	IsDeleted    bool                  `json:"is_deleted"`
	CreatedAt    time.Time             `json:"fecha_creacion"`
	UpdatedAt    time.Time             `json:"fecha_actualizacion"`
}

func newRecetaResponse(r *entity.Receta) *RecetaResponse {
	if r == nil {
		return nil
	}

	lineas := make([]RecetaLineaResponse, 0, len(r.Lineas))
	for _, l := range r.Lineas {
		lineas = append(lineas, RecetaLineaResponse{
			ID:          l.ID,
			Medicamento: l.Medicamento,
			Dosis:       l.Dosis,
			Frecuencia:  l.Frecuencia,
			Duracion:    l.Duracion,
		})
	}

	return &RecetaResponse{
		ID:           r.ID,
		IDCita:       r.IDCita,
		FechaEmision: r.FechaEmision,
		Veterinario:  r.Veterinario,
		Indicaciones: r.Indicaciones,
		Lineas:       lineas,
		Cita:         newCitaResponse(r.Cita),
		IsDeleted:    r.IsDeleted,
		CreatedAt:    r.FechaCreacion,
		UpdatedAt:    r.FechaActualizacion,
	}
}

func newRecetaResponses(recetas []*entity.Receta) []*RecetaResponse {
	out := make([]*RecetaResponse, 0, len(recetas))
	for _, r := range recetas {
		out = append(out, newRecetaResponse(r))
	}

	return out
}
