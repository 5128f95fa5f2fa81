package postgres

import (
	"vetclinic/internal/domain/entity"
	"vetclinic/internal/infra/persistence/model"
)

// Mapper helpers shared by every repository. They convert between domain
// entities and GORM persistence models.

func toAuditDomain(data model.AuditFields) entity.Audit {
	return entity.Audit{
		IDUsuarioCreacion:      data.IDUsuarioCreacion,
		IDUsuarioActualizacion: data.IDUsuarioActualizacion,
		FechaCreacion:          data.FechaCreacion,
		FechaActualizacion:     data.FechaActualizacion,
		IsDeleted:              data.IsDeleted,
		DeletedAt:              data.DeletedAt,
		DeletedBy:              data.DeletedBy,
	}
}

func fromAuditDomain(data entity.Audit) model.AuditFields {
	return model.AuditFields{
		IDUsuarioCreacion:      data.IDUsuarioCreacion,
		IDUsuarioActualizacion: data.IDUsuarioActualizacion,
		FechaCreacion:          data.FechaCreacion,
		FechaActualizacion:     data.FechaActualizacion,
		IsDeleted:              data.IsDeleted,
		DeletedAt:              data.DeletedAt,
		DeletedBy:              data.DeletedBy,
	}
}

func toUsuarioDomain(data *model.UsuarioModel) *entity.Usuario {
	if data == nil {
		return nil
	}

	return &entity.Usuario{
		ID:           data.ID,
		Username:     data.Username,
		Nombre:       data.Nombre,
		Edad:         data.Edad,
		Telefono:     data.Telefono,
		Role:         entity.Role(data.Role),
		PasswordSalt: data.PasswordSalt,
		PasswordHash: data.PasswordHash,
		Audit:        toAuditDomain(data.AuditFields),
	}
}

func fromUsuarioDomain(data *entity.Usuario) *model.UsuarioModel {
	if data == nil {
		return nil
	}

	return &model.UsuarioModel{
		ID:           data.ID,
		Username:     data.Username,
		Nombre:       data.Nombre,
		Edad:         data.Edad,
		Telefono:     data.Telefono,
		Role:         data.Role.String(),
		PasswordSalt: data.PasswordSalt,
		PasswordHash: data.PasswordHash,
		AuditFields:  fromAuditDomain(data.Audit),
	}
}

func toMascotaDomain(data *model.MascotaModel) *entity.Mascota {
	if data == nil {
		return nil
	}

	return &entity.Mascota{
		ID:          data.ID,
		Nombre:      data.Nombre,
		Tipo:        entity.TipoMascota(data.Tipo),
		Raza:        data.Raza,
		Edad:        data.Edad,
		Peso:        data.Peso,
		Propietario: data.Propietario,
		Dueno:       toUsuarioDomain(data.Dueno),
		Audit:       toAuditDomain(data.AuditFields),
	}
}

func fromMascotaDomain(data *entity.Mascota) *model.MascotaModel {
	if data == nil {
		return nil
	}

	return &model.MascotaModel{
		ID:          data.ID,
		Nombre:      data.Nombre,
		Tipo:        data.Tipo.String(),
		Raza:        data.Raza,
		Edad:        data.Edad,
		Peso:        data.Peso,
		Propietario: data.Propietario,
		AuditFields: fromAuditDomain(data.Audit),
	}
}

func toCitaDomain(data *model.CitaModel) *entity.Cita {
	if data == nil {
		return nil
	}

	return &entity.Cita{
		ID:          data.ID,
		IDMascota:   data.IDMascota,
		Fecha:       data.Fecha,
		Motivo:      data.Motivo,
		Veterinario: data.Veterinario,
		Estado:      entity.EstadoCita(data.Estado),
		Diagnostico: data.Diagnostico,
		Tratamiento: data.Tratamiento,
		Mascota:     toMascotaDomain(data.Mascota),
		Vet:         toUsuarioDomain(data.Vet),
		Audit:       toAuditDomain(data.AuditFields),
	}
}

func fromCitaDomain(data *entity.Cita) *model.CitaModel {
	if data == nil {
		return nil
	}

	return &model.CitaModel{
		ID:          data.ID,
		IDMascota:   data.IDMascota,
		Fecha:       data.Fecha,
		Motivo:      data.Motivo,
		Veterinario: data.Veterinario,
		Estado:      data.Estado.String(),
		Diagnostico: data.Diagnostico,
		Tratamiento: data.Tratamiento,
		AuditFields: fromAuditDomain(data.Audit),
	}
}

func toVacunaDomain(data *model.VacunaModel) *entity.Vacuna {
	if data == nil {
		return nil
	}

	return &entity.Vacuna{
		ID:              data.ID,
		IDMascota:       data.IDMascota,
		TipoVacuna:      entity.TipoVacuna(data.TipoVacuna),
		FechaAplicacion: data.FechaAplicacion,
		Veterinario:     data.Veterinario,
		LoteVacuna:      data.LoteVacuna,
		ProximaDosis:    data.ProximaDosis,
		Mascota:         toMascotaDomain(data.Mascota),
		Vet:             toUsuarioDomain(data.Vet),
		Audit:           toAuditDomain(data.AuditFields),
	}
}

func fromVacunaDomain(data *entity.Vacuna) *model.VacunaModel {
	if data == nil {
		return nil
	}

	return &model.VacunaModel{
		ID:              data.ID,
		IDMascota:       data.IDMascota,
		TipoVacuna:      data.TipoVacuna.String(),
		FechaAplicacion: data.FechaAplicacion,
		Veterinario:     data.Veterinario,
		LoteVacuna:      data.LoteVacuna,
		ProximaDosis:    data.ProximaDosis,
		AuditFields:     fromAuditDomain(data.Audit),
	}
}

func toFacturaDomain(data *model.FacturaModel) *entity.Factura {
	if data == nil {
		return nil
	}

	return &entity.Factura{
		ID:            data.ID,
		NumeroFactura: data.NumeroFactura,
		IDCita:        data.IDCita,
		IDVacuna:      data.IDVacuna,
		IDMascota:     data.IDMascota,
		FechaFactura:  data.FechaFactura,
		TipoServicio:  entity.TipoServicio(data.TipoServicio),
		Descripcion:   data.Descripcion,
		Veterinario:   data.Veterinario,
		ValorServicio: data.ValorServicio,
		IVA:           data.IVA,
		Descuento:     data.Descuento,
		Total:         data.Total,
		Estado:        entity.EstadoFactura(data.Estado),
		Mascota:       toMascotaDomain(data.Mascota),
		Vet:           toUsuarioDomain(data.Vet),
		Audit:         toAuditDomain(data.AuditFields),
	}
}

func fromFacturaDomain(data *entity.Factura) *model.FacturaModel {
	if data == nil {
		return nil
	}

	return &model.FacturaModel{
		ID:            data.ID,
		NumeroFactura: data.NumeroFactura,
		IDCita:        data.IDCita,
		IDVacuna:      data.IDVacuna,
		IDMascota:     data.IDMascota,
		FechaFactura:  data.FechaFactura,
		TipoServicio:  data.TipoServicio.String(),
		Descripcion:   data.Descripcion,
		Veterinario:   data.Veterinario,
		ValorServicio: data.ValorServicio,
		IVA:           data.IVA,
		Descuento:     data.Descuento,
		Total:         data.Total,
		Estado:        data.Estado.String(),
		AuditFields:   fromAuditDomain(data.Audit),
	}
}

func toRecetaDomain(data *model.RecetaModel) *entity.Receta {
	if data == nil {
		return nil
	}

	lineas := make([]entity.RecetaLinea, 0, len(data.Lineas))
	for _, l := range data.Lineas {
		lineas = append(lineas, entity.RecetaLinea{
			ID:          l.ID,
			IDReceta:    l.IDReceta,
			Medicamento: l.Medicamento,
			Dosis:       l.Dosis,
			Frecuencia:  l.Frecuencia,
			Duracion:    l.Duracion,
		})
	}

	return &entity.Receta{
		ID:           data.ID,
		IDCita:       data.IDCita,
		FechaEmision: data.FechaEmision,
		Veterinario:  data.Veterinario,
		Indicaciones: data.Indicaciones,
		Lineas:       lineas,
		Cita:         toCitaDomain(data.Cita),
		Audit:        toAuditDomain(data.AuditFields),
	}
}

func fromRecetaDomain(data *entity.Receta) *model.RecetaModel {
	if data == nil {
		return nil
	}

	lineas := make([]model.RecetaLineaModel, 0, len(data.Lineas))
	for _, l := range data.Lineas {
		lineas = append(lineas, model.RecetaLineaModel{
			ID:          l.ID,
			IDReceta:    l.IDReceta,
			Medicamento: l.Medicamento,
			Dosis:       l.Dosis,
			Frecuencia:  l.Frecuencia,
			Duracion:    l.Duracion,
		})
	}

	return &model.RecetaModel{
		ID:           data.ID,
		IDCita:       data.IDCita,
		FechaEmision: data.FechaEmision,
		Veterinario:  data.Veterinario,
		Indicaciones: data.Indicaciones,
		Lineas:       lineas,
		AuditFields:  fromAuditDomain(data.Audit),
	}
}
