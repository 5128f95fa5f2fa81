package postgres

import (
	"context"
	"time"

	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// dashboardRepository implements the aggregate queries behind the role-scoped
// dashboard. Every query excludes soft-deleted rows.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository is the constructor for dashboardRepository.
func NewDashboardRepository(db *gorm.DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (repo *dashboardRepository) CountMascotas(ctx context.Context, propietario string) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.MascotaModel{}).
		Where("is_deleted = ?", false)
	if propietario != "" {
		query = query.Where("propietario = ?", propietario)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count mascotas")
	}

	return count, nil
}

func (repo *dashboardRepository) CountMascotasAtendidasPor(ctx context.Context, veterinario string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CitaModel{}).
		Where("veterinario = ? AND is_deleted = ?", veterinario, false).
		Distinct("id_mascota").
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count mascotas atendidas")
	}

	return count, nil
}

func (repo *dashboardRepository) CountUsuarios(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UsuarioModel{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count usuarios")
	}

	return count, nil
}

func (repo *dashboardRepository) CountCitas(ctx context.Context, estado entity.EstadoCita, propietario, veterinario string) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CitaModel{}).
		Where("citas.estado = ? AND citas.is_deleted = ?", estado.String(), false)
	if veterinario != "" {
		query = query.Where("citas.veterinario = ?", veterinario)
	}
	if propietario != "" {
		query = query.
			Joins("JOIN mascotas ON mascotas.id = citas.id_mascota").
			Where("mascotas.propietario = ?", propietario)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count citas")
	}

	return count, nil
}

func (repo *dashboardRepository) CountCitasEntre(ctx context.Context, desde, hasta time.Time) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CitaModel{}).
		Where("fecha >= ? AND fecha < ? AND is_deleted = ?", desde, hasta, false).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count citas in range")
	}

	return count, nil
}

func (repo *dashboardRepository) CountVacunas(ctx context.Context, propietario, veterinario string) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.VacunaModel{}).
		Where("vacunas.is_deleted = ?", false)
	if veterinario != "" {
		query = query.Where("vacunas.veterinario = ?", veterinario)
	}
	if propietario != "" {
		query = query.
			Joins("JOIN mascotas ON mascotas.id = vacunas.id_mascota").
			Where("mascotas.propietario = ?", propietario)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count vacunas")
	}

	return count, nil
}

func (repo *dashboardRepository) CountVacunasEntre(ctx context.Context, desde, hasta time.Time) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.VacunaModel{}).
		Where("fecha_aplicacion >= ? AND fecha_aplicacion < ? AND is_deleted = ?", desde, hasta, false).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count vacunas in range")
	}

	return count, nil
}

func (repo *dashboardRepository) CountFacturas(ctx context.Context, estado entity.EstadoFactura, propietario, veterinario string) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.FacturaModel{}).
		Where("facturas.estado = ? AND facturas.is_deleted = ?", estado.String(), false)
	if veterinario != "" {
		query = query.Where("facturas.veterinario = ?", veterinario)
	}
	if propietario != "" {
		query = query.
			Joins("JOIN mascotas ON mascotas.id = facturas.id_mascota").
			Where("mascotas.propietario = ?", propietario)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count facturas")
	}

	return count, nil
}

func (repo *dashboardRepository) SumIngresosEntre(ctx context.Context, desde, hasta time.Time) (float64, error) {
	var total *float64
	err := repo.db.WithContext(ctx).
		Model(&model.FacturaModel{}).
		Select("SUM(total)").
		Where("estado = ? AND is_deleted = ?", entity.EstadoFacturaPagada.String(), false).
		Where("fecha_factura >= ? AND fecha_factura < ?", desde, hasta).
		Scan(&total).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to sum ingresos")
	}

	// SUM over an empty set yields NULL; the dashboard reports 0.0 instead.
	if total == nil {
		return 0, nil
	}

	return *total, nil
}
