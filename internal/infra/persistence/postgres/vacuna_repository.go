package postgres

import (
	"context"

	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vacunaRepository implements the domain VacunaRepository interface using GORM.
type vacunaRepository struct {
	db *gorm.DB
}

// NewVacunaRepository is the constructor for vacunaRepository.
func NewVacunaRepository(db *gorm.DB) repository.VacunaRepository {
	return &vacunaRepository{db: db}
}

// FindByID retrieves a vacuna by ID, preloading the mascota (with owner) and
// the applying vet. Soft-deleted rows are returned too.
func (repo *vacunaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vacuna, error) {
	var vacunaM model.VacunaModel
	err := repo.db.WithContext(ctx).
		Preload("Mascota.Dueno").
		Preload("Vet").
		Where("id = ?", id).
		First(&vacunaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrVacunaNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find vacuna by id")
	}

	return toVacunaDomain(&vacunaM), nil
}

// List returns a page of vacunas plus the total count for the filter.
func (repo *vacunaRepository) List(ctx context.Context, filter repository.VacunaFilter) ([]*entity.Vacuna, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.VacunaModel{})

	if !filter.IncludeDeleted {
		query = query.Where("vacunas.is_deleted = ?", false)
	}
	if filter.IDMascota != nil {
		query = query.Where("vacunas.id_mascota = ?", *filter.IDMascota)
	}
	if filter.TipoVacuna != nil {
		query = query.Where("vacunas.tipo_vacuna = ?", filter.TipoVacuna.String())
	}
	if filter.Veterinario != "" {
		query = query.Where("vacunas.veterinario = ?", filter.Veterinario)
	}
	if filter.Propietario != "" {
		query = query.
			Joins("JOIN mascotas ON mascotas.id = vacunas.id_mascota").
			Where("mascotas.propietario = ?", filter.Propietario)
	}
	if filter.ProximaDesde != nil {
		query = query.Where("vacunas.proxima_dosis IS NOT NULL AND vacunas.proxima_dosis >= ?", *filter.ProximaDesde)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count vacunas")
	}

	var vacunaMs []*model.VacunaModel
	err := query.
		Preload("Mascota.Dueno").
		Preload("Vet").
		Order("vacunas.fecha_aplicacion DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&vacunaMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list vacunas")
	}

	vacunas := make([]*entity.Vacuna, 0, len(vacunaMs))
	for _, m := range vacunaMs {
		vacunas = append(vacunas, toVacunaDomain(m))
	}

	return vacunas, total, nil
}

// Create persists a new vacuna.
func (repo *vacunaRepository) Create(ctx context.Context, vacuna *entity.Vacuna) error {
	vacunaM := fromVacunaDomain(vacuna)

	if err := repo.db.WithContext(ctx).Create(vacunaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMascotaNotFound.WrapMessage("mascota or veterinario does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vacuna")
	}

	vacuna.ID = vacunaM.ID

	return nil
}

// Update modifies an existing vacuna.
func (repo *vacunaRepository) Update(ctx context.Context, vacuna *entity.Vacuna) error {
	vacunaM := fromVacunaDomain(vacuna)

	if err := repo.db.WithContext(ctx).Save(vacunaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update vacuna")
	}

	return nil
}

// UpdateVeterinarioUsername rewrites the denormalized vet username across all
// vacunas, including soft-deleted ones.
func (repo *vacunaRepository) UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.VacunaModel{}).
		Where("veterinario = ?", oldUsername).
		Update("veterinario", newUsername).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade veterinario rename on vacunas")
	}

	return nil
}
