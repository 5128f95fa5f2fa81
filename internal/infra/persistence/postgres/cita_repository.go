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

// citaRepository implements the domain CitaRepository interface using GORM.
type citaRepository struct {
	db *gorm.DB
}

// NewCitaRepository is the constructor for citaRepository.
func NewCitaRepository(db *gorm.DB) repository.CitaRepository {
	return &citaRepository{db: db}
}

// FindByID retrieves a cita by ID, preloading the mascota (with owner) and
// the assigned vet. Soft-deleted rows are returned too.
func (repo *citaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cita, error) {
	var citaM model.CitaModel
	err := repo.db.WithContext(ctx).
		Preload("Mascota.Dueno").
		Preload("Vet").
		Where("id = ?", id).
		First(&citaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCitaNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cita by id")
	}

	return toCitaDomain(&citaM), nil
}

// List returns a page of citas plus the total count for the filter.
func (repo *citaRepository) List(ctx context.Context, filter repository.CitaFilter) ([]*entity.Cita, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CitaModel{})

	if !filter.IncludeDeleted {
		query = query.Where("citas.is_deleted = ?", false)
	}
	if filter.IDMascota != nil {
		query = query.Where("citas.id_mascota = ?", *filter.IDMascota)
	}
	if filter.Estado != nil {
		query = query.Where("citas.estado = ?", filter.Estado.String())
	}
	if filter.Veterinario != "" {
		query = query.Where("citas.veterinario = ?", filter.Veterinario)
	}
	if filter.Propietario != "" {
		query = query.
			Joins("JOIN mascotas ON mascotas.id = citas.id_mascota").
			Where("mascotas.propietario = ?", filter.Propietario)
	}
	if filter.Involucrado != "" {
		query = query.
			Joins("JOIN mascotas ON mascotas.id = citas.id_mascota").
			Where("citas.veterinario = ? OR mascotas.propietario = ?", filter.Involucrado, filter.Involucrado)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count citas")
	}

	var citaMs []*model.CitaModel
	err := query.
		Preload("Mascota.Dueno").
		Preload("Vet").
		Order("citas.fecha DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&citaMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list citas")
	}

	citas := make([]*entity.Cita, 0, len(citaMs))
	for _, m := range citaMs {
		citas = append(citas, toCitaDomain(m))
	}

	return citas, total, nil
}

// Create persists a new cita.
func (repo *citaRepository) Create(ctx context.Context, cita *entity.Cita) error {
	citaM := fromCitaDomain(cita)

	if err := repo.db.WithContext(ctx).Create(citaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMascotaNotFound.WrapMessage("mascota or veterinario does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cita")
	}

	cita.ID = citaM.ID

	return nil
}

// Update modifies an existing cita.
func (repo *citaRepository) Update(ctx context.Context, cita *entity.Cita) error {
	citaM := fromCitaDomain(cita)

	if err := repo.db.WithContext(ctx).Save(citaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cita")
	}

	return nil
}

// UpdateVeterinarioUsername rewrites the denormalized vet username across all
// citas, including soft-deleted ones.
func (repo *citaRepository) UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CitaModel{}).
		Where("veterinario = ?", oldUsername).
		Update("veterinario", newUsername).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade veterinario rename on citas")
	}

	return nil
}
