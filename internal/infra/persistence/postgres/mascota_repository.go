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

// mascotaRepository implements the domain MascotaRepository interface using GORM.
type mascotaRepository struct {
	db *gorm.DB
}

// NewMascotaRepository is the constructor for mascotaRepository.
func NewMascotaRepository(db *gorm.DB) repository.MascotaRepository {
	return &mascotaRepository{db: db}
}

// FindByID retrieves a mascota by ID, preloading the owner account.
// Soft-deleted rows are returned too so the restore flow can reach them.
func (repo *mascotaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mascota, error) {
	var mascotaM model.MascotaModel
	err := repo.db.WithContext(ctx).
		Preload("Dueno").
		Where("id = ?", id).
		First(&mascotaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMascotaNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find mascota by id")
	}

	return toMascotaDomain(&mascotaM), nil
}

// List returns a page of mascotas plus the total count for the filter.
func (repo *mascotaRepository) List(ctx context.Context, filter repository.MascotaFilter) ([]*entity.Mascota, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MascotaModel{})

	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.Tipo != nil {
		query = query.Where("tipo = ?", filter.Tipo.String())
	}
	if filter.Propietario != "" {
		query = query.Where("propietario = ?", filter.Propietario)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("nombre ILIKE ? OR raza ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count mascotas")
	}

	var mascotaMs []*model.MascotaModel
	err := query.
		Preload("Dueno").
		Order("nombre ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&mascotaMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list mascotas")
	}

	mascotas := make([]*entity.Mascota, 0, len(mascotaMs))
	for _, m := range mascotaMs {
		mascotas = append(mascotas, toMascotaDomain(m))
	}

	return mascotas, total, nil
}

// Create persists a new mascota.
func (repo *mascotaRepository) Create(ctx context.Context, mascota *entity.Mascota) error {
	mascotaM := fromMascotaDomain(mascota)

	if err := repo.db.WithContext(ctx).Create(mascotaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUsuarioNotFound.WrapMessage("propietario does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mascota")
	}

	mascota.ID = mascotaM.ID

	return nil
}

// Update modifies an existing mascota.
func (repo *mascotaRepository) Update(ctx context.Context, mascota *entity.Mascota) error {
	mascotaM := fromMascotaDomain(mascota)

	if err := repo.db.WithContext(ctx).Save(mascotaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update mascota")
	}

	return nil
}

// UpdatePropietarioUsername rewrites the denormalized owner username across
// all mascotas, including soft-deleted ones, so a restored pet still points
// to the renamed account.
func (repo *mascotaRepository) UpdatePropietarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.MascotaModel{}).
		Where("propietario = ?", oldUsername).
		Update("propietario", newUsername).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade propietario rename")
	}

	return nil
}
