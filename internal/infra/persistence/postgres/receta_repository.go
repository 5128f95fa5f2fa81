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

// recetaRepository implements the domain RecetaRepository interface using GORM.
type recetaRepository struct {
	db *gorm.DB
}

// NewRecetaRepository is the constructor for recetaRepository.
func NewRecetaRepository(db *gorm.DB) repository.RecetaRepository {
	return &recetaRepository{db: db}
}

// FindByID retrieves a receta by ID with its medication lines and source
// cita. Soft-deleted rows are returned too.
func (repo *recetaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receta, error) {
	var recetaM model.RecetaModel
	err := repo.db.WithContext(ctx).
		Preload("Lineas").
		Preload("Cita.Mascota.Dueno").
		Preload("Cita.Vet").
		Where("id = ?", id).
		First(&recetaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecetaNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find receta by id")
	}

	return toRecetaDomain(&recetaM), nil
}

// FindByCita retrieves the non-deleted receta issued for a cita.
func (repo *recetaRepository) FindByCita(ctx context.Context, idCita uuid.UUID) (*entity.Receta, error) {
	var recetaM model.RecetaModel
	err := repo.db.WithContext(ctx).
		Preload("Lineas").
		Where("id_cita = ? AND is_deleted = ?", idCita, false).
		First(&recetaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecetaNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find receta by cita")
	}

	return toRecetaDomain(&recetaM), nil
}

// List returns a page of recetas plus the total count for the filter.
func (repo *recetaRepository) List(ctx context.Context, filter repository.RecetaFilter) ([]*entity.Receta, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RecetaModel{})

	if !filter.IncludeDeleted {
		query = query.Where("recetas.is_deleted = ?", false)
	}
	if filter.IDCita != nil {
		query = query.Where("recetas.id_cita = ?", *filter.IDCita)
	}
	if filter.Veterinario != "" {
		query = query.Where("recetas.veterinario = ?", filter.Veterinario)
	}
	if filter.IDMascota != nil || filter.Propietario != "" {
		query = query.Joins("JOIN citas ON citas.id = recetas.id_cita")
		if filter.IDMascota != nil {
			query = query.Where("citas.id_mascota = ?", *filter.IDMascota)
		}
		if filter.Propietario != "" {
			query = query.
				Joins("JOIN mascotas ON mascotas.id = citas.id_mascota").
				Where("mascotas.propietario = ?", filter.Propietario)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count recetas")
	}

	var recetaMs []*model.RecetaModel
	err := query.
		Preload("Lineas").
		Preload("Cita.Mascota.Dueno").
		Preload("Cita.Vet").
		Order("recetas.fecha_emision DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&recetaMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list recetas")
	}

	recetas := make([]*entity.Receta, 0, len(recetaMs))
	for _, m := range recetaMs {
		recetas = append(recetas, toRecetaDomain(m))
	}

	return recetas, total, nil
}

// Create persists a new receta with its medication lines.
func (repo *recetaRepository) Create(ctx context.Context, receta *entity.Receta) error {
	recetaM := fromRecetaDomain(receta)

	if err := repo.db.WithContext(ctx).Create(recetaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCitaNotFound.WrapMessage("receta references a missing cita")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create receta")
	}

	receta.ID = recetaM.ID

	return nil
}

// Update modifies the receta header fields only; lines travel through
// ReplaceLineas.
func (repo *recetaRepository) Update(ctx context.Context, receta *entity.Receta) error {
	recetaM := fromRecetaDomain(receta)
	recetaM.Lineas = nil

	err := repo.db.WithContext(ctx).
		Omit("Lineas").
		Save(recetaM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update receta")
	}

	return nil
}

// ReplaceLineas swaps the full set of medication lines of a receta.
// Callers run this inside a transaction together with Update.
func (repo *recetaRepository) ReplaceLineas(ctx context.Context, idReceta uuid.UUID, lineas []entity.RecetaLinea) error {
	err := repo.db.WithContext(ctx).
		Where("id_receta = ?", idReceta).
		Delete(&model.RecetaLineaModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete receta lineas")
	}

	if len(lineas) == 0 {
		return nil
	}

	lineaMs := make([]model.RecetaLineaModel, 0, len(lineas))
	for _, l := range lineas {
		lineaMs = append(lineaMs, model.RecetaLineaModel{
			IDReceta:    idReceta,
			Medicamento: l.Medicamento,
			Dosis:       l.Dosis,
			Frecuencia:  l.Frecuencia,
			Duracion:    l.Duracion,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&lineaMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert receta lineas")
	}

	return nil
}

// UpdateVeterinarioUsername rewrites the denormalized vet username across all
// recetas, including soft-deleted ones.
func (repo *recetaRepository) UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.RecetaModel{}).
		Where("veterinario = ?", oldUsername).
		Update("veterinario", newUsername).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade veterinario rename on recetas")
	}

	return nil
}
