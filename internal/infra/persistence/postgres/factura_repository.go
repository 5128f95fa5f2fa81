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

// facturaRepository implements the domain FacturaRepository interface using GORM.
type facturaRepository struct {
	db *gorm.DB
}

// NewFacturaRepository is the constructor for facturaRepository.
func NewFacturaRepository(db *gorm.DB) repository.FacturaRepository {
	return &facturaRepository{db: db}
}

// FindByID retrieves a factura by ID, preloading the mascota (with owner) and
// the issuing vet. Soft-deleted rows are returned too.
func (repo *facturaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Factura, error) {
	var facturaM model.FacturaModel
	err := repo.db.WithContext(ctx).
		Preload("Mascota.Dueno").
		Preload("Vet").
		Where("id = ?", id).
		First(&facturaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFacturaNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find factura by id")
	}

	return toFacturaDomain(&facturaM), nil
}

// FindByCita retrieves the non-deleted factura issued for a cita.
func (repo *facturaRepository) FindByCita(ctx context.Context, idCita uuid.UUID) (*entity.Factura, error) {
	return repo.findBySource(ctx, "id_cita = ?", idCita)
}

// FindByVacuna retrieves the non-deleted factura issued for a vacuna.
func (repo *facturaRepository) FindByVacuna(ctx context.Context, idVacuna uuid.UUID) (*entity.Factura, error) {
	return repo.findBySource(ctx, "id_vacuna = ?", idVacuna)
}

func (repo *facturaRepository) findBySource(ctx context.Context, cond string, id uuid.UUID) (*entity.Factura, error) {
	var facturaM model.FacturaModel
	err := repo.db.WithContext(ctx).
		Where(cond, id).
		Where("is_deleted = ?", false).
		First(&facturaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFacturaNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find factura by source")
	}

	return toFacturaDomain(&facturaM), nil
}

// List returns a page of facturas plus the total count for the filter.
func (repo *facturaRepository) List(ctx context.Context, filter repository.FacturaFilter) ([]*entity.Factura, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.FacturaModel{})

	if !filter.IncludeDeleted {
		query = query.Where("facturas.is_deleted = ?", false)
	}
	if filter.IDMascota != nil {
		query = query.Where("facturas.id_mascota = ?", *filter.IDMascota)
	}
	if filter.Estado != nil {
		query = query.Where("facturas.estado = ?", filter.Estado.String())
	}
	if filter.Veterinario != "" {
		query = query.Where("facturas.veterinario = ?", filter.Veterinario)
	}
	if filter.Propietario != "" {
		query = query.
			Joins("JOIN mascotas ON mascotas.id = facturas.id_mascota").
			Where("mascotas.propietario = ?", filter.Propietario)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count facturas")
	}

	var facturaMs []*model.FacturaModel
	err := query.
		Preload("Mascota.Dueno").
		Preload("Vet").
		Order("facturas.fecha_factura DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&facturaMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list facturas")
	}

	facturas := make([]*entity.Factura, 0, len(facturaMs))
	for _, m := range facturaMs {
		facturas = append(facturas, toFacturaDomain(m))
	}

	return facturas, total, nil
}

// Create persists a new factura.
func (repo *facturaRepository) Create(ctx context.Context, factura *entity.Factura) error {
	facturaM := fromFacturaDomain(factura)

	if err := repo.db.WithContext(ctx).Create(facturaM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDuplicateError("El número de factura ya existe")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMascotaNotFound.WrapMessage("factura references a missing record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create factura")
	}

	factura.ID = facturaM.ID

	return nil
}

// Update modifies an existing factura.
func (repo *facturaRepository) Update(ctx context.Context, factura *entity.Factura) error {
	facturaM := fromFacturaDomain(factura)

	if err := repo.db.WithContext(ctx).Save(facturaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update factura")
	}

	return nil
}

// UpdateVeterinarioUsername rewrites the denormalized vet username across all
// facturas, including soft-deleted ones.
func (repo *facturaRepository) UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.FacturaModel{}).
		Where("veterinario = ?", oldUsername).
		Update("veterinario", newUsername).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade veterinario rename on facturas")
	}

	return nil
}
