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

// usuarioRepository implements the domain UsuarioRepository interface using GORM.
type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository is the constructor for usuarioRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUsuarioRepository(db *gorm.DB) repository.UsuarioRepository {
	return &usuarioRepository{db: db}
}

// FindByID retrieves a usuario by ID. Soft-deleted rows are returned too so
// the restore flow can reach them.
func (repo *usuarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	var usuarioM model.UsuarioModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&usuarioM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUsuarioNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find usuario by id")
	}

	return toUsuarioDomain(&usuarioM), nil
}

// FindByUsername retrieves a non-deleted usuario by username.
func (repo *usuarioRepository) FindByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	var usuarioM model.UsuarioModel
	err := repo.db.WithContext(ctx).
		Where("username = ? AND is_deleted = ?", username, false).
		First(&usuarioM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUsuarioNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find usuario by username")
	}

	return toUsuarioDomain(&usuarioM), nil
}

// List returns a page of usuarios plus the total count for the filter.
func (repo *usuarioRepository) List(ctx context.Context, filter repository.UsuarioFilter) ([]*entity.Usuario, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UsuarioModel{})

	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("username ILIKE ? OR nombre ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count usuarios")
	}

	var usuarioMs []*model.UsuarioModel
	err := query.
		Order("username ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&usuarioMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list usuarios")
	}

	usuarios := make([]*entity.Usuario, 0, len(usuarioMs))
	for _, m := range usuarioMs {
		usuarios = append(usuarios, toUsuarioDomain(m))
	}

	return usuarios, total, nil
}

// Create persists a new usuario.
func (repo *usuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	usuarioM := fromUsuarioDomain(usuario)

	if err := repo.db.WithContext(ctx).Create(usuarioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameDuplicado
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create usuario")
	}

	// Propagate the generated ID back to the entity.
	usuario.ID = usuarioM.ID

	return nil
}

// Update modifies an existing usuario.
func (repo *usuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	usuarioM := fromUsuarioDomain(usuario)

	if err := repo.db.WithContext(ctx).Save(usuarioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameDuplicado
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update usuario")
	}

	return nil
}
