// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"
	"time"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock wired to the test lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// FakeTransactionManager runs the transactional function against a fixed
// factory without opening a real transaction, so errors from the function
// propagate exactly as they would after a rollback.
type FakeTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.Factory)
}

// StubRepositoryFactory hands out the configured repositories, standing in
// for a transaction-bound factory.
type StubRepositoryFactory struct {
	Usuarios   repository.UsuarioRepository
	Mascotas   repository.MascotaRepository
	Citas      repository.CitaRepository
	Vacunas    repository.VacunaRepository
	Facturas   repository.FacturaRepository
	Recetas    repository.RecetaRepository
	Dashboards repository.DashboardRepository
}

func (f *StubRepositoryFactory) UsuarioRepo() repository.UsuarioRepository     { return f.Usuarios }
func (f *StubRepositoryFactory) MascotaRepo() repository.MascotaRepository     { return f.Mascotas }
func (f *StubRepositoryFactory) CitaRepo() repository.CitaRepository           { return f.Citas }
func (f *StubRepositoryFactory) VacunaRepo() repository.VacunaRepository       { return f.Vacunas }
func (f *StubRepositoryFactory) FacturaRepo() repository.FacturaRepository     { return f.Facturas }
func (f *StubRepositoryFactory) RecetaRepo() repository.RecetaRepository       { return f.Recetas }
func (f *StubRepositoryFactory) DashboardRepo() repository.DashboardRepository { return f.Dashboards }

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock wired to the test lifecycle.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UsuarioRepo() repository.UsuarioRepository {
	return m.Called().Get(0).(repository.UsuarioRepository)
}

func (m *MockRepositoryFactory) MascotaRepo() repository.MascotaRepository {
	return m.Called().Get(0).(repository.MascotaRepository)
}

func (m *MockRepositoryFactory) CitaRepo() repository.CitaRepository {
	return m.Called().Get(0).(repository.CitaRepository)
}

func (m *MockRepositoryFactory) VacunaRepo() repository.VacunaRepository {
	return m.Called().Get(0).(repository.VacunaRepository)
}

func (m *MockRepositoryFactory) FacturaRepo() repository.FacturaRepository {
	return m.Called().Get(0).(repository.FacturaRepository)
}

func (m *MockRepositoryFactory) RecetaRepo() repository.RecetaRepository {
	return m.Called().Get(0).(repository.RecetaRepository)
}

func (m *MockRepositoryFactory) DashboardRepo() repository.DashboardRepository {
	return m.Called().Get(0).(repository.DashboardRepository)
}

// MockUsuarioRepository mocks repository.UsuarioRepository.
type MockUsuarioRepository struct {
	mock.Mock
}

// NewMockUsuarioRepository creates a mock wired to the test lifecycle.
func NewMockUsuarioRepository(t *testing.T) *MockUsuarioRepository {
	m := &MockUsuarioRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) List(ctx context.Context, filter repository.UsuarioFilter) ([]*entity.Usuario, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Usuario), args.Get(1).(int64), args.Error(2)
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	return m.Called(ctx, usuario).Error(0)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	return m.Called(ctx, usuario).Error(0)
}

// MockMascotaRepository mocks repository.MascotaRepository.
type MockMascotaRepository struct {
	mock.Mock
}

// NewMockMascotaRepository creates a mock wired to the test lifecycle.
func NewMockMascotaRepository(t *testing.T) *MockMascotaRepository {
	m := &MockMascotaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMascotaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mascota, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Mascota), args.Error(1)
}

func (m *MockMascotaRepository) List(ctx context.Context, filter repository.MascotaFilter) ([]*entity.Mascota, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Mascota), args.Get(1).(int64), args.Error(2)
}

func (m *MockMascotaRepository) Create(ctx context.Context, mascota *entity.Mascota) error {
	return m.Called(ctx, mascota).Error(0)
}

func (m *MockMascotaRepository) Update(ctx context.Context, mascota *entity.Mascota) error {
	return m.Called(ctx, mascota).Error(0)
}

func (m *MockMascotaRepository) UpdatePropietarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	return m.Called(ctx, oldUsername, newUsername).Error(0)
}

// MockCitaRepository mocks repository.CitaRepository.
type MockCitaRepository struct {
	mock.Mock
}

// NewMockCitaRepository creates a mock wired to the test lifecycle.
func NewMockCitaRepository(t *testing.T) *MockCitaRepository {
	m := &MockCitaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCitaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cita, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Cita), args.Error(1)
}

func (m *MockCitaRepository) List(ctx context.Context, filter repository.CitaFilter) ([]*entity.Cita, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Cita), args.Get(1).(int64), args.Error(2)
}

func (m *MockCitaRepository) Create(ctx context.Context, cita *entity.Cita) error {
	return m.Called(ctx, cita).Error(0)
}

func (m *MockCitaRepository) Update(ctx context.Context, cita *entity.Cita) error {
	return m.Called(ctx, cita).Error(0)
}

func (m *MockCitaRepository) UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	return m.Called(ctx, oldUsername, newUsername).Error(0)
}

// MockVacunaRepository mocks repository.VacunaRepository.
type MockVacunaRepository struct {
	mock.Mock
}

// NewMockVacunaRepository creates a mock wired to the test lifecycle.
func NewMockVacunaRepository(t *testing.T) *MockVacunaRepository {
	m := &MockVacunaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVacunaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vacuna, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Vacuna), args.Error(1)
}

func (m *MockVacunaRepository) List(ctx context.Context, filter repository.VacunaFilter) ([]*entity.Vacuna, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Vacuna), args.Get(1).(int64), args.Error(2)
}

func (m *MockVacunaRepository) Create(ctx context.Context, vacuna *entity.Vacuna) error {
	return m.Called(ctx, vacuna).Error(0)
}

func (m *MockVacunaRepository) Update(ctx context.Context, vacuna *entity.Vacuna) error {
	return m.Called(ctx, vacuna).Error(0)
}

func (m *MockVacunaRepository) UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	return m.Called(ctx, oldUsername, newUsername).Error(0)
}

// MockFacturaRepository mocks repository.FacturaRepository.
type MockFacturaRepository struct {
	mock.Mock
}

// NewMockFacturaRepository creates a mock wired to the test lifecycle.
func NewMockFacturaRepository(t *testing.T) *MockFacturaRepository {
	m := &MockFacturaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFacturaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Factura, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Factura), args.Error(1)
}

func (m *MockFacturaRepository) FindByCita(ctx context.Context, idCita uuid.UUID) (*entity.Factura, error) {
	args := m.Called(ctx, idCita)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Factura), args.Error(1)
}

func (m *MockFacturaRepository) FindByVacuna(ctx context.Context, idVacuna uuid.UUID) (*entity.Factura, error) {
	args := m.Called(ctx, idVacuna)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Factura), args.Error(1)
}

func (m *MockFacturaRepository) List(ctx context.Context, filter repository.FacturaFilter) ([]*entity.Factura, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Factura), args.Get(1).(int64), args.Error(2)
}

func (m *MockFacturaRepository) Create(ctx context.Context, factura *entity.Factura) error {
	return m.Called(ctx, factura).Error(0)
}

func (m *MockFacturaRepository) Update(ctx context.Context, factura *entity.Factura) error {
	return m.Called(ctx, factura).Error(0)
}

func (m *MockFacturaRepository) UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	return m.Called(ctx, oldUsername, newUsername).Error(0)
}

// MockRecetaRepository mocks repository.RecetaRepository.
type MockRecetaRepository struct {
	mock.Mock
}

// NewMockRecetaRepository creates a mock wired to the test lifecycle.
func NewMockRecetaRepository(t *testing.T) *MockRecetaRepository {
	m := &MockRecetaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRecetaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Receta), args.Error(1)
}

func (m *MockRecetaRepository) FindByCita(ctx context.Context, idCita uuid.UUID) (*entity.Receta, error) {
	args := m.Called(ctx, idCita)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Receta), args.Error(1)
}

func (m *MockRecetaRepository) List(ctx context.Context, filter repository.RecetaFilter) ([]*entity.Receta, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Receta), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecetaRepository) Create(ctx context.Context, receta *entity.Receta) error {
	return m.Called(ctx, receta).Error(0)
}

func (m *MockRecetaRepository) Update(ctx context.Context, receta *entity.Receta) error {
	return m.Called(ctx, receta).Error(0)
}

func (m *MockRecetaRepository) ReplaceLineas(ctx context.Context, idReceta uuid.UUID, lineas []entity.RecetaLinea) error {
	return m.Called(ctx, idReceta, lineas).Error(0)
}

func (m *MockRecetaRepository) UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error {
	return m.Called(ctx, oldUsername, newUsername).Error(0)
}

// MockDashboardRepository mocks repository.DashboardRepository.
type MockDashboardRepository struct {
	mock.Mock
}

// NewMockDashboardRepository creates a mock wired to the test lifecycle.
func NewMockDashboardRepository(t *testing.T) *MockDashboardRepository {
	m := &MockDashboardRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDashboardRepository) CountMascotas(ctx context.Context, propietario string) (int64, error) {
	args := m.Called(ctx, propietario)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountMascotasAtendidasPor(ctx context.Context, veterinario string) (int64, error) {
	args := m.Called(ctx, veterinario)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountUsuarios(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountCitas(ctx context.Context, estado entity.EstadoCita, propietario, veterinario string) (int64, error) {
	args := m.Called(ctx, estado, propietario, veterinario)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountCitasEntre(ctx context.Context, desde, hasta time.Time) (int64, error) {
	args := m.Called(ctx, desde, hasta)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountVacunas(ctx context.Context, propietario, veterinario string) (int64, error) {
	args := m.Called(ctx, propietario, veterinario)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountVacunasEntre(ctx context.Context, desde, hasta time.Time) (int64, error) {
	args := m.Called(ctx, desde, hasta)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountFacturas(ctx context.Context, estado entity.EstadoFactura, propietario, veterinario string) (int64, error) {
	args := m.Called(ctx, estado, propietario, veterinario)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) SumIngresosEntre(ctx context.Context, desde, hasta time.Time) (float64, error) {
	args := m.Called(ctx, desde, hasta)

	return args.Get(0).(float64), args.Error(1)
}
