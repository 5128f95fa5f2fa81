package impl

import (
	"context"
	"testing"
	"time"

	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	mockRepo "vetclinic/internal/mocks/repository"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// citaServiceFixtures holds all test dependencies for cita service tests.
type citaServiceFixtures struct {
	service     usecase.CitaUsecase
	citaRepo    *mockRepo.MockCitaRepository
	mascotaRepo *mockRepo.MockMascotaRepository
	usuarioRepo *mockRepo.MockUsuarioRepository
	clock       fixedClock
}

func createTestCitaService(t *testing.T) citaServiceFixtures {
	citaRepo := mockRepo.NewMockCitaRepository(t)
	mascotaRepo := mockRepo.NewMockMascotaRepository(t)
	usuarioRepo := mockRepo.NewMockUsuarioRepository(t)
	clock := newTestClock()

	txManager := &mockRepo.FakeTransactionManager{Factory: &mockRepo.StubRepositoryFactory{
		Citas:    citaRepo,
		Mascotas: mascotaRepo,
		Usuarios: usuarioRepo,
	}}

	service := NewCitaService(CitaServiceParams{
		TxManager: txManager,
		CitaRepo:  citaRepo,
		Clock:     clock,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return citaServiceFixtures{
		service:     service,
		citaRepo:    citaRepo,
		mascotaRepo: mascotaRepo,
		usuarioRepo: usuarioRepo,
		clock:       clock,
	}
}

func ownedMascota(id uuid.UUID, owner string) *entity.Mascota {
	return &entity.Mascota{ID: id, Nombre: "Rocky", Tipo: entity.TipoMascotaPerro, Propietario: owner}
}

func TestCitaService_Create_Success(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	actor := clienteActor("carlos")
	idMascota := uuid.New()

	fx.mascotaRepo.On("FindByID", ctx, idMascota).Return(ownedMascota(idMascota, "carlos"), nil)
	fx.usuarioRepo.On("FindByUsername", ctx, "dra_gomez").
		Return(&entity.Usuario{Username: "dra_gomez", Role: entity.RoleVeterinario}, nil)
	fx.citaRepo.On("Create", ctx, mock.AnythingOfType("*entity.Cita")).Return(nil)

	cita, err := fx.service.Create(ctx, actor, &usecase.CreateCitaInput{
		IDMascota:   idMascota,
		Fecha:       fx.clock.Now().Add(48 * time.Hour),
		Motivo:      "Control anual",
		Veterinario: "dra_gomez",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCitaPendiente, cita.Estado)
	assert.Equal(t, "dra_gomez", cita.Veterinario)
	assert.Equal(t, actor.ID, *cita.IDUsuarioCreacion)
}

func TestCitaService_Create_FechaInThePast(t *testing.T) {
	fx := createTestCitaService(t)

	_, err := fx.service.Create(context.Background(), clienteActor("carlos"), &usecase.CreateCitaInput{
		IDMascota:   uuid.New(),
		Fecha:       fx.clock.Now().Add(-time.Hour),
		Motivo:      "Control",
		Veterinario: "dra_gomez",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	assert.Equal(t, "fecha", appErr.Details())
}

func TestCitaService_Create_VeterinarioWithoutRole(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	idMascota := uuid.New()

	fx.mascotaRepo.On("FindByID", ctx, idMascota).Return(ownedMascota(idMascota, "carlos"), nil)
	fx.usuarioRepo.On("FindByUsername", ctx, "carlos2").
		Return(&entity.Usuario{Username: "carlos2", Role: entity.RoleCliente}, nil)

	_, err := fx.service.Create(ctx, clienteActor("carlos"), &usecase.CreateCitaInput{
		IDMascota:   idMascota,
		Fecha:       fx.clock.Now().Add(time.Hour),
		Motivo:      "Control",
		Veterinario: "carlos2",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	assert.Equal(t, "veterinario", appErr.Details())
}

func TestCitaService_Create_CrossClientForbidden(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	idMascota := uuid.New()

	fx.mascotaRepo.On("FindByID", ctx, idMascota).Return(ownedMascota(idMascota, "otra_persona"), nil)

	_, err := fx.service.Create(ctx, clienteActor("carlos"), &usecase.CreateCitaInput{
		IDMascota:   idMascota,
		Fecha:       fx.clock.Now().Add(time.Hour),
		Motivo:      "Control",
		Veterinario: "dra_gomez",
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCitaService_Update_VetSchedulingFieldsSilentlyDropped(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	actor := vetActor("dra_gomez")
	id := uuid.New()

	originalFecha := fx.clock.Now().Add(24 * time.Hour)
	cita := &entity.Cita{
		ID:          id,
		IDMascota:   uuid.New(),
		Fecha:       originalFecha,
		Motivo:      "Control",
		Veterinario: "dra_gomez",
		Estado:      entity.EstadoCitaPendiente,
		Mascota:     ownedMascota(uuid.New(), "carlos"),
	}

	fx.citaRepo.On("FindByID", ctx, id).Return(cita, nil)
	fx.citaRepo.On("Update", ctx, mock.AnythingOfType("*entity.Cita")).Return(nil)

	newFecha := fx.clock.Now().Add(72 * time.Hour)
	newMotivo := "Cambio de motivo"
	diagnostico := "Otitis externa"
	estado := entity.EstadoCitaConfirmada

	updated, err := fx.service.Update(ctx, actor, id, &usecase.UpdateCitaInput{
		Fecha:       &newFecha,
		Motivo:      &newMotivo,
		Estado:      &estado,
		Diagnostico: &diagnostico,
	})

	require.NoError(t, err)
	// Scheduling fields stay untouched for vets; clinical fields apply.
	assert.Equal(t, originalFecha, updated.Fecha)
	assert.Equal(t, "Control", updated.Motivo)
	assert.Equal(t, entity.EstadoCitaConfirmada, updated.Estado)
	require.NotNil(t, updated.Diagnostico)
	assert.Equal(t, "Otitis externa", *updated.Diagnostico)
}

func TestCitaService_Update_NonAssignedVetForbidden(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	id := uuid.New()

	cita := &entity.Cita{
		ID:          id,
		Veterinario: "dr_perez",
		Estado:      entity.EstadoCitaPendiente,
		Mascota:     ownedMascota(uuid.New(), "carlos"),
	}
	fx.citaRepo.On("FindByID", ctx, id).Return(cita, nil)

	diagnostico := "Intento no autorizado"
	_, err := fx.service.Update(ctx, vetActor("dra_gomez"), id, &usecase.UpdateCitaInput{
		Diagnostico: &diagnostico,
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestCitaService_Update_DeletedRecordRejected(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	id := uuid.New()

	cita := &entity.Cita{
		ID:          id,
		Veterinario: "dra_gomez",
		Estado:      entity.EstadoCitaCancelada,
		Mascota:     ownedMascota(uuid.New(), "carlos"),
	}
	cita.IsDeleted = true
	fx.citaRepo.On("FindByID", ctx, id).Return(cita, nil)

	estado := entity.EstadoCitaPendiente
	_, err := fx.service.Update(ctx, adminActor("admin"), id, &usecase.UpdateCitaInput{Estado: &estado})

	require.ErrorIs(t, err, domainerrors.ErrRegistroEliminado)
	// No Update expectation was registered, so the estado of a deleted cita
	// never reaches the repository.
	assert.Equal(t, entity.EstadoCitaCancelada, cita.Estado)
}

func TestCitaService_Cancel_SetsEstadoAndSoftDeletes(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	actor := clienteActor("carlos")
	id := uuid.New()

	cita := &entity.Cita{
		ID:          id,
		Veterinario: "dra_gomez",
		Estado:      entity.EstadoCitaPendiente,
		Mascota:     ownedMascota(uuid.New(), "carlos"),
	}

	fx.citaRepo.On("FindByID", ctx, id).Return(cita, nil)
	fx.citaRepo.On("Update", ctx, mock.MatchedBy(func(c *entity.Cita) bool {
		return c.Estado == entity.EstadoCitaCancelada && c.IsDeleted && c.DeletedBy != nil && *c.DeletedBy == actor.ID
	})).Return(nil)

	require.NoError(t, fx.service.Cancel(ctx, actor, id))
}

func TestCitaService_Cancel_AlreadyCancelled(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	id := uuid.New()

	cita := &entity.Cita{
		ID:          id,
		Estado:      entity.EstadoCitaCancelada,
		Mascota:     ownedMascota(uuid.New(), "carlos"),
		Veterinario: "dra_gomez",
	}
	cita.IsDeleted = true

	fx.citaRepo.On("FindByID", ctx, id).Return(cita, nil)

	err := fx.service.Cancel(context.Background(), clienteActor("carlos"), id)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", appErr.ErrorCode())
	assert.Equal(t, "La cita ya está cancelada", appErr.Message())
}

func TestCitaService_Cancel_AlreadyCancelledWinsOverOwnership(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	id := uuid.New()

	cita := &entity.Cita{
		ID:          id,
		Estado:      entity.EstadoCitaCancelada,
		Veterinario: "dra_gomez",
		Mascota:     ownedMascota(uuid.New(), "carlos"),
	}
	fx.citaRepo.On("FindByID", ctx, id).Return(cita, nil)

	// A caller who does not own the mascota still gets the business rule,
	// not a permission error.
	err := fx.service.Cancel(ctx, clienteActor("otra_persona"), id)

	assertBusinessRule(t, err, "La cita ya está cancelada")
}

func TestCitaService_Cancel_VetForbidden(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()
	id := uuid.New()

	cita := &entity.Cita{
		ID:          id,
		Veterinario: "dra_gomez",
		Estado:      entity.EstadoCitaPendiente,
		Mascota:     ownedMascota(uuid.New(), "carlos"),
	}
	fx.citaRepo.On("FindByID", ctx, id).Return(cita, nil)

	err := fx.service.Cancel(ctx, vetActor("dra_gomez"), id)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCitaService_List_VetScopedToInvolvement(t *testing.T) {
	fx := createTestCitaService(t)
	ctx := context.Background()

	fx.citaRepo.On("List", ctx, mock.MatchedBy(func(f repository.CitaFilter) bool {
		return f.Involucrado == "dra_gomez" && f.Veterinario == "" && f.Propietario == ""
	})).Return([]*entity.Cita{}, int64(0), nil)

	out, err := fx.service.List(ctx, vetActor("dra_gomez"), &usecase.ListCitasInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Citas)
}
