package impl

import (
	"context"
	"testing"

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

// recetaServiceFixtures holds all test dependencies for receta service tests.
type recetaServiceFixtures struct {
	service    usecase.RecetaUsecase
	recetaRepo *mockRepo.MockRecetaRepository
	citaRepo   *mockRepo.MockCitaRepository
	clock      fixedClock
}

func createTestRecetaService(t *testing.T) recetaServiceFixtures {
	recetaRepo := mockRepo.NewMockRecetaRepository(t)
	citaRepo := mockRepo.NewMockCitaRepository(t)
	clock := newTestClock()

	txManager := &mockRepo.FakeTransactionManager{Factory: &mockRepo.StubRepositoryFactory{
		Recetas: recetaRepo,
		Citas:   citaRepo,
	}}

	service := NewRecetaService(RecetaServiceParams{
		TxManager:  txManager,
		RecetaRepo: recetaRepo,
		CitaRepo:   citaRepo,
		Clock:      clock,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return recetaServiceFixtures{
		service:    service,
		recetaRepo: recetaRepo,
		citaRepo:   citaRepo,
		clock:      clock,
	}
}

func TestRecetaService_Create_Success(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	actor := vetActor("dra_gomez")
	idCita := uuid.New()

	cita := &entity.Cita{ID: idCita, Veterinario: "dra_gomez", Estado: entity.EstadoCitaCompletada}

	fx.citaRepo.On("FindByID", ctx, idCita).Return(cita, nil)
	fx.recetaRepo.On("FindByCita", ctx, idCita).Return(nil, domainerrors.ErrRecetaNotFound)
	fx.recetaRepo.On("Create", ctx, mock.AnythingOfType("*entity.Receta")).Return(nil)

	receta, err := fx.service.Create(ctx, actor, &usecase.CreateRecetaInput{
		IDCita:       idCita,
		Indicaciones: "Administrar con comida",
		Lineas: []usecase.RecetaLineaInput{
			{Medicamento: "Amoxicilina", Dosis: "250mg", Frecuencia: "cada 12 horas", Duracion: "7 días"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "dra_gomez", receta.Veterinario)
	assert.Equal(t, fx.clock.Now(), receta.FechaEmision)
	require.Len(t, receta.Lineas, 1)
	assert.Equal(t, "Amoxicilina", receta.Lineas[0].Medicamento)
}

func TestRecetaService_Create_OnePerCita(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	idCita := uuid.New()

	cita := &entity.Cita{ID: idCita, Veterinario: "dra_gomez"}

	fx.citaRepo.On("FindByID", ctx, idCita).Return(cita, nil)
	fx.recetaRepo.On("FindByCita", ctx, idCita).Return(&entity.Receta{ID: uuid.New()}, nil)

	_, err := fx.service.Create(ctx, vetActor("dra_gomez"), &usecase.CreateRecetaInput{IDCita: idCita})

	assertBusinessRule(t, err, "La cita ya tiene una receta asociada")
}

func TestRecetaService_Create_NonAssignedVetForbidden(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	idCita := uuid.New()

	cita := &entity.Cita{ID: idCita, Veterinario: "dr_perez"}
	fx.citaRepo.On("FindByID", ctx, idCita).Return(cita, nil)

	_, err := fx.service.Create(ctx, vetActor("dra_gomez"), &usecase.CreateRecetaInput{IDCita: idCita})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Equal(t, "Solo puede emitir recetas para citas asignadas a usted", appErr.Message())
}

func TestRecetaService_Create_DeletedCita(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	idCita := uuid.New()

	cita := &entity.Cita{ID: idCita, Veterinario: "dra_gomez"}
	cita.IsDeleted = true
	fx.citaRepo.On("FindByID", ctx, idCita).Return(cita, nil)

	_, err := fx.service.Create(ctx, vetActor("dra_gomez"), &usecase.CreateRecetaInput{IDCita: idCita})

	require.ErrorIs(t, err, domainerrors.ErrCitaNotFound)
}

func TestRecetaService_GetByCita_ClienteOwnership(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	idCita := uuid.New()

	receta := &entity.Receta{ID: uuid.New(), IDCita: idCita, Veterinario: "dra_gomez"}
	cita := &entity.Cita{ID: idCita, Mascota: ownedMascota(uuid.New(), "carlos")}

	fx.recetaRepo.On("FindByCita", ctx, idCita).Return(receta, nil)
	fx.citaRepo.On("FindByID", ctx, idCita).Return(cita, nil)

	got, err := fx.service.GetByCita(ctx, clienteActor("carlos"), idCita)
	require.NoError(t, err)
	assert.Equal(t, receta.ID, got.ID)

	_, err = fx.service.GetByCita(ctx, clienteActor("otra_persona"), idCita)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRecetaService_List_VetScopedToOwnIssued(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()

	fx.recetaRepo.On("List", ctx, mock.MatchedBy(func(f repository.RecetaFilter) bool {
		return f.Veterinario == "dra_gomez" && !f.IncludeDeleted
	})).Return([]*entity.Receta{}, int64(0), nil)

	_, err := fx.service.List(ctx, vetActor("dra_gomez"), &usecase.ListRecetasInput{IncludeDeleted: true})

	require.NoError(t, err)
}

func TestRecetaService_Update_ReplacesLineasWholesale(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	actor := vetActor("dra_gomez")
	id := uuid.New()

	receta := &entity.Receta{
		ID:          id,
		Veterinario: "dra_gomez",
		Lineas: []entity.RecetaLinea{
			{Medicamento: "Amoxicilina", Dosis: "250mg"},
			{Medicamento: "Meloxicam", Dosis: "1mg"},
		},
	}

	fx.recetaRepo.On("FindByID", ctx, id).Return(receta, nil)
	fx.recetaRepo.On("Update", ctx, mock.AnythingOfType("*entity.Receta")).Return(nil)
	fx.recetaRepo.On("ReplaceLineas", ctx, id, mock.MatchedBy(func(lineas []entity.RecetaLinea) bool {
		return len(lineas) == 1 && lineas[0].Medicamento == "Cefalexina"
	})).Return(nil)

	updated, err := fx.service.Update(ctx, actor, id, &usecase.UpdateRecetaInput{
		Lineas: []usecase.RecetaLineaInput{
			{Medicamento: "Cefalexina", Dosis: "500mg", Frecuencia: "cada 8 horas", Duracion: "10 días"},
		},
	})

	require.NoError(t, err)
	require.Len(t, updated.Lineas, 1)
	assert.Equal(t, "Cefalexina", updated.Lineas[0].Medicamento)
}

func TestRecetaService_Update_KeepsLineasWhenNil(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	id := uuid.New()

	receta := &entity.Receta{
		ID:          id,
		Veterinario: "dra_gomez",
		Lineas:      []entity.RecetaLinea{{Medicamento: "Amoxicilina"}},
	}

	fx.recetaRepo.On("FindByID", ctx, id).Return(receta, nil)
	fx.recetaRepo.On("Update", ctx, mock.AnythingOfType("*entity.Receta")).Return(nil)

	indicaciones := "Suspender si hay vómito"
	updated, err := fx.service.Update(ctx, vetActor("dra_gomez"), id, &usecase.UpdateRecetaInput{
		Indicaciones: &indicaciones,
	})

	require.NoError(t, err)
	assert.Equal(t, "Suspender si hay vómito", updated.Indicaciones)
	// No ReplaceLineas expectation registered; a stray call would fail the test.
	assert.Len(t, updated.Lineas, 1)
}

func TestRecetaService_Update_DeletedRecordRejected(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	id := uuid.New()

	receta := &entity.Receta{ID: id, Veterinario: "dra_gomez"}
	receta.IsDeleted = true
	fx.recetaRepo.On("FindByID", ctx, id).Return(receta, nil)

	indicaciones := "No aplica"
	_, err := fx.service.Update(ctx, vetActor("dra_gomez"), id, &usecase.UpdateRecetaInput{Indicaciones: &indicaciones})

	require.ErrorIs(t, err, domainerrors.ErrRegistroEliminado)
}

func TestRecetaService_Delete_AlreadyDeleted(t *testing.T) {
	fx := createTestRecetaService(t)
	ctx := context.Background()
	id := uuid.New()

	receta := &entity.Receta{ID: id, Veterinario: "dra_gomez"}
	receta.IsDeleted = true
	fx.recetaRepo.On("FindByID", ctx, id).Return(receta, nil)

	err := fx.service.Delete(ctx, vetActor("dra_gomez"), id)

	assertBusinessRule(t, err, "La receta ya está eliminada")
}
