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

// vacunaServiceFixtures holds all test dependencies for vacuna service tests.
type vacunaServiceFixtures struct {
	service     usecase.VacunaUsecase
	vacunaRepo  *mockRepo.MockVacunaRepository
	mascotaRepo *mockRepo.MockMascotaRepository
	clock       fixedClock
}

func createTestVacunaService(t *testing.T) vacunaServiceFixtures {
	vacunaRepo := mockRepo.NewMockVacunaRepository(t)
	mascotaRepo := mockRepo.NewMockMascotaRepository(t)
	clock := newTestClock()

	txManager := &mockRepo.FakeTransactionManager{Factory: &mockRepo.StubRepositoryFactory{
		Vacunas:  vacunaRepo,
		Mascotas: mascotaRepo,
	}}

	service := NewVacunaService(VacunaServiceParams{
		TxManager:  txManager,
		VacunaRepo: vacunaRepo,
		Clock:      clock,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return vacunaServiceFixtures{
		service:     service,
		vacunaRepo:  vacunaRepo,
		mascotaRepo: mascotaRepo,
		clock:       clock,
	}
}

func TestVacunaService_Create_Success(t *testing.T) {
	fx := createTestVacunaService(t)
	ctx := context.Background()
	actor := vetActor("dra_gomez")
	idMascota := uuid.New()

	fx.mascotaRepo.On("FindByID", ctx, idMascota).Return(ownedMascota(idMascota, "carlos"), nil)
	fx.vacunaRepo.On("Create", ctx, mock.AnythingOfType("*entity.Vacuna")).Return(nil)

	proxima := fx.clock.Today().AddDate(0, 1, 0)
	vacuna, err := fx.service.Create(ctx, actor, &usecase.CreateVacunaInput{
		IDMascota:    idMascota,
		TipoVacuna:   entity.TipoVacunaRabia,
		LoteVacuna:   "L-2025-0042",
		ProximaDosis: &proxima,
	})

	require.NoError(t, err)
	// The application date is always the clinic's current day, and the
	// applying vet is always the caller.
	assert.Equal(t, fx.clock.Today(), vacuna.FechaAplicacion)
	assert.Equal(t, "dra_gomez", vacuna.Veterinario)
}

func TestVacunaService_Create_ClienteForbidden(t *testing.T) {
	fx := createTestVacunaService(t)

	_, err := fx.service.Create(context.Background(), clienteActor("carlos"), &usecase.CreateVacunaInput{
		IDMascota:  uuid.New(),
		TipoVacuna: entity.TipoVacunaRabia,
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVacunaService_Create_ProximaDosisMustBeLater(t *testing.T) {
	fx := createTestVacunaService(t)
	actor := vetActor("dra_gomez")

	cases := []struct {
		name    string
		proxima time.Time
	}{
		{"mismo día", fx.clock.Today()},
		{"día anterior", fx.clock.Today().AddDate(0, 0, -1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proxima := tc.proxima
			_, err := fx.service.Create(context.Background(), actor, &usecase.CreateVacunaInput{
				IDMascota:    uuid.New(),
				TipoVacuna:   entity.TipoVacunaParvovirus,
				ProximaDosis: &proxima,
			})

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
			assert.Equal(t, "proxima_dosis", appErr.Details())
		})
	}
}

func TestVacunaService_Create_DeletedMascota(t *testing.T) {
	fx := createTestVacunaService(t)
	ctx := context.Background()
	idMascota := uuid.New()

	mascota := ownedMascota(idMascota, "carlos")
	mascota.IsDeleted = true
	fx.mascotaRepo.On("FindByID", ctx, idMascota).Return(mascota, nil)

	_, err := fx.service.Create(ctx, vetActor("dra_gomez"), &usecase.CreateVacunaInput{
		IDMascota:  idMascota,
		TipoVacuna: entity.TipoVacunaMoquillo,
	})

	require.ErrorIs(t, err, domainerrors.ErrMascotaNotFound)
}

func TestVacunaService_Get_ClienteCrossOwnerForbidden(t *testing.T) {
	fx := createTestVacunaService(t)
	ctx := context.Background()
	id := uuid.New()

	vacuna := &entity.Vacuna{
		ID:          id,
		Veterinario: "dra_gomez",
		Mascota:     ownedMascota(uuid.New(), "otra_persona"),
	}
	fx.vacunaRepo.On("FindByID", ctx, id).Return(vacuna, nil)

	_, err := fx.service.Get(ctx, clienteActor("carlos"), id)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVacunaService_List_ClienteScopedToOwnPets(t *testing.T) {
	fx := createTestVacunaService(t)
	ctx := context.Background()

	fx.vacunaRepo.On("List", ctx, mock.MatchedBy(func(f repository.VacunaFilter) bool {
		return f.Propietario == "carlos" && !f.IncludeDeleted
	})).Return([]*entity.Vacuna{}, int64(0), nil)

	_, err := fx.service.List(ctx, clienteActor("carlos"), &usecase.ListVacunasInput{IncludeDeleted: true})

	require.NoError(t, err)
}

func TestVacunaService_Update_OnlyApplyingVet(t *testing.T) {
	fx := createTestVacunaService(t)
	ctx := context.Background()
	id := uuid.New()

	vacuna := &entity.Vacuna{ID: id, Veterinario: "dr_perez", FechaAplicacion: fx.clock.Today()}
	fx.vacunaRepo.On("FindByID", ctx, id).Return(vacuna, nil)

	lote := "L-2025-0099"
	_, err := fx.service.Update(ctx, vetActor("dra_gomez"), id, &usecase.UpdateVacunaInput{LoteVacuna: &lote})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVacunaService_Update_DeletedRecordRejected(t *testing.T) {
	fx := createTestVacunaService(t)
	ctx := context.Background()
	id := uuid.New()

	vacuna := &entity.Vacuna{ID: id, Veterinario: "dra_gomez"}
	vacuna.IsDeleted = true
	fx.vacunaRepo.On("FindByID", ctx, id).Return(vacuna, nil)

	lote := "L-2025-0100"
	_, err := fx.service.Update(ctx, vetActor("dra_gomez"), id, &usecase.UpdateVacunaInput{LoteVacuna: &lote})

	require.ErrorIs(t, err, domainerrors.ErrRegistroEliminado)
}

func TestVacunaService_Delete_AlreadyDeleted(t *testing.T) {
	fx := createTestVacunaService(t)
	ctx := context.Background()
	id := uuid.New()

	vacuna := &entity.Vacuna{ID: id, Veterinario: "dra_gomez"}
	vacuna.IsDeleted = true
	fx.vacunaRepo.On("FindByID", ctx, id).Return(vacuna, nil)

	err := fx.service.Delete(ctx, vetActor("dra_gomez"), id)

	assertBusinessRule(t, err, "La vacuna ya está eliminada")
}

func TestVacunaService_ProximasDosis_VetScopedToOwnApplied(t *testing.T) {
	fx := createTestVacunaService(t)
	ctx := context.Background()
	hoy := fx.clock.Today()

	fx.vacunaRepo.On("List", ctx, mock.MatchedBy(func(f repository.VacunaFilter) bool {
		return f.Veterinario == "dra_gomez" && f.ProximaDesde != nil && f.ProximaDesde.Equal(hoy)
	})).Return([]*entity.Vacuna{}, int64(0), nil)

	_, err := fx.service.ProximasDosis(ctx, vetActor("dra_gomez"), pageParams(0, 20))

	require.NoError(t, err)
}
