package impl

import (
	"io"
	"log/slog"
	"time"

	"vetclinic/config"
	"vetclinic/internal/domain/entity"
	"vetclinic/internal/pagination"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
)

// fixedClock pins the clinic clock for deterministic assertions.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Today() time.Time {
	year, month, day := c.now.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, c.now.Location())
}

func (c fixedClock) Location() *time.Location {
	return c.now.Location()
}

func newTestClock() fixedClock {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		panic(err)
	}

	return fixedClock{now: time.Date(2025, time.March, 15, 10, 30, 0, 0, loc)}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:       &config.AuthConfig{PasswordMinLength: 6},
		Pagination: &config.PaginationConfig{DefaultPageSize: 50, MaxPageSize: 200},
	}
}

func pageParams(page, pageSize int) pagination.Params {
	return pagination.Params{Page: page, PageSize: pageSize}
}

func clienteActor(username string) *usecase.Actor {
	return &usecase.Actor{ID: uuid.New(), Username: username, Role: entity.RoleCliente}
}

func vetActor(username string) *usecase.Actor {
	return &usecase.Actor{ID: uuid.New(), Username: username, Role: entity.RoleVeterinario}
}

func adminActor(username string) *usecase.Actor {
	return &usecase.Actor{ID: uuid.New(), Username: username, Role: entity.RoleAdmin}
}
