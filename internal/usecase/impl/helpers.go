// Package impl contains the implementation of the application's business logic.
package impl

import (
	"time"

	"vetclinic/config"
	"vetclinic/internal/domain/entity"
	"vetclinic/internal/pagination"
	"vetclinic/internal/usecase"
)

// pageLimits carries the pagination bounds from config so every service
// normalizes list requests the same way.
type pageLimits struct {
	defaultSize int
	maxSize     int
}

func pageLimitsFromConfig(cfg *config.Config) pageLimits {
	limits := pageLimits{defaultSize: 50, maxSize: 200}
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultPageSize > 0 {
			limits.defaultSize = cfg.Pagination.DefaultPageSize
		}
		if cfg.Pagination.MaxPageSize > 0 {
			limits.maxSize = cfg.Pagination.MaxPageSize
		}
	}

	return limits
}

func (l pageLimits) normalize(p pagination.Params) pagination.Params {
	return p.Normalize(l.defaultSize, l.maxSize)
}

// stampCreated records the creation stamp. Anonymous self-registration has
// no acting account yet, so only the timestamps are set.
func stampCreated(audit *entity.Audit, actor *usecase.Actor, now time.Time) {
	if actor != nil {
		audit.StampCreated(actor.ID, now)

		return
	}

	audit.FechaCreacion = now
	audit.FechaActualizacion = now
}
