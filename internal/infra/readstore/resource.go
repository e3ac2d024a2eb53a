package readstore

import (
	"context"
	"fmt"
	"log/slog"

	"calldesk-booking/internal/domain/resource"
	"calldesk-booking/internal/infra"
)

// ResourceReadStore serves resources from a catalog loaded at startup.
// It is never mutated after construction.
type ResourceReadStore struct {
	byID   map[string]*resource.Resource
	order  []*resource.Resource
	logger *slog.Logger
}

func NewResourceReadStore(resources []*resource.Resource, logger *slog.Logger) *ResourceReadStore {
	byID := make(map[string]*resource.Resource, len(resources))
	order := make([]*resource.Resource, 0, len(resources))
	for _, res := range resources {
		if _, dup := byID[res.ID()]; dup {
			continue
		}
		byID[res.ID()] = res
		order = append(order, res)
	}
	return &ResourceReadStore{
		byID:   byID,
		order:  order,
		logger: logger,
	}
}

func (r *ResourceReadStore) FindAll(ctx context.Context) ([]*resource.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]*resource.Resource, len(r.order))
	copy(result, r.order)
	return result, nil
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id string) (*resource.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, fmt.Sprintf("resource %q not found", id), nil)
	}
	return res, nil
}
