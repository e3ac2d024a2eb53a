package queries

import (
	"context"
	"time"

	"calldesk-booking/internal/domain/resource"
	"calldesk-booking/internal/infra"
	"calldesk-booking/internal/pkg/errs"
	"calldesk-booking/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type ResourceQueries interface {
	GetResource(ctx context.Context, id string) (*ResourceView, error)
	ListResources(ctx context.Context) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	directory shared.ResourceDirectory
}

func NewResourceQueries(directory shared.ResourceDirectory) ResourceQueries {
	return &resourceQueriesImpl{directory: directory}
}

func (q *resourceQueriesImpl) GetResource(ctx context.Context, id string) (*ResourceView, error) {
	res, err := findResource(ctx, q.directory, id)
	if err != nil {
		return nil, err
	}
	return toResourceView(res)
}

func (q *resourceQueriesImpl) ListResources(ctx context.Context) ([]*ResourceView, error) {
	all, err := q.directory.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ResourceView, len(all))
	for i, res := range all {
		if views[i], err = toResourceView(res); err != nil {
			return nil, err
		}
	}
	return views, nil
}

// findResource maps directory misses to ErrResourceNotFound.
func findResource(ctx context.Context, directory shared.ResourceDirectory, id string) (*resource.Resource, error) {
	res, err := directory.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, err
	}
	return res, nil
}

var locationToString = copier.TypeConverter{
	SrcType: &time.Location{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		loc, _ := src.(*time.Location)
		if loc == nil {
			return "", nil
		}
		return loc.String(), nil
	},
}

func toResourceView(res *resource.Resource) (*ResourceView, error) {
	var view ResourceView
	err := copier.CopyWithOption(&view, res, copier.Option{
		Converters: []copier.TypeConverter{locationToString},
	})
	if err != nil {
		return nil, errs.Wrap(err, "copy resource view")
	}
	return &view, nil
}
