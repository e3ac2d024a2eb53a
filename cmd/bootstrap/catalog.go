package bootstrap

import (
	"log/slog"

	"calldesk-booking/internal/domain/resource"
	"calldesk-booking/internal/infra/catalog"
	"calldesk-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
	),
)

// NewCatalog loads the resource catalog once at startup. A broken catalog
// aborts the application start.
func NewCatalog(cfg config.Config, logger *slog.Logger) ([]*resource.Resource, error) {
	resources, err := catalog.Load(cfg.Catalog.Path, logger)
	if err != nil {
		return nil, err
	}

	source := cfg.Catalog.Path
	if source == "" {
		source = "embedded"
	}
	logger.Info("resource catalog loaded", "source", source, "resources", len(resources))

	return resources, nil
}
