package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"calldesk-booking/internal/domain/calendar"
	"calldesk-booking/internal/domain/resource"
	"calldesk-booking/internal/infra"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// File is the on-disk layout of a resource catalog.
type File struct {
	Resources []Entry `yaml:"resources" validate:"required,min=1,dive"`
}

type Entry struct {
	ID           string                  `yaml:"id" validate:"required"`
	Name         string                  `yaml:"name" validate:"required,max=255"`
	Number       string                  `yaml:"number" validate:"required,e164"`
	Address      string                  `yaml:"address"`
	Type         string                  `yaml:"type" validate:"required,oneof=restaurant doctor other"`
	Timezone     string                  `yaml:"timezone" validate:"required,timezone"`
	AsyncConfirm bool                    `yaml:"asyncConfirm"`
	Calendar     calendar.WeeklyCalendar `yaml:"calendar" validate:"len=7"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the catalog at path, or the embedded default catalog when path is empty.
func Load(path string, logger *slog.Logger) ([]*resource.Resource, error) {
	if path == "" {
		logger.Info("loading embedded resource catalog")
		return Parse(defaultCatalog, logger)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindInvalidCatalog, fmt.Sprintf("failed to read catalog %s", path), err)
	}
	logger.Info("loading resource catalog", slog.String("path", path))
	return Parse(data, logger)
}

// Parse decodes and validates a YAML catalog. Unknown keys and duplicate ids are rejected.
func Parse(data []byte, logger *slog.Logger) ([]*resource.Resource, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindInvalidCatalog, "failed to decode catalog", err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindInvalidCatalog, "catalog validation failed", err)
	}

	seen := make(map[string]struct{}, len(file.Resources))
	resources := make([]*resource.Resource, 0, len(file.Resources))
	for _, e := range file.Resources {
		if _, dup := seen[e.ID]; dup {
			return nil, infra.WrapRepoErr(logger, infra.KindInvalidCatalog, fmt.Sprintf("duplicate resource id %q", e.ID), nil)
		}
		seen[e.ID] = struct{}{}

		res, err := resource.NewResource(resource.Params{
			ID:           e.ID,
			Name:         e.Name,
			Number:       e.Number,
			Address:      e.Address,
			Type:         resource.Type(e.Type),
			Timezone:     e.Timezone,
			AsyncConfirm: e.AsyncConfirm,
			Calendar:     e.Calendar,
		})
		if err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindInvalidCatalog, fmt.Sprintf("resource %q", e.ID), err)
		}
		resources = append(resources, res)
	}
	return resources, nil
}
