//go:build unit

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"calldesk-booking/internal/domain/resource"
	"calldesk-booking/internal/infra"
	"calldesk-booking/internal/infra/catalog"
	"calldesk-booking/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
resources:
  - id: cab-1
    name: Cabinet Martin
    number: "+33142000000"
    address: 1 place du Marché, 75001 Paris
    type: other
    timezone: Europe/Paris
    calendar:
      - [{start: "08:00", end: "12:00", duration: 30, prob: 1}]
      - []
      - []
      - []
      - []
      - []
      - []
`

func TestLoadEmbedded(t *testing.T) {
	resources, err := catalog.Load("", testutil.DiscardLogger())
	require.NoError(t, err)
	require.Len(t, resources, 2)

	restaurant := resources[0]
	assert.Equal(t, "1", restaurant.ID())
	assert.Equal(t, "Les Garçons", restaurant.Name())
	assert.Equal(t, "+33493808790", restaurant.Number())
	assert.Equal(t, resource.TypeRestaurant, restaurant.Type())
	assert.Equal(t, "Europe/Paris", restaurant.Timezone().String())
	assert.True(t, restaurant.AsyncConfirm())
	assert.Len(t, restaurant.Calendar()[1], 2)
	assert.Equal(t, "23:30", restaurant.Calendar()[4][1].End.String())

	doctor := resources[1]
	assert.Equal(t, "2", doctor.ID())
	assert.Equal(t, "Durant", doctor.Name())
	assert.Equal(t, "6 Rue d'Italie, 13100 Aix-en-Provence", doctor.Address())
	assert.Equal(t, resource.TypeDoctor, doctor.Type())
	assert.Equal(t, 0.4, doctor.Calendar()[1][0].Prob)
	assert.Empty(t, doctor.Calendar()[5])
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o600))

		resources, err := catalog.Load(path, testutil.DiscardLogger())
		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, "cab-1", resources[0].ID())
		assert.Equal(t, 30, resources[0].Calendar()[0][0].Duration)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"), testutil.DiscardLogger())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindInvalidCatalog))
	})
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "empty catalog",
			doc:  "resources: []",
		},
		{
			name: "unknown key",
			doc: `
resources:
  - id: "1"
    name: A
    number: "+33142000000"
    type: other
    timezone: Europe/Paris
    color: blue
    calendar: [[], [], [], [], [], [], []]
`,
		},
		{
			name: "phone number not e164",
			doc: `
resources:
  - id: "1"
    name: A
    number: "01 42 00 00 00"
    type: other
    timezone: Europe/Paris
    calendar: [[], [], [], [], [], [], []]
`,
		},
		{
			name: "unknown timezone",
			doc: `
resources:
  - id: "1"
    name: A
    number: "+33142000000"
    type: other
    timezone: Europe/Atlantis
    calendar: [[], [], [], [], [], [], []]
`,
		},
		{
			name: "unknown type",
			doc: `
resources:
  - id: "1"
    name: A
    number: "+33142000000"
    type: garage
    timezone: Europe/Paris
    calendar: [[], [], [], [], [], [], []]
`,
		},
		{
			name: "six day calendar",
			doc: `
resources:
  - id: "1"
    name: A
    number: "+33142000000"
    type: other
    timezone: Europe/Paris
    calendar: [[], [], [], [], [], []]
`,
		},
		{
			name: "overlapping windows",
			doc: `
resources:
  - id: "1"
    name: A
    number: "+33142000000"
    type: other
    timezone: Europe/Paris
    calendar:
      - [{start: "09:00", end: "12:00", duration: 30, prob: 1}, {start: "11:00", end: "13:00", duration: 30, prob: 1}]
      - []
      - []
      - []
      - []
      - []
      - []
`,
		},
		{
			name: "bad wall clock",
			doc: `
resources:
  - id: "1"
    name: A
    number: "+33142000000"
    type: other
    timezone: Europe/Paris
    calendar:
      - [{start: "9h", end: "12:00", duration: 30, prob: 1}]
      - []
      - []
      - []
      - []
      - []
      - []
`,
		},
		{
			name: "duplicate id",
			doc: `
resources:
  - id: "1"
    name: A
    number: "+33142000000"
    type: other
    timezone: Europe/Paris
    calendar: [[], [], [], [], [], [], []]
  - id: "1"
    name: B
    number: "+33142000001"
    type: other
    timezone: Europe/Paris
    calendar: [[], [], [], [], [], [], []]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources, err := catalog.Parse([]byte(tt.doc), testutil.DiscardLogger())
			require.Error(t, err)
			assert.Nil(t, resources)
			assert.True(t, infra.IsKind(err, infra.KindInvalidCatalog))
		})
	}
}
