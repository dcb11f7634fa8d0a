package catalog

import (
	"encoding/json"
	"testing"

	"github.com/dhank77/undangan.love/internal/domain/value"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	components := c.Components()
	ids := make([]string, 0, len(components))
	for _, comp := range components {
		ids = append(ids, comp.ID)
	}
	require.Equal(t, []string{
		"text-block", "image-block", "gallery", "rsvp-form",
		"countdown-timer", "map", "background-music-player",
	}, ids)
}

func TestCatalogPropKinds(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	byID := make(map[string]value.Object)
	for _, comp := range c.Components() {
		byID[comp.ID] = comp.DefaultProps
	}

	color, ok := byID["text-block"]["color"].AsString()
	require.True(t, ok)
	require.Equal(t, "#000000", color)

	zoom, ok := byID["map"]["zoom"].AsNumber()
	require.True(t, ok)
	require.Equal(t, "15", zoom.String())

	volume, ok := byID["background-music-player"]["volume"].AsNumber()
	require.True(t, ok)
	require.Equal(t, "0.5", volume.String())

	autoplay, ok := byID["background-music-player"]["autoplay"].AsBool()
	require.True(t, ok)
	require.False(t, autoplay)

	images, ok := byID["gallery"]["images"].AsArray()
	require.True(t, ok)
	require.Empty(t, images)
}

func TestCatalogJSONShape(t *testing.T) {
	c, err := Parse([]byte(`
- id: spacer
  name: Spacer
  category: basic
  icon: space
  description: Empty space
  defaultProps:
    height: 20px
`))
	require.NoError(t, err)

	out, err := json.Marshal(c.Components())
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"spacer","name":"Spacer","category":"basic","icon":"space",
		"description":"Empty space","defaultProps":{"height":"20px"}}]`, string(out))
}

func TestComponentsReturnsCopy(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	first := c.Components()
	first[0].ID = "changed"
	require.Equal(t, "text-block", c.Components()[0].ID)
}

func TestParseRejectsBrokenDocument(t *testing.T) {
	_, err := Parse([]byte("- id: [unclosed"))
	require.Error(t, err)
}
