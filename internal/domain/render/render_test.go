package render_test

import (
	"testing"

	"github.com/dhank77/undangan.love/internal/domain/render"
	"github.com/dhank77/undangan.love/internal/domain/value"
	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		data   value.Object
		want   string
	}{
		{
			name:   "single token",
			layout: "Hello {{name}}!",
			data:   value.Object{"name": value.String("Sarah")},
			want:   "Hello Sarah!",
		},
		{
			name:   "absent key is left untouched",
			layout: "{{a}} {{b}}",
			data:   value.Object{"a": value.String("X")},
			want:   "X {{b}}",
		},
		{
			name:   "every occurrence is replaced",
			layout: "{{a}}-{{a}}-{{a}}",
			data:   value.Object{"a": value.String("x")},
			want:   "x-x-x",
		},
		{
			name:   "non string values are skipped",
			layout: "{{n}} {{b}} {{z}} {{arr}} {{obj}}",
			data: value.Object{
				"n":   value.Int(3),
				"b":   value.Bool(true),
				"z":   value.Null(),
				"arr": value.Array(value.String("x")),
				"obj": value.FromObject(value.Object{"k": value.String("v")}),
			},
			want: "{{n}} {{b}} {{z}} {{arr}} {{obj}}",
		},
		{
			name:   "values are not escaped",
			layout: "<p>{{msg}}</p>",
			data:   value.Object{"msg": value.String("<b>&</b>")},
			want:   "<p><b>&</b></p>",
		},
		{
			name:   "inserted text is not expanded again",
			layout: "{{a}} {{b}}",
			data:   value.Object{"a": value.String("{{b}}"), "b": value.String("B")},
			want:   "{{b}} B",
		},
		{
			name:   "tokens with spaces are not keys",
			layout: "{{ name }}",
			data:   value.Object{"name": value.String("Sarah")},
			want:   "{{ name }}",
		},
		{
			name:   "empty value erases the token",
			layout: "[{{a}}]",
			data:   value.Object{"a": value.String("")},
			want:   "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, render.Placeholders(tt.layout, tt.data))
		})
	}
}

func TestPlaceholdersWithEmptyDataIsIdentity(t *testing.T) {
	layout := "<h1>{{bride_name}} & {{groom_name}}</h1>"
	require.Equal(t, layout, render.Placeholders(layout, value.Object{}))
	require.Equal(t, layout, render.Placeholders(layout, nil))
}

func TestPlaceholdersIsIdempotentForPlainValues(t *testing.T) {
	layout := "<h1>{{bride_name}} & {{groom_name}}</h1><p>{{venue_name}}</p>"
	data := value.Object{
		"bride_name": value.String("Sarah"),
		"groom_name": value.String("Ahmad"),
	}

	once := render.Placeholders(layout, data)
	require.Equal(t, once, render.Placeholders(once, data))
	require.Equal(t, "<h1>Sarah & Ahmad</h1><p>{{venue_name}}</p>", once)
}

func TestPlaceholdersIsDeterministic(t *testing.T) {
	layout := "{{a}}{{b}}{{c}}{{d}}"
	data := value.Object{
		"a": value.String("1"),
		"b": value.String("2"),
		"c": value.String("3"),
		"d": value.String("4"),
	}
	first := render.Placeholders(layout, data)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, render.Placeholders(layout, data))
	}
}

func TestSampleDataFillsTheStandardFields(t *testing.T) {
	layout := "{{bride_name}}|{{groom_name}}|{{wedding_date}}|{{wedding_time}}|{{venue_name}}|{{venue_address}}"
	require.Equal(t,
		"Sarah|Ahmad|15 Januari 2025|09:00 WIB|Gedung Serbaguna|Jl. Merdeka No. 123, Jakarta",
		render.Placeholders(layout, render.SampleData()),
	)
}
