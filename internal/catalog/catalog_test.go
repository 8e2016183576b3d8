package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIstanbul(t *testing.T) {
	c := Istanbul()

	require.NoError(t, c.Validate())
	assert.Equal(t, trip.Istanbul, c.City)
	assert.Equal(t, 3, c.Len())

	p, ok := c.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "Blue Mosque", p.Name)
	assert.Equal(t, "41.0053, 28.9770", p.Coordinates())

	_, ok = c.Lookup(99)
	assert.False(t, ok)

	assert.Equal(t, 2, c.Index(3))
	assert.Equal(t, -1, c.Index(42))
}

func TestParse(t *testing.T) {
	data := []byte(`
city: antalya
center:
  lat: 36.8969
  lng: 30.7133
pois:
  - id: 10
    name: Kaleici
    description: Old town
    type: Historical
    lat: 36.8841
    lng: 30.7056
  - id: 11
    name: Duden Waterfalls
    type: Nature
    lat: 36.8590
    lng: 30.7820
`)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, trip.Antalya, c.City)
	assert.Equal(t, 12, c.Center.Zoom, "zoom falls back to default")
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "Duden Waterfalls", c.POIs[1].Name)
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte("pois:\n  - id: 1\n    name: Galata Tower\n    lat: 41.0256\n    lng: 28.9741\n"))
	require.NoError(t, err)
	assert.Equal(t, trip.Istanbul, c.City)
	assert.Equal(t, DefaultCenter, c.Center)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "duplicate id",
			yaml:    "pois:\n  - {id: 1, name: A, lat: 1, lng: 1}\n  - {id: 1, name: B, lat: 2, lng: 2}\n",
			wantErr: "duplicate id 1",
		},
		{
			name:    "missing name",
			yaml:    "pois:\n  - {id: 1, lat: 1, lng: 1}\n",
			wantErr: "name is required",
		},
		{
			name:    "latitude out of range",
			yaml:    "pois:\n  - {id: 1, name: A, lat: 91, lng: 1}\n",
			wantErr: "latitude",
		},
		{
			name:    "nan latitude",
			yaml:    "pois:\n  - {id: 1, name: A, lat: .nan, lng: 1}\n",
			wantErr: "latitude NaN out of range",
		},
		{
			name:    "nan longitude",
			yaml:    "pois:\n  - {id: 1, name: A, lat: 1, lng: .NaN}\n",
			wantErr: "longitude NaN out of range",
		},
		{
			name:    "nan center",
			yaml:    "center: {lat: .nan, lng: 28.97}\npois: []\n",
			wantErr: "center out of range",
		},
		{
			name:    "unknown city",
			yaml:    "city: Narnia\npois: []\n",
			wantErr: "unknown city",
		},
		{
			name:    "not yaml",
			yaml:    "pois: [",
			wantErr: "parsing catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pois.yml")
	require.NoError(t, os.WriteFile(path, []byte("pois:\n  - {id: 7, name: Topkapi Palace, lat: 41.0115, lng: 28.9834}\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	p, ok := c.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "Topkapi Palace", p.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog")
}
