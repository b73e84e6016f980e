package lookup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/bedecarroll/example-network/errors"
)

func TestAssetInventory_Lookup(t *testing.T) {
	assets := DemoAssetInventory()

	tests := []struct {
		name      string
		site      string
		hostname  string
		arguments []string
		expected  string
	}{
		{
			name:     "context keys only",
			site:     "sfo01",
			hostname: "wgw01.sfo01",
			expected: "FTX2468C01",
		},
		{
			name:      "overrides win over context",
			site:      "bos01",
			hostname:  "wgw01.bos01",
			arguments: []string{"sfo01", "wgw01.sfo01"},
			expected:  "FTX2468C01",
		},
		{
			name:      "hostname override only",
			site:      "nyc01",
			hostname:  "wgw01.nyc01",
			arguments: []string{"", "wgw02.nyc01"},
			expected:  "FTX5678B02",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := assets.Lookup(test.site, test.hostname, test.arguments)
			require.NoError(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestAssetInventory_LookupNotFound(t *testing.T) {
	assets := DemoAssetInventory()

	_, err := assets.Lookup("sfo01", "wgw09.sfo01", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrLookupNotFound))
	assert.Contains(t, err.Error(), `hostname="wgw09.sfo01"`)
}

func TestLoadAssetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.yaml")
	content := `
lax01:
  wgw01.lax01: FTX9999Z01
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	assets, err := LoadAssetFile(path)
	require.NoError(t, err)

	value, err := assets.Lookup("lax01", "wgw01.lax01", nil)
	require.NoError(t, err)
	assert.Equal(t, "FTX9999Z01", value)
}
