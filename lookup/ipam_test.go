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

func TestIPAM_Lookup(t *testing.T) {
	ipam := DemoIPAM()

	tests := []struct {
		name      string
		site      string
		hostname  string
		iface     string
		arguments []string
		expected  string
	}{
		{
			name:     "context keys only",
			site:     "nyc01",
			hostname: "wgw01.nyc01",
			iface:    "GigabitEthernet1/1",
			expected: "10.2.0.1/24",
		},
		{
			name:      "site override",
			site:      "nyc01",
			hostname:  "wgw01.nyc01",
			iface:     "GigabitEthernet1/1",
			arguments: []string{"bos01", "wgw01.bos01"},
			expected:  "10.0.0.1/24",
		},
		{
			name:      "full override",
			site:      "nyc01",
			hostname:  "wgw01.nyc01",
			iface:     "GigabitEthernet1/1",
			arguments: []string{"sfo01", "wgw02.sfo01", "ge-0/0/0"},
			expected:  "10.3.0.2/24",
		},
		{
			name:      "empty argument falls back to context",
			site:      "nyc01",
			hostname:  "wgw02.nyc01",
			iface:     "Vlan12",
			arguments: []string{"", "", ""},
			expected:  "10.2.1.21/20",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := ipam.Lookup(test.site, test.hostname, test.iface, test.arguments)
			require.NoError(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestIPAM_LookupNotFound(t *testing.T) {
	ipam := DemoIPAM()

	_, err := ipam.Lookup("lax01", "wgw01.lax01", "ge-0/0/0", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrLookupNotFound))

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), `site="lax01"`)
	assert.Contains(t, err.Error(), `hostname="wgw01.lax01"`)
	assert.Contains(t, err.Error(), `interface="ge-0/0/0"`)
}

func TestLoadIPAMFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ipam.yaml")
	content := `
lax01:
  wgw01.lax01:
    ge-0/0/0: 10.9.0.1/24
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ipam, err := LoadIPAMFile(path)
	require.NoError(t, err)

	value, err := ipam.Lookup("lax01", "wgw01.lax01", "ge-0/0/0", nil)
	require.NoError(t, err)
	assert.Equal(t, "10.9.0.1/24", value)
}

func TestLoadIPAMFile_Missing(t *testing.T) {
	_, err := LoadIPAMFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsInvalid(err))
}
