package builtin

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedecarroll/example-network/rules"
)

func applyOne(t *testing.T, rule rules.Rule, device map[string]any, site, sourcePath string) {
	t.Helper()
	engine, err := rules.NewEngine(rules.NewRuleSet().Add(rule), slog.Default(), nil)
	require.NoError(t, err)
	require.NoError(t, engine.Apply(device, site, sourcePath))
}

func TestSiteDomains_Juniper(t *testing.T) {
	device := map[string]any{
		"hostname": "wgw01.nyc01",
		"vendor":   "juniper",
		"domain":   "example.com",
	}

	applyOne(t, SiteDomains{}, device, "nyc01", "nyc01/wgw01.nyc01.json")

	assert.Equal(t, "nyc01.example.com", device["domain"])
}

func TestSiteDomains_SkipsOtherVendors(t *testing.T) {
	device := map[string]any{
		"hostname": "wgw01.bos01",
		"vendor":   "cisco",
		"domain":   "example.com",
	}

	applyOne(t, SiteDomains{}, device, "bos01", "bos01/wgw01.bos01.json")

	assert.Equal(t, "example.com", device["domain"])
}

func TestSiteDomains_SkipsNonStringDomain(t *testing.T) {
	device := map[string]any{
		"vendor": "juniper",
		"domain": 42,
	}

	applyOne(t, SiteDomains{}, device, "sfo01", "sfo01/device.json")

	assert.Equal(t, 42, device["domain"])
}

func TestSiteDomains_CustomSuffix(t *testing.T) {
	device := map[string]any{
		"vendor": "juniper",
		"domain": "example.com",
	}

	applyOne(t, SiteDomains{Suffix: "corp.test"}, device, "sfo01", "sfo01/device.json")

	assert.Equal(t, "sfo01.corp.test", device["domain"])
}

func TestGatewayMatches_ClearsPrimaryGateway(t *testing.T) {
	device := map[string]any{
		"hostname": "wgw01.nyc01",
		"matches":  []any{"system|>>|"},
	}

	applyOne(t, GatewayMatches{}, device, "nyc01", "nyc01/wgw01.nyc01.json")

	assert.Equal(t, []any{}, device["matches"])
}

func TestGatewayMatches_LeavesOtherDevices(t *testing.T) {
	device := map[string]any{
		"hostname": "wgw02.nyc01",
		"matches":  []any{"system|>>|"},
	}

	applyOne(t, GatewayMatches{}, device, "nyc01", "nyc01/wgw02.nyc01.json")

	assert.Equal(t, []any{"system|>>|"}, device["matches"])
}
