package rulesregistry

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/bedecarroll/example-network/errors"
	"github.com/bedecarroll/example-network/rules"
)

func TestRegister_NilSet(t *testing.T) {
	err := Register(nil)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsFatal(err))
}

func TestRegister_PopulatesSet(t *testing.T) {
	set := rules.NewRuleSet()
	require.NoError(t, Register(set))

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, 1, set.FleetLen())
}

func TestRegister_BuiltinsEndToEnd(t *testing.T) {
	set := rules.NewRuleSet()
	require.NoError(t, Register(set))

	engine, err := rules.NewEngine(set, slog.Default(), nil)
	require.NoError(t, err)
	session := engine.NewSession()

	juniper := map[string]any{
		"hostname": "wgw01.nyc01",
		"vendor":   "juniper",
		"domain":   "example.com",
		"matches":  []any{"system|>>|"},
	}
	require.NoError(t, session.Apply(juniper, "nyc01", "nyc01/wgw01.nyc01.json"))
	require.NoError(t, session.Finalize())

	assert.Equal(t, "nyc01.example.com", juniper["domain"])
	assert.Equal(t, []any{}, juniper["matches"])
}
