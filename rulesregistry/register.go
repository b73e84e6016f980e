// Package rulesregistry wires the stock rules into a rule set. It is the
// single place that knows every built-in rule and the order they run in;
// callers compose it with their own rules before constructing an engine.
package rulesregistry

import (
	"errors"

	pkgerrors "github.com/bedecarroll/example-network/errors"
	"github.com/bedecarroll/example-network/rules"
	"github.com/bedecarroll/example-network/rules/builtin"
)

// Register appends all built-in rules to the provided rule set.
//
// Device rules (run per device, in this order):
//   - SiteDomains: Juniper domains include the site slug
//   - GatewayMatches: clear matches for the NYC01 primary WAN gateway
//
// Fleet rules (run once over all device records):
//   - DuplicateAddresses: detect IPv4 addresses allocated more than once
func Register(set *rules.RuleSet) error {
	if set == nil {
		return pkgerrors.WrapFatal(
			errors.New("rule set cannot be nil"),
			"RulesRegistry", "Register", "rule set validation")
	}

	set.Add(
		builtin.SiteDomains{},
		builtin.GatewayMatches{},
	)
	set.AddFleet(
		builtin.DuplicateAddresses{},
	)

	return nil
}
