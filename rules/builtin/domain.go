// Package builtin carries the stock normalization rules shipped with the
// pipeline: per-device cleanups for the demonstration fleet and the
// fleet-wide duplicate address validation.
package builtin

import (
	"fmt"

	"github.com/bedecarroll/example-network/rules"
)

// SiteDomains sets Juniper device domains to include the site slug.
// A device with vendor "juniper" and a string domain field gets
// "<site>.example.com" when its current domain differs.
type SiteDomains struct {
	// Suffix is the domain appended after the site slug. Defaults to
	// "example.com" when empty.
	Suffix string
}

// Apply implements rules.Rule
func (r SiteDomains) Apply(ctx *rules.Context) {
	device := ctx.Device
	if device["vendor"] != "juniper" {
		return
	}

	suffix := r.Suffix
	if suffix == "" {
		suffix = "example.com"
	}

	current, ok := device["domain"].(string)
	if !ok {
		return
	}
	desired := fmt.Sprintf("%s.%s", ctx.Site, suffix)
	if current != desired {
		device["domain"] = desired
	}
}

// GatewayMatches clears the matches list for the NYC01 primary WAN gateway
type GatewayMatches struct{}

// Apply implements rules.Rule
func (r GatewayMatches) Apply(ctx *rules.Context) {
	if ctx.Hostname() == "wgw01.nyc01" {
		ctx.Device["matches"] = []any{}
	}
}
