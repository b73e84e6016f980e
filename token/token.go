// Package token resolves placeholder tokens embedded in device fields.
//
// A token is a string of the form <resolver|arg1|arg2|...> occupying the
// entire field value. The resolver name selects a lookup service and the
// positional arguments override the lookup keys taken from the device's own
// context. Strings without token syntax pass through unchanged; they are
// literal values, not errors.
package token

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/bedecarroll/example-network/errors"
	"github.com/bedecarroll/example-network/lookup"
)

// tokenPattern matches the entire trimmed candidate string. The resolver
// name is alphanumeric/underscore and case-insensitive; arguments are any
// run of characters excluding '|' and '>'.
var tokenPattern = regexp.MustCompile(`(?i)^<([a-zA-Z0-9_]+)(?:\|([^>]*))?>$`)

// Resolver names understood by Resolve
const (
	resolverIPAM  = "ipam"
	resolverAsset = "asset"
)

// Resolver parses placeholder strings and dispatches them to the matching
// lookup service
type Resolver struct {
	ipam   lookup.InterfaceLookup
	assets lookup.AssetLookup
	logger *slog.Logger
}

// NewResolver creates a token resolver over the provided lookup services
func NewResolver(ipam lookup.InterfaceLookup, assets lookup.AssetLookup, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		ipam:   ipam,
		assets: assets,
		logger: logger,
	}
}

// Resolve replaces a token with its looked-up value. The candidate string is
// returned unchanged when it does not carry token syntax. An empty iface
// means the caller has no interface context; the ipam resolver requires one.
func (r *Resolver) Resolve(candidate, site, hostname, iface string) (string, error) {
	match := tokenPattern.FindStringSubmatch(strings.TrimSpace(candidate))
	if match == nil {
		return candidate, nil
	}

	name := strings.ToLower(match[1])
	arguments := splitArguments(match[2])

	r.logger.Debug("Resolving token",
		"resolver", name,
		"site", site,
		"hostname", hostname,
		"interface", iface,
		"arguments", arguments)

	switch name {
	case resolverIPAM:
		return r.resolveIPAM(candidate, site, hostname, iface, arguments)
	case resolverAsset:
		return r.resolveAsset(site, hostname, arguments)
	default:
		err := fmt.Errorf("%w: resolver %q is not supported in %q",
			errors.ErrResolution, name, candidate)
		return "", errors.WrapInvalid(err, "Resolver", "Resolve", "resolver dispatch")
	}
}

func (r *Resolver) resolveIPAM(candidate, site, hostname, iface string, arguments []string) (string, error) {
	if iface == "" {
		err := fmt.Errorf("%w: resolver %q requires an interface context (value %q)",
			errors.ErrResolution, resolverIPAM, candidate)
		return "", errors.WrapInvalid(err, "Resolver", "Resolve", "interface context check")
	}

	value, err := r.ipam.Lookup(site, hostname, iface, arguments)
	if err != nil {
		err = fmt.Errorf("%w: %s %s: %w", errors.ErrResolution, hostname, iface, err)
		return "", errors.WrapInvalid(err, "Resolver", "Resolve", "ipam lookup")
	}
	return value, nil
}

func (r *Resolver) resolveAsset(site, hostname string, arguments []string) (string, error) {
	value, err := r.assets.Lookup(site, hostname, arguments)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", errors.ErrResolution, hostname, err)
		return "", errors.WrapInvalid(err, "Resolver", "Resolve", "asset lookup")
	}
	return value, nil
}

// splitArguments derives the positional argument list from the args portion
// of a token. Empty segments are discarded, so a deliberately blank argument
// shifts later positions down instead of holding its slot. Downstream data
// depends on this behavior; see the package tests before changing it.
func splitArguments(raw string) []string {
	if raw == "" {
		return nil
	}
	var arguments []string
	for _, part := range strings.Split(raw, "|") {
		if part != "" {
			arguments = append(arguments, part)
		}
	}
	return arguments
}
