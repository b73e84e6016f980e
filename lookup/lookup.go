// Package lookup provides the lookup services that back token resolution:
// a simulated IPAM answering interface-address queries and a simulated asset
// inventory answering serial-number queries. Both are keyed by site and
// hostname and accept positional argument overrides, so a token can point at
// a record outside its own device's context.
package lookup

import (
	"fmt"
	"strings"

	"github.com/bedecarroll/example-network/errors"
)

// InterfaceLookup answers site/hostname/interface-scoped queries.
// Arguments optionally override the lookup keys by position.
type InterfaceLookup interface {
	Lookup(site, hostname, iface string, arguments []string) (string, error)
}

// AssetLookup answers site/hostname-scoped queries.
// Arguments optionally override the lookup keys by position.
type AssetLookup interface {
	Lookup(site, hostname string, arguments []string) (string, error)
}

// Key is one attempted lookup key, preserved for diagnostics.
type Key struct {
	Name  string
	Value string
}

// NotFoundError reports a failed lookup together with every attempted key.
type NotFoundError struct {
	Resource string
	Keys     []Key
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	parts := make([]string, 0, len(e.Keys))
	for _, key := range e.Keys {
		parts = append(parts, fmt.Sprintf("%s=%q", key.Name, key.Value))
	}
	return fmt.Sprintf("no %s for %s", e.Resource, strings.Join(parts, ", "))
}

// Is reports that a NotFoundError matches the ErrLookupNotFound sentinel
func (e *NotFoundError) Is(target error) bool {
	return target == errors.ErrLookupNotFound
}

// override returns the positional argument at index when present and
// non-empty, otherwise the fallback from the calling context.
func override(arguments []string, index int, fallback string) string {
	if index < len(arguments) && arguments[index] != "" {
		return arguments[index]
	}
	return fallback
}
