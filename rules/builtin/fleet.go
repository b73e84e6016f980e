package builtin

import (
	"fmt"
	"net/netip"
	"sort"
	"strings"

	"github.com/bedecarroll/example-network/rules"
)

// DuplicateAddresses is a fleet rule that detects IPv4 addresses allocated
// to more than one interface across the entire device collection.
//
// Addresses are compared by their canonical prefix-stripped value, so
// 10.2.0.1/24 and 10.2.0.1/32 collide. Values that fail CIDR parsing or
// parse as IPv6 are reported individually and excluded from duplicate
// grouping. Devices or interfaces without the expected shape are skipped
// silently.
type DuplicateAddresses struct{}

// allocation records one interface's claim on a canonical address
type allocation struct {
	displayPath string
	iface       string
	hostname    string
	address     string
}

// Review implements rules.FleetRule
func (r DuplicateAddresses) Review(ctx *rules.FleetContext) {
	seen := make(map[netip.Addr][]allocation)

	for _, record := range ctx.Records() {
		interfaces, ok := record.Device["interfaces"].(map[string]any)
		if !ok {
			continue
		}

		// Map iteration order is random; sort so issue order is stable.
		names := make([]string, 0, len(interfaces))
		for name := range interfaces {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			details, ok := interfaces[name].(map[string]any)
			if !ok {
				continue
			}
			value, ok := details["ipv4"].(string)
			if !ok || value == "" {
				continue
			}

			prefix, err := netip.ParsePrefix(strings.TrimSpace(value))
			if err != nil {
				ctx.Issuef("%s: interface %s has unparseable IPv4 address %q: %v",
					record.DisplayPath, name, value, err)
				continue
			}
			if !prefix.Addr().Is4() {
				ctx.Issuef("%s: interface %s has non-IPv4 address %q",
					record.DisplayPath, name, value)
				continue
			}

			addr := prefix.Addr()
			seen[addr] = append(seen[addr], allocation{
				displayPath: record.DisplayPath,
				iface:       name,
				hostname:    record.Hostname(),
				address:     value,
			})
		}
	}

	reportDuplicates(ctx, seen)
}

// reportDuplicates emits one issue per duplicate group, sorted by canonical
// address so failure output is deterministic and diffable.
func reportDuplicates(ctx *rules.FleetContext, seen map[netip.Addr][]allocation) {
	duplicates := make([]netip.Addr, 0, len(seen))
	for addr, allocations := range seen {
		if len(allocations) > 1 {
			duplicates = append(duplicates, addr)
		}
	}
	sort.Slice(duplicates, func(i, j int) bool {
		return duplicates[i].Compare(duplicates[j]) < 0
	})

	for _, addr := range duplicates {
		lines := make([]string, 0, len(seen[addr]))
		for _, entry := range seen[addr] {
			lines = append(lines, fmt.Sprintf("  %s interface %s (%s) %s",
				entry.displayPath, entry.iface, entry.hostname, entry.address))
		}
		ctx.Issuef("Duplicate IPv4 addresses detected: %s is allocated more than once:\n%s",
			addr, strings.Join(lines, "\n"))
	}
}
