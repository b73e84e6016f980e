package lookup

// Positional argument indexes accepted by IPAM lookups
const (
	ipamSiteArg      = 0
	ipamHostnameArg  = 1
	ipamInterfaceArg = 2
)

// Allocations maps site -> hostname -> interface -> address with prefix.
type Allocations map[string]map[string]map[string]string

// IPAM is a minimal in-memory IP address management simulator
type IPAM struct {
	allocations Allocations
}

// NewIPAM creates an IPAM simulator over the provided allocations
func NewIPAM(allocations Allocations) *IPAM {
	return &IPAM{allocations: allocations}
}

// Lookup returns the address allocation for the provided context.
// Arguments optionally override lookup keys:
//
//   - arguments[0]: alternate site identifier
//   - arguments[1]: alternate hostname (defaults to provided hostname)
//   - arguments[2]: alternate interface name (defaults to provided interface)
//
// An absent or empty positional argument falls back to the context value.
func (i *IPAM) Lookup(site, hostname, iface string, arguments []string) (string, error) {
	siteKey := override(arguments, ipamSiteArg, site)
	hostnameKey := override(arguments, ipamHostnameArg, hostname)
	interfaceKey := override(arguments, ipamInterfaceArg, iface)

	if value, ok := i.allocations[siteKey][hostnameKey][interfaceKey]; ok {
		return value, nil
	}

	return "", &NotFoundError{
		Resource: "IPAM allocation",
		Keys: []Key{
			{Name: "site", Value: siteKey},
			{Name: "hostname", Value: hostnameKey},
			{Name: "interface", Value: interfaceKey},
		},
	}
}
