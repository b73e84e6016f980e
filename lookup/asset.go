package lookup

// Positional argument indexes accepted by asset lookups
const (
	assetSiteArg     = 0
	assetHostnameArg = 1
)

// Assets maps site -> hostname -> serial number.
type Assets map[string]map[string]string

// AssetInventory is a minimal asset database simulator keyed by site and hostname
type AssetInventory struct {
	assets Assets
}

// NewAssetInventory creates an asset inventory over the provided records
func NewAssetInventory(assets Assets) *AssetInventory {
	return &AssetInventory{assets: assets}
}

// Lookup returns the serial number for the given device.
// Arguments optionally override lookup keys:
//
//   - arguments[0]: alternate site identifier
//   - arguments[1]: alternate hostname (defaults to provided hostname)
//
// An absent or empty positional argument falls back to the context value.
func (a *AssetInventory) Lookup(site, hostname string, arguments []string) (string, error) {
	siteKey := override(arguments, assetSiteArg, site)
	hostnameKey := override(arguments, assetHostnameArg, hostname)

	if value, ok := a.assets[siteKey][hostnameKey]; ok {
		return value, nil
	}

	return "", &NotFoundError{
		Resource: "asset record",
		Keys: []Key{
			{Name: "site", Value: siteKey},
			{Name: "hostname", Value: hostnameKey},
		},
	}
}
