package lookup

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bedecarroll/example-network/errors"
)

// LoadIPAMFile creates an IPAM simulator from a YAML file mapping
// site -> hostname -> interface -> address.
func LoadIPAMFile(path string) (*IPAM, error) {
	var allocations Allocations
	if err := loadYAML(path, &allocations); err != nil {
		return nil, errors.WrapInvalid(err, "IPAM", "LoadIPAMFile", "allocation file load")
	}
	return NewIPAM(allocations), nil
}

// LoadAssetFile creates an asset inventory from a YAML file mapping
// site -> hostname -> serial number.
func LoadAssetFile(path string) (*AssetInventory, error) {
	var assets Assets
	if err := loadYAML(path, &assets); err != nil {
		return nil, errors.WrapInvalid(err, "AssetInventory", "LoadAssetFile", "asset file load")
	}
	return NewAssetInventory(assets), nil
}

func loadYAML(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
