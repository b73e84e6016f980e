package lookup

// DemoIPAM returns an IPAM simulator pre-populated with demonstration data
func DemoIPAM() *IPAM {
	return NewIPAM(demoAllocations)
}

// DemoAssetInventory returns an asset inventory pre-populated with demonstration data
func DemoAssetInventory() *AssetInventory {
	return NewAssetInventory(demoAssets)
}

var demoAllocations = Allocations{
	"bos01": {
		"wgw01.bos01": {
			"GigabitEthernet1/1": "10.0.0.1/24",
			"GigabitEthernet1/2": "10.0.0.1/24",
			"Vlan12":             "10.1.1.20/20",
		},
		"wgw02.bos01": {
			"GigabitEthernet1/1": "10.0.0.2/24",
			"GigabitEthernet1/2": "10.0.0.1/24",
			"Vlan12":             "10.1.1.21/20",
		},
	},
	"nyc01": {
		"wgw01.nyc01": {
			"GigabitEthernet1/1": "10.2.0.1/24",
			"GigabitEthernet1/2": "10.2.0.1/24",
			"Vlan12":             "10.2.1.20/20",
		},
		"wgw02.nyc01": {
			"GigabitEthernet1/1": "10.2.0.2/24",
			"GigabitEthernet1/2": "10.2.0.1/24",
			"Vlan12":             "10.2.1.21/20",
		},
	},
	"sfo01": {
		"wgw01.sfo01": {
			"ge-0/0/0": "10.3.0.1/24",
			"ge-0/0/1": "10.3.0.1/24",
			"vlan.12":  "10.3.1.20/20",
		},
		"wgw02.sfo01": {
			"ge-0/0/0": "10.3.0.2/24",
			"ge-0/0/1": "10.3.0.1/24",
			"vlan.12":  "10.3.1.21/20",
		},
	},
	"sfo02": {
		"wgw01.sfo02": {
			"ge-0/0/0": "10.4.0.1/24",
			"ge-0/0/1": "10.4.0.1/24",
			"vlan.12":  "10.4.1.20/20",
		},
		"wgw02.sfo02": {
			"ge-0/0/0": "10.4.0.2/24",
			"ge-0/0/1": "10.4.0.1/24",
			"vlan.12":  "10.4.1.21/20",
		},
	},
}

var demoAssets = Assets{
	"bos01": {
		"wgw01.bos01": "FTX1234A01",
		"wgw02.bos01": "FTX1234A02",
	},
	"nyc01": {
		"wgw01.nyc01": "FTX5678B01",
		"wgw02.nyc01": "FTX5678B02",
	},
	"sfo01": {
		"wgw01.sfo01": "FTX2468C01",
		"wgw02.sfo01": "FTX2468C02",
	},
	"sfo02": {
		"wgw01.sfo02": "FTX1357D01",
		"wgw02.sfo02": "FTX1357D02",
	},
}
