package redis

const (
	// KeyPrefixDork is the prefix for saved-dork keys
	KeyPrefixDork = "dorkpilot:dork:"
	// KeyAllDorks is the key for the set of all saved-dork IDs
	KeyAllDorks = "dorkpilot:dorks:all"

	// KeyPrefixGeoPreset is the prefix for geo-preset keys
	KeyPrefixGeoPreset = "dorkpilot:geopreset:"
	// KeyAllGeoPresets is the key for the set of all geo-preset IDs
	KeyAllGeoPresets = "dorkpilot:geopresets:all"
)

// DorkKey returns the Redis key for a saved dork by ID
func DorkKey(id string) string {
	return KeyPrefixDork + id
}

// GeoPresetKey returns the Redis key for a geo preset by ID
func GeoPresetKey(id string) string {
	return KeyPrefixGeoPreset + id
}
