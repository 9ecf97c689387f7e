package ui

// AppMode is the top-level application mode.
type AppMode int

const (
	ModeAssets AppMode = iota
	ModeLocations
	ModeAssetDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeAssets:
		return "Assets"
	case ModeLocations:
		return "Locations"
	case ModeAssetDetail:
		return "AssetDetail"
	default:
		return "Unknown"
	}
}
