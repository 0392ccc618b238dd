package rom

import "fmt"

// AreaName returns a display name for an area index. Areas 0-3 are the
// four overworlds, 4-b the eight crypts, everything above belongs to
// the end game region.
func AreaName(area byte) string {
	switch {
	case area < CryptFirst:
		return [...]string{"Land", "Subterranean", "Sea", "Sky"}[area]
	case area <= CryptLast:
		return fmt.Sprintf("Crypt %d", area-CryptFirst+1)
	default:
		return fmt.Sprintf("End Game %02x", area)
	}
}
