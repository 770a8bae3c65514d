package dogs

import "kennel-tycoon/internal/platform/rng"

var (
	namePrefixes = []string{"Max", "Bella", "Charlie", "Lucy", "Cooper", "Luna", "Buddy", "Daisy", "Rocky", "Zoe"}
	nameSuffixes = []string{"II", "III", "Jr", "Sr", "Alpha", "Beta", "Champion", "Star", "Ace", ""}
)

// GenerateName combina prefijo y sufijo; sufijo vacío => solo el prefijo.
func GenerateName(src rng.Source) string {
	prefix := namePrefixes[src.IntN(len(namePrefixes))]
	suffix := nameSuffixes[src.IntN(len(nameSuffixes))]
	if suffix == "" {
		return prefix
	}
	return prefix + " " + suffix
}
