// ABOUTME: Version information for the synthesizer
// ABOUTME: Product identity shown by -version and the TUI header
package version

// Overridden at build time with -ldflags "-X .../internal/version.Version=..."
var Version = "0.1.0"

const (
	Product      = "Sound Synthesis"
	Manufacturer = "carrierpigeondev"
)

// String returns the product name with its version
func String() string {
	return Product + " " + Version
}
