// ABOUTME: Version constants for the Wavkit player
// ABOUTME: Single source of truth for product identification
package version

const (
	// Version is the software version.
	Version = "0.1.0"

	// Product is the product name reported in logs and the UI.
	Product = "Wavkit"
)
