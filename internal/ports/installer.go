package ports

import "context"

// ManifestInstaller installs one requirements manifest.
type ManifestInstaller interface {
	Install(ctx context.Context, manifest string) error
}
