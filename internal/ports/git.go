package ports

import "context"

// GitClient covers the git operations schedenv needs.
type GitClient interface {
	// IsWorkTree reports whether dir is inside a git working tree.
	IsWorkTree(ctx context.Context, dir string) bool

	// SubmoduleAdd registers and clones url at path (relative to dir),
	// tracking branch when it is non-empty.
	SubmoduleAdd(ctx context.Context, dir, url, path, branch string) error

	// SubmoduleUpdate runs a recursive init/update of all submodules.
	SubmoduleUpdate(ctx context.Context, dir string) error
}
