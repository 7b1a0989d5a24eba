package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/ports"
)

// AddSubmodule registers and clones the external research-code
// repository. Preconditions are checked before any network operation.
type AddSubmodule struct {
	git ports.GitClient
}

func NewAddSubmodule(git ports.GitClient) *AddSubmodule {
	return &AddSubmodule{git: git}
}

func (uc *AddSubmodule) Execute(ctx context.Context, root, url, path, branch string) error {
	if url == "" {
		return &domain.OpError{
			Op:   "submodule.add",
			Kind: domain.KindUsage,
			Err:  fmt.Errorf("repository URL is required"),
		}
	}
	if path == "" {
		return &domain.OpError{
			Op:   "submodule.add",
			Kind: domain.KindUsage,
			Err:  fmt.Errorf("submodule path is required"),
		}
	}

	if !uc.git.IsWorkTree(ctx, root) {
		return &domain.OpError{
			Op:   "submodule.add",
			Kind: domain.KindPrecondition,
			Path: root,
			Hint: "run from inside the scheduling repository checkout",
			Err:  domain.ErrPrecondition,
		}
	}

	target := filepath.Join(root, path)
	if _, err := os.Stat(target); err == nil {
		return &domain.OpError{
			Op:   "submodule.add",
			Kind: domain.KindPrecondition,
			Path: target,
			Hint: fmt.Sprintf("%s already exists; remove it or choose another path", path),
			Err:  domain.ErrPrecondition,
		}
	}

	return uc.git.SubmoduleAdd(ctx, root, url, path, branch)
}
