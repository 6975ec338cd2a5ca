package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rezonia/invoice-studio/internal/model"
)

// DiskPlatform delivers artifacts to the local filesystem. It has no
// native share surface, so Share always fails and the dispatcher takes
// the open fallback.
type DiskPlatform struct {
	// Dir receives saved artifacts; empty means the working directory.
	Dir string
}

// CanShare reports false: no native share surface exists on disk.
func (p DiskPlatform) CanShare(Artifact) bool {
	return false
}

// Share is unsupported on this platform.
func (p DiskPlatform) Share(ctx context.Context, a Artifact, meta ShareMeta) error {
	return model.NewDeliveryError(string(ChannelShare), "native sharing not supported on this platform", nil)
}

// Save writes the artifact under its own name into Dir.
func (p DiskPlatform) Save(ctx context.Context, a Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", model.NewDeliveryError(string(ChannelSave), "save aborted", err)
	}
	path := filepath.Join(p.Dir, a.Name)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", model.NewDeliveryError(string(ChannelSave), "failed to write artifact", err)
	}
	return path, nil
}

// Open materializes the artifact in a temporary viewing location and
// returns its path.
func (p DiskPlatform) Open(ctx context.Context, a Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", model.NewDeliveryError(string(ChannelOpen), "open aborted", err)
	}
	f, err := os.CreateTemp("", "invoice-*.pdf")
	if err != nil {
		return "", model.NewDeliveryError(string(ChannelOpen), "failed to create viewing copy", err)
	}
	defer f.Close()
	if _, err := f.Write(a.Data); err != nil {
		return "", model.NewDeliveryError(string(ChannelOpen), "failed to write viewing copy", err)
	}
	return f.Name(), nil
}
