package snapshot

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/vabshroo/builgen/pkg/action/generate"
	"github.com/vabshroo/builgen/pkg/builder"
	"github.com/vabshroo/builgen/pkg/manifest"
)

// Generate runs a generation pass and records the result in the manifest.
func Generate(opts *builder.Options, manifestPath, version string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	outFile, err := generate.Run(opts)
	if err != nil {
		return "", err
	}
	if outFile == "" {
		return "", fmt.Errorf("dry runs cannot be snapshotted")
	}

	m.AddSnapshot(manifest.Snapshot{
		Class:   opts.Class,
		Lang:    opts.Lang,
		Version: version,
		File:    outFile,
	})

	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return outFile, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous snapshot files, and returns a textual diff of their contents. An
// empty diff across two runs over an unchanged class is the operational
// check of idempotent regeneration.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", fmt.Errorf("no current/previous snapshots recorded")
	}

	currentPath := m.SnapshotFile(m.CurrentVersion)
	previousPath := m.SnapshotFile(m.PreviousVersion)

	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("snapshot files not found in manifest")
	}

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}

	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
