// internal/validate/validate.go

// Package validate checks design-request inputs against the filesystem:
// geometry files before any engine interaction, and output directories
// including an actual write probe.
package validate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"daedalus-core/diag"
)

// headProbe is how much of the file is inspected for the PLY marker.
const headProbe = 100

// GeometryFile checks that path names a readable, plausible PLY file. It
// must pass before any engine interaction.
func GeometryFile(path string) error {
	if path == "" {
		return diag.GeometryFile(path, "no geometry file given", "")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return diag.GeometryFile(path, "file not found", missingDetails(path))
		}
		if errors.Is(err, fs.ErrPermission) {
			return diag.GeometryFile(path, "permission denied", "cannot access file due to permission restrictions")
		}
		return diag.GeometryFile(path, "cannot access file", err.Error())
	}
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".ply") {
		return diag.GeometryFile(path,
			fmt.Sprintf("expected a .ply file, got %q", ext),
			"the geometry must be a PLY polygon file")
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return diag.GeometryFile(path, "permission denied", "cannot read file due to permission restrictions")
		}
		return diag.GeometryFile(path, "cannot read file", err.Error())
	}
	defer f.Close()

	head := make([]byte, headProbe)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return diag.GeometryFile(path, "cannot read file", err.Error())
	}
	lead := strings.TrimSpace(string(head[:n]))
	if lead == "" {
		return diag.GeometryFile(path, "file is empty", "the PLY file contains no data")
	}
	if !strings.Contains(strings.ToLower(lead), "ply") {
		if len(lead) > 50 {
			lead = lead[:50]
		}
		return diag.GeometryFile(path, "file does not appear to be in PLY format",
			fmt.Sprintf("expected a PLY header, found: %s...", lead))
	}
	return nil
}

// missingDetails lists sibling .ply files next to a missing path to speed
// diagnosis of typos. Best effort only.
func missingDetails(path string) string {
	details := "file path: " + path
	if abs, err := filepath.Abs(path); err == nil {
		details = "file path: " + abs
	}

	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return details
	}
	var siblings []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".ply") {
			siblings = append(siblings, e.Name())
		}
	}
	if len(siblings) == 0 {
		return details
	}
	sort.Strings(siblings)
	return details + "\n\nfound these PLY files in " + dir + ":\n  - " + strings.Join(siblings, "\n  - ")
}

// OutputDir resolves and prepares the output directory for a project. The
// directory is always scoped under a subdirectory named for the project and
// creation is idempotent: pre-existing directories are accepted silently.
// Creation succeeding does not guarantee the directory is writable, so a
// create-then-remove sentinel probe runs as well.
func OutputDir(dir, project string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", diag.OutputDirectory(".", "cannot determine working directory: "+err.Error())
		}
		dir = cwd
	}
	projectDir := filepath.Join(dir, project)

	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			return "", diag.OutputDirectory(projectDir, "permission denied - cannot create directory")
		case errors.Is(err, syscall.ENOSPC):
			return "", diag.OutputDirectory(projectDir, "no space left on device")
		default:
			return "", diag.OutputDirectory(projectDir, "cannot create directory: "+err.Error())
		}
	}

	probe := filepath.Join(projectDir, ".write_test")
	f, err := os.Create(probe)
	if err != nil {
		if errors.Is(err, syscall.ENOSPC) {
			return "", diag.OutputDirectory(projectDir, "no space left on device")
		}
		return "", diag.OutputDirectory(projectDir, "directory exists but is not writable")
	}
	_ = f.Close()
	_ = os.Remove(probe)
	return projectDir, nil
}
