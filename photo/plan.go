package photo

import (
	"fmt"
	"os"
	"path/filepath"
)

// extensions recognized for renaming. Each entry is matched as its own
// literal glob, so mixed-case variants like "Jpg" are not picked up.
var extensions = []string{"JPG", "jpg", "jpeg"}

// Plan scans dir for image files and builds the ordered old-name →
// new-name batch. Collisions are resolved against a snapshot of the
// directory contents taken once at scan time, plus the names claimed by
// earlier entries in the same batch, so two photos sharing a capture
// timestamp still get distinct targets. Files whose resolved name
// equals their current name are left out of the batch.
func Plan(dir string, readMeta MetadataReader) ([]Rename, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	taken := NewNameSet()
	for _, e := range entries {
		taken.Add(e.Name())
	}

	var batch []Rename
	for _, ext := range extensions {
		matches, err := filepath.Glob(filepath.Join(dir, "*."+ext))
		if err != nil {
			return nil, fmt.Errorf("bad glob for extension %q: %w", ext, err)
		}

		for _, match := range matches {
			original := filepath.Base(match)
			candidate := Derive(original, readMeta(dir, original))
			target := MakeUnique(candidate, taken, original)
			if target == original {
				continue
			}
			taken.Add(target)
			batch = append(batch, Rename{Original: original, Target: target})
		}
	}

	return batch, nil
}
