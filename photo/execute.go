package photo

import (
	"fmt"
	"path/filepath"
)

// Execute applies the batch inside dir using move. When clobber is
// false nothing is touched: the default run is a preview. The first
// failed move halts the remaining batch; this is fail-fast on purpose,
// not best-effort.
func Execute(dir string, batch []Rename, clobber bool, move Mover) error {
	if !clobber {
		return nil
	}

	for _, r := range batch {
		oldPath := filepath.Join(dir, r.Original)
		newPath := filepath.Join(dir, r.Target)
		if err := move(oldPath, newPath); err != nil {
			return fmt.Errorf("unable to rename %s: %w", r.Original, err)
		}
	}

	return nil
}
