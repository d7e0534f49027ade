package photo

// Metadata maps a metadata field name to its raw value. ASCII EXIF
// fields are stored as strings; other field types keep their native
// representation. A mapping is built fresh per file and never mutated
// after extraction.
type Metadata map[string]any

// Rename is one planned old-name → new-name entry, scoped to a single
// directory scan.
type Rename struct {
	Original string
	Target   string
}

// MetadataReader extracts the metadata mapping for one file inside dir.
// Implementations must return an empty mapping, not an error, for files
// with no extractable metadata.
type MetadataReader func(dir, name string) Metadata

// Mover applies one rename given full source and destination paths.
type Mover func(oldPath, newPath string) error
