package photo

import (
	"os"
	"path/filepath"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

func init() {
	// Vendor maker-note parsers let a few manufacturer fields decode.
	exif.RegisterParsers(mknote.All...)
}

// fieldCollector copies every walked EXIF field into a Metadata mapping.
type fieldCollector Metadata

func (c fieldCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if s, err := tag.StringVal(); err == nil {
		c[string(name)] = s
		return nil
	}
	if n, err := tag.Int(0); err == nil {
		c[string(name)] = n
		return nil
	}
	c[string(name)] = tag.String()
	return nil
}

// ReadMetadata decodes the EXIF block of the named file into a Metadata
// mapping. Files that cannot be opened or carry no decodable EXIF data
// yield an empty mapping; missing metadata is a fallback trigger, never
// an error.
func ReadMetadata(dir, name string) Metadata {
	md := Metadata{}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return md
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return md
	}

	// fieldCollector never returns an error, so neither does Walk.
	_ = x.Walk(fieldCollector(md))
	return md
}
