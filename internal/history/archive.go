package history

import (
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/scicalc"
)

// ArchiveVersion is the archive format written by Export.
const ArchiveVersion = 1

// Archive is the document written by Export and read by Import.
type Archive struct {
	Version  int       `yaml:"version"`
	Exported time.Time `yaml:"exported"`
	Entries  []Entry   `yaml:"entries"`
}

// Export writes entries as a YAML archive.
func Export(w io.Writer, entries []Entry) error {
	a := Archive{
		Version:  ArchiveVersion,
		Exported: time.Now().UTC(),
		Entries:  entries,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&a); err != nil {
		return fmt.Errorf("failed to encode archive: %w", err)
	}
	return enc.Close()
}

// Import reads a YAML archive. Entries that give only an answer get their
// mantissa and exponent from it, and entries without IDs get fresh ones.
func Import(r io.Reader) ([]Entry, error) {
	var a Archive
	if err := yaml.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode archive: %w", err)
	}
	if a.Version < 1 || a.Version > ArchiveVersion {
		return nil, fmt.Errorf("unsupported archive version %d", a.Version)
	}
	for i := range a.Entries {
		e := &a.Entries[i]
		if e.Mantissa == 0 && e.Answer != 0 {
			n := scicalc.FromFloat(e.Answer)
			e.Mantissa, e.Exponent = n.Mantissa(), n.Exponent()
		}
		if m := math.Abs(e.Mantissa); m != 0 && (m < 1 || m >= 10) || math.IsNaN(e.Mantissa) {
			return nil, fmt.Errorf("entry %d: mantissa %g is not normalized", i+1, e.Mantissa)
		}
		fill(e)
	}
	return a.Entries, nil
}
