// Package romset loads the fixed ROM and PROM regions a board's video
// hardware reads at power-on.
package romset

import (
	"errors"
	"fmt"
	"path"

	"github.com/spf13/afero"
)

// ErrMissingRegion is returned when a required region is absent.
var ErrMissingRegion = errors.New("missing ROM region")

// ErrShortRegion is returned when a region holds fewer bytes than the board
// reads.
var ErrShortRegion = errors.New("short ROM region")

// Region names one ROM region and its size in bytes.
type Region struct {
	Name string
	Size int
}

// Set maps region names to their contents.
type Set map[string][]byte

// Size returns the total size of the regions.
func Size(regions []Region) int {
	n := 0
	for _, r := range regions {
		n += r.Size
	}
	return n
}

// Split cuts a blob holding the regions back to back.
func Split(blob []byte, regions []Region) (Set, error) {
	set := make(Set, len(regions))
	offset := 0
	for _, r := range regions {
		if offset+r.Size > len(blob) {
			return nil, fmt.Errorf("region %q: have %d bytes, need %d: %w",
				r.Name, max(len(blob)-offset, 0), r.Size, ErrShortRegion)
		}
		set[r.Name] = blob[offset : offset+r.Size]
		offset += r.Size
	}
	return set, nil
}

// Load reads each region from a file of the same name in dir.
func Load(fs afero.Fs, dir string, regions []Region) (Set, error) {
	set := make(Set, len(regions))
	for _, r := range regions {
		name := path.Join(dir, r.Name)
		ok, err := afero.Exists(fs, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("region %q: %w", r.Name, ErrMissingRegion)
		}
		data, err := afero.ReadFile(fs, name)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", r.Name, err)
		}
		if len(data) < r.Size {
			return nil, fmt.Errorf("region %q: have %d bytes, need %d: %w",
				r.Name, len(data), r.Size, ErrShortRegion)
		}
		set[r.Name] = data[:r.Size]
	}
	return set, nil
}

// Require checks that set holds region r with at least r.Size bytes.
func (s Set) Require(r Region) ([]byte, error) {
	data, ok := s[r.Name]
	if !ok {
		return nil, fmt.Errorf("region %q: %w", r.Name, ErrMissingRegion)
	}
	if len(data) < r.Size {
		return nil, fmt.Errorf("region %q: have %d bytes, need %d: %w",
			r.Name, len(data), r.Size, ErrShortRegion)
	}
	return data, nil
}

// Concat joins the regions of set in table order, the inverse of Split.
func Concat(set Set, regions []Region) []byte {
	out := make([]byte, 0, Size(regions))
	for _, r := range regions {
		data := set[r.Name]
		if len(data) > r.Size {
			data = data[:r.Size]
		}
		out = append(out, data...)
		out = append(out, make([]byte, r.Size-len(data))...)
	}
	return out
}
