package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input document is empty.
var ErrEmptyData = errors.New("empty data")

// ErrSectionNotFound is returned when the requested section does not exist
// in the document.
var ErrSectionNotFound = errors.New("section not found")

// Decoder implements the confroot.Decoder interface for YAML documents.
// Since YAML 1.2 is a superset of JSON, JSON documents decode as well.
type Decoder struct{}

// NewDecoder creates a new YAML decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode unmarshals a YAML document into target. A non-empty section is a
// colon-separated key path ("api:permissions") naming the subtree to decode
// instead of the whole document; goccy/go-yaml PathString performs the
// navigation.
func (d *Decoder) Decode(data []byte, target any, section string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if section == "" {
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	path, err := yaml.PathString(sectionPath(section))
	if err != nil {
		return fmt.Errorf("invalid section %q: %w", section, err)
	}

	if err := path.Read(bytes.NewReader(data), target); err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrSectionNotFound, section)
		}

		return fmt.Errorf("reading section %q: %w", section, err)
	}

	return nil
}

// sectionPath converts a colon-separated section to goccy/go-yaml PathString
// format: "api:permissions" becomes "$.api.permissions".
func sectionPath(section string) string {
	return "$." + strings.ReplaceAll(section, ":", ".")
}
