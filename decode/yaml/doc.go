// Package yaml provides the YAML decoder used for data-format configuration
// files.
//
// The decoder is built on github.com/goccy/go-yaml and implements the
// confroot.Decoder interface. Because YAML 1.2 is a superset of JSON, the
// same decoder accepts JSON documents without any special handling.
//
// # Section Navigation
//
// Decode accepts a section parameter that selects a subtree of the document
// before unmarshaling. Sections use colon (:) as the separator:
//
//	""                  -> entire document
//	"api"               -> document["api"]
//	"api:permissions"   -> document["api"]["permissions"]
//
// Navigation uses goccy/go-yaml PathString, so the document is not fully
// unmarshaled just to discard everything outside the section.
//
// # Usage
//
//	decoder := yaml.NewDecoder()
//	var cfg ServerConfig
//	err := decoder.Decode(data, &cfg, "server")
//
// A missing section is reported as ErrSectionNotFound; an empty document as
// ErrEmptyData. Both can be tested with errors.Is.
package yaml
