// Package config decodes the on-disk description of which metadata
// providers a command-line consumer should load and which VersionInfo
// it should request. It is ambient plumbing for cmd/numplan only: the
// core engine packages (digitseq, matcher, phonemeta, classify, parser,
// formatter, metadata) have no notion of a config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/coregx/numplan/metadata"
	"github.com/coregx/numplan/phonemeta"
)

// SourceConfig describes one metadata provider backed by a file on disk.
type SourceConfig struct {
	// Path is the metadata blob's location. Its extension (.json vs
	// anything else) selects the decoder.
	Path string `yaml:"path"`
}

// LoaderConfig is the decoded shape of a loader configuration file.
type LoaderConfig struct {
	Sources []SourceConfig `yaml:"sources"`
	Version struct {
		SchemaURI        string `yaml:"schemaUri"`
		SchemaVersion    int    `yaml:"schemaVersion"`
		MajorDataVersion int    `yaml:"majorDataVersion"`
		MinorDataVersion int    `yaml:"minorDataVersion"`
	} `yaml:"version"`
	MaxConcurrency int `yaml:"maxConcurrency"`
}

// Load decodes a LoaderConfig from a YAML file at path.
func Load(path string) (*LoaderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg LoaderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// RequestedVersion builds the phonemeta.VersionInfo the decoded config
// describes, for use as metadata.LoadAll's requested version.
func (c *LoaderConfig) RequestedVersion() phonemeta.VersionInfo {
	return phonemeta.VersionInfo{
		SchemaURI:        c.Version.SchemaURI,
		SchemaVersion:    c.Version.SchemaVersion,
		MajorDataVersion: c.Version.MajorDataVersion,
		MinorDataVersion: c.Version.MinorDataVersion,
	}
}

// Providers turns the decoded source list into metadata.Providers, one
// per configured file, choosing DecodeJSON for a ".json" extension and
// DecodeBinary otherwise.
func (c *LoaderConfig) Providers() []metadata.Provider {
	providers := make([]metadata.Provider, len(c.Sources))
	for i, src := range c.Sources {
		src := src
		providers[i] = metadata.ProviderFunc(func() (*metadata.Document, error) {
			data, err := os.ReadFile(src.Path)
			if err != nil {
				return nil, fmt.Errorf("config: read source %s: %w", src.Path, err)
			}
			if filepath.Ext(src.Path) == ".json" {
				return metadata.DecodeJSON(data)
			}
			return metadata.DecodeBinary(data)
		})
	}
	return providers
}
