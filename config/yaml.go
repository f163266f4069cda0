package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the YAML-facing shape of Config; field names are lower-cased
// and hyphen-free so a hand-written config file stays readable.
type document struct {
	Epsilon            *float64 `yaml:"epsilon"`
	BaryEpsilon        *float64 `yaml:"bary_epsilon"`
	MinBBoxArea        *float64 `yaml:"min_bbox_area"`
	LeafSize           *int     `yaml:"leaf_size"`
	FlipCeilingFactor  *int     `yaml:"flip_ceiling_factor"`
	SuperTriangleScale *float64 `yaml:"super_triangle_scale"`
}

// Parse decodes a YAML document from r, layering any fields it sets on top
// of Default, and validates the result.
func Parse(r io.Reader) (Config, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			doc = document{}
		} else {
			return Config{}, fmt.Errorf("config: parse: %w", err)
		}
	}

	c := Default()
	if doc.Epsilon != nil {
		c.Epsilon = *doc.Epsilon
	}
	if doc.BaryEpsilon != nil {
		c.BaryEpsilon = *doc.BaryEpsilon
	}
	if doc.MinBBoxArea != nil {
		c.MinBBoxArea = *doc.MinBBoxArea
	}
	if doc.LeafSize != nil {
		c.LeafSize = *doc.LeafSize
	}
	if doc.FlipCeilingFactor != nil {
		c.FlipCeilingFactor = *doc.FlipCeilingFactor
	}
	if doc.SuperTriangleScale != nil {
		c.SuperTriangleScale = *doc.SuperTriangleScale
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses a YAML config file from path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
