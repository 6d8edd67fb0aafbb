package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sanjibnarzary/svgling/pkg/errors"
	"github.com/sanjibnarzary/svgling/pkg/layout"
)

// Config mirrors the layout options for TOML decoding. Pointer fields
// distinguish "absent" from an explicit zero, so a config file only
// overrides what it mentions.
//
// Example svgling.toml:
//
//	horizontal_spacing = "even"
//	vertical_align = "center"
//	leaf_padding = 2
//	level_gap = 2.0
//	leaf_nodes_align = true
type Config struct {
	HorizSpacing      *layout.HorizSpacing `toml:"horizontal_spacing"`
	VertAlign         *layout.VertAlign    `toml:"vertical_align"`
	LeafPadding       *int                 `toml:"leaf_padding"`
	LevelGap          *float64             `toml:"level_gap"`
	LeafNodesAlign    *bool                `toml:"leaf_nodes_align"`
	AverageGlyphWidth *float64             `toml:"average_glyph_width"`
	DescendDirect     *bool                `toml:"descend_direct"`
	Debug             *bool                `toml:"debug"`
	FontStyle         *string              `toml:"font_style"`
}

// parseConfig decodes TOML option overrides.
func parseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse options file")
	}
	return cfg, nil
}

// loadConfig reads and decodes a TOML options file.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read options file %s", path)
	}
	return parseConfig(data)
}

// apply overlays the set fields of the config onto o.
func (c Config) apply(o *layout.Options) {
	if c.HorizSpacing != nil {
		o.HorizSpacing = *c.HorizSpacing
	}
	if c.VertAlign != nil {
		o.VertAlign = *c.VertAlign
	}
	if c.LeafPadding != nil {
		o.LeafPadding = *c.LeafPadding
	}
	if c.LevelGap != nil {
		o.LevelGap = *c.LevelGap
	}
	if c.LeafNodesAlign != nil {
		o.LeafNodesAlign = *c.LeafNodesAlign
	}
	if c.AverageGlyphWidth != nil {
		o.AverageGlyphWidth = *c.AverageGlyphWidth
	}
	if c.DescendDirect != nil {
		o.DescendDirect = *c.DescendDirect
	}
	if c.Debug != nil {
		o.Debug = *c.Debug
	}
	if c.FontStyle != nil {
		o.FontStyle = *c.FontStyle
	}
}
