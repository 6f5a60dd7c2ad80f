package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/rounded"
	"github.com/gogpu/rounded/filter"
)

// config is the TOML file read by rivdemo.
//
//	background = "#202020ff"
//	filters = ["grayscale", "contrast:0.2"]
//
//	[view]
//	scale_type = "center_crop"
//	corner_radius = 24
//	border_width = 4
//	border_color = "#ffffffff"
type config struct {
	View rounded.Attributes `toml:"view"`

	// Background is painted behind the image when set.
	Background *rounded.RGBA `toml:"background"`

	// Filters are applied to the image in order. Each entry is a filter
	// name, optionally followed by ":" and a numeric argument.
	Filters []string `toml:"filters"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// filterFactories maps filter names to constructors taking the optional
// argument.
var filterFactories = map[string]func(arg float64) rounded.ColorFilter{
	"grayscale":  func(float64) rounded.ColorFilter { return filter.Grayscale() },
	"sepia":      func(float64) rounded.ColorFilter { return filter.Sepia() },
	"invert":     func(float64) rounded.ColorFilter { return filter.Invert() },
	"brightness": filter.Brightness,
	"contrast":   filter.Contrast,
	"saturation": filter.Saturation,
	"gamma":      filter.Gamma,
	"hue":        func(a float64) rounded.ColorFilter { return filter.Hue(int(a)) },
	"blur":       filter.Blur,
	"opacity":    filter.Opacity,
}

// colorFilter builds the chain named by specs, or nil if specs is empty.
func colorFilter(specs []string) (rounded.ColorFilter, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	filters := make([]rounded.ColorFilter, 0, len(specs))
	for _, spec := range specs {
		name, argText, hasArg := strings.Cut(strings.TrimSpace(spec), ":")
		if strings.HasPrefix(name, "tint") && hasArg {
			c, err := rounded.ParseHex(argText)
			if err != nil {
				return nil, fmt.Errorf("filter %q: %w", spec, err)
			}
			filters = append(filters, filter.Tint(c))
			continue
		}
		factory, ok := filterFactories[name]
		if !ok {
			return nil, fmt.Errorf("unknown filter %q (known: %s)", name, knownFilters())
		}
		var arg float64
		if hasArg {
			if _, err := fmt.Sscanf(argText, "%g", &arg); err != nil {
				return nil, fmt.Errorf("filter %q: bad argument: %w", spec, err)
			}
		}
		filters = append(filters, factory(arg))
	}
	return filter.Chain(filters...), nil
}

func knownFilters() string {
	names := make([]string, 0, len(filterFactories)+1)
	for name := range filterFactories {
		names = append(names, name)
	}
	names = append(names, "tint")
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// transformation mirrors the view attributes, for printing the cache key
// a pipeline would use for the same configuration.
func (c config) transformation() (*rounded.Transformation, error) {
	colors, err := c.View.BorderColors()
	if err != nil {
		return nil, err
	}
	b := rounded.NewTransformationBuilder().
		ScaleType(c.View.ScaleType).
		BorderColors(colors).
		Oval(c.View.Oval)
	for corner, r := range c.View.Radii() {
		b.CornerRadiusAt(rounded.Corner(corner), r)
	}
	if c.View.BorderWidth != nil {
		b.BorderWidth(*c.View.BorderWidth)
	}
	return b.Build(), nil
}
