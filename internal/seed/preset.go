package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named seeding profile loaded from a YAML file. Presets let
// different environments (demo, load testing, CI) share one seeder binary.
type Preset struct {
	Name        string `yaml:"name"`
	Readers     int    `yaml:"readers"`
	Journalists int    `yaml:"journalists"`
	Editors     int    `yaml:"editors"`
	Publishers  int    `yaml:"publishers"`
	Articles    int    `yaml:"articles"`
	Newsletters int    `yaml:"newsletters"`
	MaxDays     int    `yaml:"max_days"`
	SkipBcrypt  bool   `yaml:"skip_bcrypt"`
	Clean       bool   `yaml:"clean"`
}

// presetFile is the on-disk shape: a list of presets under a single key.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPreset reads the YAML file at path and returns the preset with the
// given name.
func LoadPreset(path, name string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing preset file: %w", err)
	}

	for i := range file.Presets {
		if file.Presets[i].Name == name {
			return &file.Presets[i], nil
		}
	}
	return nil, fmt.Errorf("preset %q not found in %s", name, path)
}

// Options converts a preset into seeder options.
func (p *Preset) Options() Options {
	return Options{
		NumReaders:     p.Readers,
		NumJournalists: p.Journalists,
		NumEditors:     p.Editors,
		NumPublishers:  p.Publishers,
		NumArticles:    p.Articles,
		NumNewsletters: p.Newsletters,
		MaxDays:        p.MaxDays,
		SkipBcrypt:     p.SkipBcrypt,
		Clean:          p.Clean,
	}
}
