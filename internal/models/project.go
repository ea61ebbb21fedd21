package models

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/svetikas/ttbuild/internal/walker"
)

// ProjectFileName is the optional per-plugin build configuration file.
const ProjectFileName = "ttbuild.yml"

// Project holds build settings for a plugin directory. Every field is
// optional; missing values fall back to the defaults below. Command-line
// flags override whatever the file says.
type Project struct {
	Output OutputConfig `yaml:"output,omitempty"`
	Ignore IgnoreConfig `yaml:"ignore,omitempty"`
}

type OutputConfig struct {
	Directory string `yaml:"directory,omitempty"` // default "output"
	Format    string `yaml:"format,omitempty"`    // "store" is the only supported format
}

type IgnoreConfig struct {
	Extensions  []string `yaml:"extensions,omitempty"`
	Directories []string `yaml:"directories,omitempty"`
	Hidden      *bool    `yaml:"hidden,omitempty"` // items starting with . or _
}

// DefaultProject returns the settings used when no ttbuild.yml exists.
func DefaultProject() *Project {
	hidden := true
	opts := walker.DefaultOptions()
	return &Project{
		Output: OutputConfig{
			Directory: "output",
			Format:    "store",
		},
		Ignore: IgnoreConfig{
			Extensions:  opts.IgnoredExtensions,
			Directories: opts.IgnoredDirs,
			Hidden:      &hidden,
		},
	}
}

// LoadProjectFromFile reads a ttbuild.yml, filling unset fields with
// defaults. A missing file is not an error; it simply yields the defaults.
func LoadProjectFromFile(filename string) (*Project, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProject(), nil
		}
		return nil, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	defaults := DefaultProject()
	if p.Output.Directory == "" {
		p.Output.Directory = defaults.Output.Directory
	}
	if p.Output.Format == "" {
		p.Output.Format = defaults.Output.Format
	}
	if p.Ignore.Extensions == nil {
		p.Ignore.Extensions = defaults.Ignore.Extensions
	}
	if p.Ignore.Directories == nil {
		p.Ignore.Directories = defaults.Ignore.Directories
	}
	if p.Ignore.Hidden == nil {
		p.Ignore.Hidden = defaults.Ignore.Hidden
	}
	return &p, nil
}

// SaveToFile writes the project configuration as YAML.
func (p *Project) SaveToFile(filename string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// WalkerOptions converts the ignore settings into walker options.
func (p *Project) WalkerOptions() walker.Options {
	hidden := true
	if p.Ignore.Hidden != nil {
		hidden = *p.Ignore.Hidden
	}
	return walker.Options{
		IgnoredExtensions: p.Ignore.Extensions,
		IgnoredDirs:       p.Ignore.Directories,
		ExcludeHidden:     hidden,
	}
}
