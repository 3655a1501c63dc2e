package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/sarifmd/pkg/render"
	"github.com/dkoosis/sarifmd/pkg/report"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".sarifmd.yaml"

// FileConfig represents the contents of .sarifmd.yaml.
type FileConfig struct {
	Title      string           `yaml:"title,omitempty"`
	Sections   []report.Section `yaml:"sections,omitempty"`
	Decoration string           `yaml:"decoration,omitempty"`
	Details    *bool            `yaml:"details,omitempty"` // nil = default (on)
	Theme      string           `yaml:"theme,omitempty"`
	NoColor    bool             `yaml:"no_color,omitempty"`
	LogLevel   string           `yaml:"log_level,omitempty"`
	BotLogin   string           `yaml:"bot_login,omitempty"`
}

// Defaults returns the hardcoded configuration.
func Defaults() FileConfig {
	details := true
	return FileConfig{
		Title:      report.DefaultTitle,
		Sections:   report.DefaultSections(),
		Decoration: string(render.DecorationEmoji),
		Details:    &details,
		Theme:      "default",
	}
}

// Load reads the config file. With an explicit path the file must exist;
// otherwise the discovered file is used if any. It returns the parsed file
// (nil when none was found) and the path it came from.
func Load(explicitPath string) (*FileConfig, string, error) {
	path := explicitPath
	if path == "" {
		path = findConfigPath()
		if path == "" {
			return nil, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, path, nil
}

// findConfigPath checks the working directory first, then the user config dir.
func findConfigPath() string {
	if fileExists(FileName) {
		return FileName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "sarifmd", FileName)
	if fileExists(xdgPath) {
		return xdgPath
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DefaultYAML returns the default configuration as a commented YAML document.
func DefaultYAML() ([]byte, error) {
	body, err := yaml.Marshal(Defaults())
	if err != nil {
		return nil, fmt.Errorf("encode default config: %w", err)
	}
	header := "# sarifmd configuration. Save as " + FileName + " in the repository root.\n" +
		"# decoration: none | emoji | color | both; theme: default | mono;\n" +
		"# log_level: DEBUG | INFO | WARN | ERROR (empty disables logging).\n"
	return append([]byte(header), body...), nil
}
