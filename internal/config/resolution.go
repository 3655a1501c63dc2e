package config

import (
	"fmt"
	"log/slog"

	"github.com/dkoosis/sarifmd/pkg/render"
	"github.com/dkoosis/sarifmd/pkg/report"
)

// Source names where a resolved value came from.
type Source string

const (
	SourceCLI     Source = "cli"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// CliFlags holds command-line values and whether each was explicitly set.
type CliFlags struct {
	Title      string
	Sections   []string // "Label=path"
	Decoration string
	NoDetails  bool
	Theme      string
	NoColor    bool
	LogLevel   string
	BotLogin   string

	TitleSet      bool
	SectionsSet   bool
	DecorationSet bool
	NoDetailsSet  bool
	ThemeSet      bool
	NoColorSet    bool
	LogLevelSet   bool
	BotLoginSet   bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Title    string
	Sections []report.Section
	Markdown render.MarkdownOptions
	Theme    string
	NoColor  bool
	LogLevel slog.Level
	BotLogin string

	// Resolution metadata (for debugging)
	Sources map[string]Source
}

// Resolve applies CLI > env > file > default. file may be nil.
func Resolve(file *FileConfig, flags CliFlags, env *Env) (*ResolvedConfig, error) {
	defaults := Defaults()
	if file == nil {
		file = &FileConfig{}
	}
	r := &ResolvedConfig{Sources: make(map[string]Source)}

	r.Title = resolveString(r.Sources, "title", flags.Title, flags.TitleSet, env, file.Title, defaults.Title)
	decoration := resolveString(r.Sources, "decoration", flags.Decoration, flags.DecorationSet, env, file.Decoration, defaults.Decoration)
	r.Theme = resolveString(r.Sources, "theme", flags.Theme, flags.ThemeSet, env, file.Theme, defaults.Theme)
	r.BotLogin = resolveString(r.Sources, "bot_login", flags.BotLogin, flags.BotLoginSet, env, file.BotLogin, "")
	logLevel := resolveString(r.Sources, "log_level", flags.LogLevel, flags.LogLevelSet, env, file.LogLevel, "")

	var err error
	if r.Markdown.Decoration, err = render.ParseDecoration(decoration); err != nil {
		return nil, fmt.Errorf("decoration (%s): %w", r.Sources["decoration"], err)
	}
	var lvl LogLevelFlag
	if err := lvl.Set(logLevel); err != nil {
		return nil, fmt.Errorf("log level (%s): %w", r.Sources["log_level"], err)
	}
	r.LogLevel = lvl.Level()

	r.Markdown.Details = resolveDetails(r.Sources, flags, env, file, *defaults.Details)
	r.NoColor = resolveNoColor(r.Sources, flags, env, file)
	if r.NoColor {
		r.Theme = "mono"
	}
	if err := validateTheme(r.Theme); err != nil {
		return nil, fmt.Errorf("theme (%s): %w", r.Sources["theme"], err)
	}

	switch {
	case flags.SectionsSet:
		if r.Sections, err = report.ParseSections(flags.Sections); err != nil {
			return nil, err
		}
		r.Sources["sections"] = SourceCLI
	case len(file.Sections) > 0:
		r.Sections = file.Sections
		r.Sources["sections"] = SourceFile
	default:
		r.Sections = defaults.Sections
		r.Sources["sections"] = SourceDefault
	}
	if err := validateSections(r.Sections); err != nil {
		return nil, fmt.Errorf("sections (%s): %w", r.Sources["sections"], err)
	}
	return r, nil
}

func resolveString(sources map[string]Source, key, flag string, flagSet bool, env *Env, file, def string) string {
	if flagSet {
		sources[key] = SourceCLI
		return flag
	}
	if v, ok := env.String(key); ok {
		sources[key] = SourceEnv
		return v
	}
	if file != "" {
		sources[key] = SourceFile
		return file
	}
	sources[key] = SourceDefault
	return def
}

func resolveDetails(sources map[string]Source, flags CliFlags, env *Env, file *FileConfig, def bool) bool {
	if flags.NoDetailsSet {
		sources["details"] = SourceCLI
		return !flags.NoDetails
	}
	if v, ok := env.Bool("details"); ok {
		sources["details"] = SourceEnv
		return v
	}
	if file.Details != nil {
		sources["details"] = SourceFile
		return *file.Details
	}
	sources["details"] = SourceDefault
	return def
}

func resolveNoColor(sources map[string]Source, flags CliFlags, env *Env, file *FileConfig) bool {
	if flags.NoColorSet {
		sources["no_color"] = SourceCLI
		return flags.NoColor
	}
	if v, ok := env.Bool("no_color"); ok {
		sources["no_color"] = SourceEnv
		return v
	}
	if file.NoColor {
		sources["no_color"] = SourceFile
		return true
	}
	sources["no_color"] = SourceDefault
	return false
}

func validateTheme(name string) error {
	for _, t := range render.Themes() {
		if t == name {
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q", name)
}

func validateSections(sections []report.Section) error {
	for i, s := range sections {
		if s.Label == "" || s.Path == "" {
			return fmt.Errorf("section %d: label and path are required", i+1)
		}
	}
	return nil
}
