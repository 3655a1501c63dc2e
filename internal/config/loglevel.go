package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

var logLevelSet = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

// LevelDisabled is above every level slog emits.
const LevelDisabled = slog.LevelError + 1

// LogLevelFlag is a pflag.Value accepting DEBUG, INFO, WARN or ERROR.
// The empty value disables logging.
type LogLevelFlag string

func (f *LogLevelFlag) NotSet() bool {
	return *f == ""
}

func (f *LogLevelFlag) Set(val string) error {
	if val == "" {
		*f = ""
		return nil
	}
	val = strings.ToUpper(val)
	if _, ok := logLevelSet[val]; !ok {
		return fmt.Errorf("unrecognized log level %q (want one of %s)", val, strings.Join(LogLevelEnum(), ", "))
	}
	*f = LogLevelFlag(val)
	return nil
}

func (f *LogLevelFlag) Type() string {
	return "enum"
}

func (f *LogLevelFlag) String() string {
	return string(*f)
}

// Level returns the slog level, or LevelDisabled when unset.
func (f *LogLevelFlag) Level() slog.Level {
	if lvl, ok := logLevelSet[string(*f)]; ok {
		return lvl
	}
	return LevelDisabled
}

// LogLevelEnum lists the accepted names from most to least verbose.
func LogLevelEnum() []string {
	names := make([]string, 0, len(logLevelSet))
	for key := range logLevelSet {
		names = append(names, key)
	}
	sort.Slice(names, func(i, j int) bool {
		return logLevelSet[names[i]] < logLevelSet[names[j]]
	})
	return names
}
