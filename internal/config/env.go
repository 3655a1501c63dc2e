package config

import (
	"strconv"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variables.
const EnvPrefix = "SARIFMD"

// Env reads configuration from environment variables.
type Env struct {
	v *viper.Viper
}

// NewEnv binds every configuration key to its SARIFMD_* variable.
// no_color additionally falls back to NO_COLOR.
func NewEnv() (*Env, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{"title", "decoration", "details", "theme", "log_level", "bot_login"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	if err := v.BindEnv("no_color", EnvPrefix+"_NO_COLOR", "NO_COLOR"); err != nil {
		return nil, err
	}
	return &Env{v: v}, nil
}

// String returns the value for key and whether it was set.
func (e *Env) String(key string) (string, bool) {
	if e == nil || !e.v.IsSet(key) {
		return "", false
	}
	return e.v.GetString(key), true
}

// Bool returns the parsed value for key. Unparseable values are reported as
// unset, except for no_color where any non-empty value means true.
func (e *Env) Bool(key string) (value, ok bool) {
	s, set := e.String(key)
	if !set {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		if key == "no_color" {
			return true, true
		}
		return false, false
	}
	return b, true
}
