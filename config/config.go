// Package config resolves the per invocation configuration record by merging
// command line values, process environment variables, an optional environment
// file, and declared defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/james-lawrence/keystoregen"
	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

// Field describes how a single configuration key is resolved.
type Field struct {
	Key     string
	Default interface{}
	Env     string
}

// Configuration is the resolved record for one invocation. it is owned by the
// handler that resolved it and is never shared across invocations.
type Configuration map[string]interface{}

// locator declares every resolvable field. precedence for each is strictly
// cli > environment variable > environment file > default.
var locator = []Field{
	{Key: "debug", Default: false, Env: keystoregen.EnvDebug},
	{Key: "delay_in_seconds", Default: 0, Env: keystoregen.EnvDelayInSeconds},
	{Key: "etc_dir", Default: keystoregen.DefaultEtcDir, Env: keystoregen.EnvEtcDir},
	{Key: "sleep_time_in_seconds", Default: 0, Env: keystoregen.EnvSleepTimeInSeconds},
	{Key: "stackname", Default: nil, Env: keystoregen.EnvStackName},
	{Key: "subcommand", Default: nil, Env: keystoregen.EnvSubcommand},
}

// fields requiring coercion from their string forms.
var (
	booleans = []string{"debug"}
	integers = []string{"delay_in_seconds", "sleep_time_in_seconds"}
)

// Resolve merges the configuration sources into a single record. cli values
// are applied both before and after the environment so they always win; the
// first pass seeds values the environment lookup itself depends on, such as
// the directory holding the environment file.
func Resolve(subcommand string, cli map[string]string) (result Configuration, err error) {
	result = make(Configuration, len(locator)+4)

	for _, f := range locator {
		result[f.Key] = f.Default
	}

	apply := func() {
		for k, v := range cli {
			if v != "" {
				result[k] = v
			}
		}
	}

	apply()

	environ := environFile(result.String("etc_dir"))
	for _, f := range locator {
		if f.Env == "" {
			continue
		}

		if v := lookup(environ, f.Env); v != "" {
			result[f.Key] = v
		}
	}

	apply()

	result["program_version"] = keystoregen.Version
	result["program_updated"] = keystoregen.Updated

	// the subcommand selected at dispatch is authoritative.
	if subcommand != "" {
		result["subcommand"] = subcommand
	}

	for _, key := range booleans {
		if s, ok := result[key].(string); ok {
			result[key] = truthy(s)
		}
	}

	for _, key := range integers {
		s, ok := result[key].(string)
		if !ok {
			continue
		}

		parsed, cause := strconv.Atoi(s)
		if cause != nil {
			return nil, errors.WithStack(errors.Wrapf(cause, "unable to coerce %s to an integer", key))
		}

		result[key] = parsed
	}

	return result, nil
}

// environFile parses the optional environment file from the etc directory.
// a missing file is a no-op.
func environFile(etcdir string) map[string]string {
	src, err := os.Open(filepath.Join(etcdir, ".env"))
	if err != nil {
		return nil
	}
	defer src.Close()

	return gotenv.Parse(src)
}

// lookup prefers the process environment over the environment file.
func lookup(environ map[string]string, key string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return strings.TrimSpace(environ[key])
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "t", "y", "yes":
		return true
	default:
		return false
	}
}

// String returns the value at key as a string, empty string when unset or
// not a string.
func (t Configuration) String(key string) string {
	if s, ok := t[key].(string); ok {
		return s
	}

	return ""
}

// Int returns the value at key as an integer, zero when unset.
func (t Configuration) Int(key string) int {
	if i, ok := t[key].(int); ok {
		return i
	}

	return 0
}

// Bool returns the value at key as a boolean, false when unset.
func (t Configuration) Bool(key string) bool {
	if b, ok := t[key].(bool); ok {
		return b
	}

	return false
}
