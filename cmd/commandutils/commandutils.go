// Package commandutils provides common utility functions for the CLI,
// basically to keep logging, validation policy, and process exit behavior
// consistent across the subcommands.
package commandutils

import (
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/config"
	"github.com/james-lawrence/keystoregen/internal/envx"
	"github.com/james-lawrence/keystoregen/messages"
)

var debugging bool

// LogEnv configures the logging subsystem from the environment and the
// verbosity counter. debug output is enabled by either.
func LogEnv(verbosity int) {
	if debugging {
		return
	}

	level := strings.ToLower(envx.String("info", keystoregen.EnvLogLevel))
	if verbosity > 0 || level == "debug" {
		debugging = true
		log.SetFlags(log.Flags() | log.Lshortfile)
		log.Println(messages.Debug(998))
	}
}

// Debugln logs only when debugging output was enabled.
func Debugln(v ...interface{}) {
	if debugging {
		log.Println(v...)
	}
}

// DebugDump writes an unstructured dump of the value when debugging.
func DebugDump(v interface{}) {
	if debugging {
		log.Println(spew.Sdump(v))
	}
}

// EnsureValid logs the validator's output and terminates the process when
// any error exists. warnings are advisory.
func EnsureValid(c config.Configuration) {
	warnings, errs := config.Validate(c)

	for _, w := range warnings {
		log.Println(w)
	}

	for _, e := range errs {
		log.Println(e)
	}

	if len(warnings) > 0 || len(errs) > 0 {
		log.Println(messages.Info(293))
	}

	if len(errs) > 0 {
		ExitError(697)
	}
}

// ExitError logs the error message and terminates with a failure status.
func ExitError(code int, args ...interface{}) {
	log.Println(messages.Error(code, args...))
	log.Println(messages.Error(698))
	os.Exit(1)
}

// Fatal reports an unhandled failure with its stack and terminates with a
// failure status.
func Fatal(err error) {
	log.Printf("%+v\n", err)
	log.Println(messages.Error(698))
	os.Exit(1)
}
