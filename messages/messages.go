// Package messages renders the numerically coded, severity banded log lines
// emitted by this program. every line carries a product tag such as
// keystoregen-50320296I so operators can grep aggregated logs by code.
//
// code ranges:
//
//	  1-299 informational
//	300-499 warning
//	500-699 user configuration issues
//	700-899 internal errors
//	900-999 debugging
package messages

import (
	"fmt"

	"github.com/james-lawrence/keystoregen"
)

// severity band suffixes appended to the product tag.
const (
	suffixInfo    = "I"
	suffixWarning = "W"
	suffixError   = "E"
	suffixDebug   = "D"
)

var catalog = map[int]string{
	157: "%s - Creating file",
	293: "For information on warnings and errors, see https://github.com/james-lawrence/keystoregen#errors",
	294: "Version: %s  Updated: %s",
	295: "Sleeping infinitely.",
	296: "Sleeping %d seconds.",
	297: "Enter %s",
	298: "Exit %s",
	299: "%v",
	596: "Unknown subcommand: %s",
	697: "No processing done.",
	698: "Program terminated with error.",
	699: "%v",
	898: "Environment variable / command-line option not set: %s",
	901: "Signal received: %v",
	998: "Debugging enabled.",
	999: "%v",
}

// Band returns the severity band suffix for the given code.
func Band(code int) string {
	switch {
	case code < 300:
		return suffixInfo
	case code < 500:
		return suffixWarning
	case code < 900:
		return suffixError
	default:
		return suffixDebug
	}
}

func render(code int, args ...interface{}) string {
	template, ok := catalog[code]
	if !ok {
		return fmt.Sprintf("No message for code %d.", code)
	}

	return fmt.Sprintf(template, args...)
}

func tagged(suffix string, code int, args ...interface{}) string {
	return fmt.Sprintf("keystoregen-%s%04d%s %s", keystoregen.ProductID, code, suffix, render(code, args...))
}

// Info renders an informational message.
func Info(code int, args ...interface{}) string {
	return tagged(suffixInfo, code, args...)
}

// Warning renders a warning message.
func Warning(code int, args ...interface{}) string {
	return tagged(suffixWarning, code, args...)
}

// Error renders an error message, used for both user configuration issues
// and internal errors.
func Error(code int, args ...interface{}) string {
	return tagged(suffixError, code, args...)
}

// Debug renders a debugging message.
func Debug(code int, args ...interface{}) string {
	return tagged(suffixDebug, code, args...)
}
