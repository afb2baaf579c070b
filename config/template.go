package config

import (
	"encoding/json"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/james-lawrence/keystoregen/messages"
)

// EntryTemplate records the start time on the configuration and renders the
// enter message embedding it as sorted key json.
func EntryTemplate(c Configuration) string {
	c["start_time"] = unix(time.Now())
	return messages.Info(297, c.describe())
}

// ExitTemplate records the stop time and elapsed wall clock time on the
// configuration and renders the exit message.
func ExitTemplate(c Configuration) string {
	stop := unix(time.Now())
	c["stop_time"] = stop

	if start, ok := c["start_time"].(float64); ok {
		c["elapsed_time"] = stop - start
	} else {
		c["elapsed_time"] = 0.0
	}

	return messages.Info(298, c.describe())
}

// describe renders the configuration for logging, redacted unless debug is on.
func (t Configuration) describe() string {
	final := t
	if !t.Bool("debug") {
		final = Redact(t)
	}

	encoded, err := json.Marshal(final)
	if err != nil {
		return spew.Sdump(final)
	}

	return string(encoded)
}

func unix(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
