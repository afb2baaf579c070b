package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/cmd/keystoregen/cmdopts"
	"github.com/james-lawrence/keystoregen/messages"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

type cmdVersion struct{}

func (t cmdVersion) Run(global *cmdopts.Global) (err error) {
	var (
		ok    bool
		info  *debug.BuildInfo
		ts    time.Time
		id    string
		dirty bool
	)

	log.Println(messages.Info(294, keystoregen.Version, keystoregen.Updated))

	if info, ok = debug.ReadBuildInfo(); !ok {
		return nil
	}

	au := aurora.NewAurora(isatty.IsTerminal(os.Stdout.Fd()))
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.modified":
			if dirty, err = strconv.ParseBool(v.Value); err != nil {
				return err
			}
		case "vcs.revision":
			id = v.Value
		case "vcs.time":
			if ts, err = time.Parse(time.RFC3339, v.Value); err != nil {
				return err
			}
		}
	}

	if _, err = fmt.Println(info.Main.Path, ts.Format("2006-01-02"), id); err != nil {
		return err
	}

	if dirty {
		if _, err = fmt.Println(au.Red("unsupported modified build")); err != nil {
			return err
		}
	}

	return nil
}
