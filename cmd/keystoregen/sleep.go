package main

import (
	"log"
	"time"

	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/cmd/keystoregen/cmdopts"
	"github.com/james-lawrence/keystoregen/config"
	"github.com/james-lawrence/keystoregen/messages"
)

type cmdSleep struct {
	SleepTimeInSeconds string `name:"sleep-time-in-seconds" help:"sleep time in seconds. default: 0 (infinite)" placeholder:"N"`
}

func (t cmdSleep) Run(global *cmdopts.Global) (err error) {
	var (
		cfg config.Configuration
	)

	if cfg, err = config.Resolve(keystoregen.SubcommandSleep, t.cli()); err != nil {
		return err
	}

	log.Println(config.EntryTemplate(cfg))

	if d := cfg.Int("sleep_time_in_seconds"); d > 0 {
		log.Println(messages.Info(296, d))
		time.Sleep(time.Duration(d) * time.Second)
	} else {
		// loops until a termination signal unwinds the process.
		for {
			log.Println(messages.Info(295))
			time.Sleep(time.Hour)
		}
	}

	log.Println(config.ExitTemplate(cfg))
	return nil
}

func (t cmdSleep) cli() map[string]string {
	return map[string]string{
		"sleep_time_in_seconds": t.SleepTimeInSeconds,
	}
}
