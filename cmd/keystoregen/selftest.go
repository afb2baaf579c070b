package main

import (
	"log"

	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/cmd/keystoregen/cmdopts"
	"github.com/james-lawrence/keystoregen/config"
)

// cmdSelfTest resolves configuration and logs entry/exit without doing any
// work. used as a smoke test by container health checks.
type cmdSelfTest struct{}

func (t cmdSelfTest) Run(global *cmdopts.Global) (err error) {
	var (
		cfg config.Configuration
	)

	if cfg, err = config.Resolve(keystoregen.SubcommandSelfTest, nil); err != nil {
		return err
	}

	log.Println(config.EntryTemplate(cfg))
	log.Println(config.ExitTemplate(cfg))

	return nil
}
