package main

import (
	"log"
	"time"

	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/cmd/commandutils"
	"github.com/james-lawrence/keystoregen/cmd/keystoregen/cmdopts"
	"github.com/james-lawrence/keystoregen/config"
	"github.com/james-lawrence/keystoregen/messages"
	"github.com/james-lawrence/keystoregen/provision"
)

type cmdProvisionCloud struct {
	EtcDir         string `name:"etc-dir" help:"location of the etc directory. default: ${default_etc_dir}" placeholder:"DIR"`
	Stackname      string `help:"cloudformation stack name used to derive the secret name" placeholder:"NAME"`
	Debug          bool   `help:"enable debug output"`
	DelayInSeconds string `name:"delay-in-seconds" help:"delay before processing in seconds. default: 0" placeholder:"N"`
}

func (t cmdProvisionCloud) Run(global *cmdopts.Global) (err error) {
	var (
		cfg     config.Configuration
		encoded string
	)

	if cfg, err = config.Resolve(keystoregen.SubcommandProvisionCloud, t.cli()); err != nil {
		return err
	}

	commandutils.EnsureValid(cfg)
	commandutils.DebugDump(cfg)

	log.Println(config.EntryTemplate(cfg))

	if delay := cfg.Int("delay_in_seconds"); delay > 0 {
		log.Println(messages.Info(296, delay))
		time.Sleep(time.Duration(delay) * time.Second)
	}

	if provision.Available() {
		if encoded, err = provision.CreateKeystoreTruststore(global.Context, cfg); err != nil {
			return err
		}

		if err = provision.UploadSecret(global.Context, cfg, encoded); err != nil {
			return err
		}
	}

	log.Println(config.ExitTemplate(cfg))
	return nil
}

func (t cmdProvisionCloud) cli() map[string]string {
	result := map[string]string{
		"etc_dir":          t.EtcDir,
		"stackname":        t.Stackname,
		"delay_in_seconds": t.DelayInSeconds,
	}

	if t.Debug {
		result["debug"] = "true"
	}

	return result
}
