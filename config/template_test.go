package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/james-lawrence/keystoregen/config"
)

var _ = Describe("EntryTemplate", func() {
	It("records the start time and embeds the configuration", func() {
		cfg := config.Configuration{"subcommand": "self-test", "debug": false}

		rendered := config.EntryTemplate(cfg)
		Expect(cfg).To(HaveKey("start_time"))
		Expect(rendered).To(ContainSubstring("Enter"))
		Expect(rendered).To(ContainSubstring(`"subcommand":"self-test"`))
	})

	It("omits denylisted keys unless debugging", func() {
		cfg := config.Configuration{"debug": false, "server_keystore_password": "s3cret"}
		Expect(config.EntryTemplate(cfg)).ToNot(ContainSubstring("s3cret"))

		cfg = config.Configuration{"debug": true, "server_keystore_password": "s3cret"}
		Expect(config.EntryTemplate(cfg)).To(ContainSubstring("s3cret"))
	})
})

var _ = Describe("ExitTemplate", func() {
	It("records stop and elapsed time", func() {
		cfg := config.Configuration{"subcommand": "self-test"}

		config.EntryTemplate(cfg)
		rendered := config.ExitTemplate(cfg)
		Expect(cfg).To(HaveKey("stop_time"))
		Expect(cfg).To(HaveKey("elapsed_time"))
		Expect(cfg["elapsed_time"].(float64)).To(BeNumerically(">=", 0))
		Expect(rendered).To(ContainSubstring("Exit"))
	})

	It("reports zero elapsed time when entry was never logged", func() {
		cfg := config.Configuration{"subcommand": "self-test"}

		config.ExitTemplate(cfg)
		Expect(cfg["elapsed_time"]).To(Equal(0.0))
	})
})
