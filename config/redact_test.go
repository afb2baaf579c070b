package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/james-lawrence/keystoregen/config"
)

var _ = Describe("Redact", func() {
	It("removes every denylisted key present in the input", func() {
		cfg := config.Configuration{
			"stackname":                "example",
			"server_keystore_password": "s3cret",
			"client_keystore_password": "s3cret",
		}

		redacted := config.Redact(cfg)
		for _, key := range config.KeysToRedact {
			Expect(redacted).ToNot(HaveKey(key))
		}
	})

	It("leaves every other key untouched", func() {
		cfg := config.Configuration{
			"stackname": "example",
			"debug":     true,
		}

		redacted := config.Redact(cfg)
		Expect(redacted["stackname"]).To(Equal("example"))
		Expect(redacted["debug"]).To(Equal(true))
	})

	It("never mutates its input", func() {
		cfg := config.Configuration{
			"stackname":                "example",
			"server_keystore_password": "s3cret",
		}

		config.Redact(cfg)
		Expect(cfg).To(HaveKey("server_keystore_password"))
		Expect(cfg["stackname"]).To(Equal("example"))
	})

	It("treats absent denylisted keys as a no-op", func() {
		cfg := config.Configuration{"stackname": "example"}
		Expect(config.Redact(cfg)).To(HaveLen(1))
	})
})
