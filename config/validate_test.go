package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/config"
)

var _ = Describe("Validate", func() {
	AfterEach(func() {
		os.Unsetenv(keystoregen.EnvStackName)
	})

	It("produces exactly one error when provisioning without a stack name", func() {
		cfg, err := config.Resolve(keystoregen.SubcommandProvisionCloud, nil)
		Expect(err).To(Succeed())

		warnings, errs := config.Validate(cfg)
		Expect(warnings).To(BeEmpty())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0]).To(ContainSubstring(keystoregen.EnvStackName))
	})

	It("produces zero errors when the stack name is provided", func() {
		cfg, err := config.Resolve(keystoregen.SubcommandProvisionCloud, map[string]string{"stackname": "example"})
		Expect(err).To(Succeed())

		warnings, errs := config.Validate(cfg)
		Expect(warnings).To(BeEmpty())
		Expect(errs).To(BeEmpty())
	})

	It("applies no rules to unrelated subcommands", func() {
		cfg, err := config.Resolve(keystoregen.SubcommandSleep, nil)
		Expect(err).To(Succeed())

		warnings, errs := config.Validate(cfg)
		Expect(warnings).To(BeEmpty())
		Expect(errs).To(BeEmpty())
	})
})
