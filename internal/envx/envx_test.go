package envx_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/james-lawrence/keystoregen/internal/envx"
)

var _ = Describe("String", func() {
	It("returns the first non empty value", func() {
		GinkgoT().Setenv("ENVX_TEST_B", "second")
		Expect(envx.String("fallback", "ENVX_TEST_A", "ENVX_TEST_B")).To(Equal("second"))
	})

	It("falls back when every key is unset", func() {
		Expect(envx.String("fallback", "ENVX_TEST_MISSING")).To(Equal("fallback"))
	})

	It("treats whitespace as unset", func() {
		GinkgoT().Setenv("ENVX_TEST_A", "   ")
		Expect(envx.String("fallback", "ENVX_TEST_A")).To(Equal("fallback"))
	})
})
