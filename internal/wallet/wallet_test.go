package wallet_test

import (
	"paybridge/internal/wallet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Wallet", func() {
	const scheme = byte('W')

	Describe("AddressFromSeed", func() {
		It("should be deterministic", func() {
			addr1, err := wallet.AddressFromSeed("manage manual recall harvest series desert melt police rose hollow moral pledge kitten position add", scheme)
			Expect(err).NotTo(HaveOccurred())

			addr2, err := wallet.AddressFromSeed("manage manual recall harvest series desert melt police rose hollow moral pledge kitten position add", scheme)
			Expect(err).NotTo(HaveOccurred())

			Expect(addr1).To(Equal(addr2))
		})

		It("should derive distinct addresses for distinct seeds", func() {
			addr1, err := wallet.AddressFromSeed("seed one", scheme)
			Expect(err).NotTo(HaveOccurred())

			addr2, err := wallet.AddressFromSeed("seed two", scheme)
			Expect(err).NotTo(HaveOccurred())

			Expect(addr1).NotTo(Equal(addr2))
		})

		It("should produce an address that verifies", func() {
			addr, err := wallet.AddressFromSeed("some wallet seed", scheme)
			Expect(err).NotTo(HaveOccurred())
			Expect(wallet.VerifyAddress(addr, scheme)).To(Succeed())
		})
	})

	Describe("VerifyAddress", func() {
		It("should reject an address built for another scheme", func() {
			addr, err := wallet.AddressFromSeed("some wallet seed", 'T')
			Expect(err).NotTo(HaveOccurred())
			Expect(wallet.VerifyAddress(addr, scheme)).NotTo(Succeed())
		})

		It("should reject garbage", func() {
			Expect(wallet.VerifyAddress("notbase58!!", scheme)).NotTo(Succeed())
		})
	})

	Describe("SecureHash", func() {
		It("should return a 32 byte digest", func() {
			Expect(wallet.SecureHash([]byte("data"))).To(HaveLen(32))
		})

		It("should differ from the blake2b digest alone", func() {
			h1 := wallet.SecureHash([]byte("data"))
			h2 := wallet.SecureHash([]byte("datb"))
			Expect(h1).NotTo(Equal(h2))
		})
	})
})
