package receipt

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SanitizeReceipt", func() {
	var receipt *Receipt

	BeforeEach(func() {
		receipt = &Receipt{
			Retailer:     `Bob's "Discount"; Store`,
			PurchaseDate: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
			PurchaseTime: `13:01';`,
			Items: []Item{
				{ShortDescription: `Dave's Bread; "fresh"`, Price: 4.50},
				{ShortDescription: "Gatorade", Price: 2.25},
			},
			Total: 6.75,
		}
		SanitizeReceipt(receipt)
	})

	It("should strip quotes and semicolons from the retailer", func() {
		Expect(receipt.Retailer).To(Equal("Bobs Discount Store"))
	})

	It("should strip quotes and semicolons from the purchase time", func() {
		Expect(receipt.PurchaseTime).To(Equal("13:01"))
	})

	It("should strip quotes and semicolons from every item description", func() {
		Expect(receipt.Items[0].ShortDescription).To(Equal("Daves Bread fresh"))
	})

	It("should leave clean text alone", func() {
		Expect(receipt.Items[1].ShortDescription).To(Equal("Gatorade"))
	})

	It("should not touch numeric or date fields", func() {
		Expect(receipt.Total).To(Equal(6.75))
		Expect(receipt.Items[0].Price).To(Equal(4.50))
		Expect(receipt.PurchaseDate).To(Equal(time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)))
	})

	It("should remove nothing else", func() {
		r := &Receipt{Retailer: "A&B #1 - 50% off!"}
		SanitizeReceipt(r)
		Expect(r.Retailer).To(Equal("A&B #1 - 50% off!"))
	})
})
