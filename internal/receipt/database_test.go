package receipt

import (
	"errors"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func testReceipt() *Receipt {
	return &Receipt{
		Retailer:     "Target",
		PurchaseDate: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		PurchaseTime: "13:01",
		Items: []Item{
			{ShortDescription: "Gatorade", Price: 2.25},
		},
		Total: 2.25,
	}
}

var _ = Describe("BoltDB", func() {
	var (
		dbPath string
		db     *BoltDB
	)

	BeforeEach(func() {
		dbPath = filepath.Join(GinkgoT().TempDir(), "test.db")
		var err error
		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Describe("SaveReceipt", func() {
		It("should round-trip a receipt through the database", func() {
			Expect(db.SaveReceipt("key-1", testReceipt())).To(Succeed())

			saved, err := db.GetReceipt("key-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.Retailer).To(Equal("Target"))
			Expect(saved.Items).To(HaveLen(1))
			Expect(saved.Scored()).To(BeFalse())
		})

		It("should preserve an attached score", func() {
			receipt := testReceipt()
			points := int64(31)
			receipt.Points = &points
			Expect(db.SaveReceipt("key-1", receipt)).To(Succeed())

			saved, err := db.GetReceipt("key-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.Scored()).To(BeTrue())
			Expect(*saved.Points).To(Equal(int64(31)))
		})
	})

	Describe("GetReceipt", func() {
		When("the key does not exist", func() {
			It("should return ErrReceiptNotFound", func() {
				_, err := db.GetReceipt("missing")
				Expect(errors.Is(err, ErrReceiptNotFound)).To(BeTrue())
			})
		})
	})

	Describe("UpdateReceipt", func() {
		When("the key exists", func() {
			BeforeEach(func() {
				Expect(db.SaveReceipt("key-1", testReceipt())).To(Succeed())
			})

			It("should replace the stored receipt and report true", func() {
				updated := testReceipt()
				points := int64(31)
				updated.Points = &points

				existed, err := db.UpdateReceipt("key-1", updated)
				Expect(err).NotTo(HaveOccurred())
				Expect(existed).To(BeTrue())

				saved, err := db.GetReceipt("key-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(saved.Scored()).To(BeTrue())
			})
		})

		When("the key does not exist", func() {
			It("should report false and write nothing", func() {
				existed, err := db.UpdateReceipt("missing", testReceipt())
				Expect(err).NotTo(HaveOccurred())
				Expect(existed).To(BeFalse())

				_, err = db.GetReceipt("missing")
				Expect(errors.Is(err, ErrReceiptNotFound)).To(BeTrue())
			})
		})
	})

	It("should persist receipts across reopen", func() {
		Expect(db.SaveReceipt("key-1", testReceipt())).To(Succeed())
		Expect(db.Close()).To(Succeed())

		reopened, err := NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer reopened.Close()

		saved, err := reopened.GetReceipt("key-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(saved.Retailer).To(Equal("Target"))

		db = nil
	})
})

var _ = Describe("MemoryDB", func() {
	var db *MemoryDB

	BeforeEach(func() {
		db = NewMemoryDB()
	})

	It("should round-trip a receipt", func() {
		Expect(db.SaveReceipt("key-1", testReceipt())).To(Succeed())

		saved, err := db.GetReceipt("key-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(saved.Retailer).To(Equal("Target"))
	})

	It("should return ErrReceiptNotFound for a missing key", func() {
		_, err := db.GetReceipt("missing")
		Expect(errors.Is(err, ErrReceiptNotFound)).To(BeTrue())
	})

	It("should report false when updating a missing key", func() {
		existed, err := db.UpdateReceipt("missing", testReceipt())
		Expect(err).NotTo(HaveOccurred())
		Expect(existed).To(BeFalse())
	})

	It("should not expose stored state through returned pointers", func() {
		Expect(db.SaveReceipt("key-1", testReceipt())).To(Succeed())

		first, err := db.GetReceipt("key-1")
		Expect(err).NotTo(HaveOccurred())
		first.Retailer = "Mutated"
		first.Items[0].ShortDescription = "Mutated"

		second, err := db.GetReceipt("key-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(second.Retailer).To(Equal("Target"))
		Expect(second.Items[0].ShortDescription).To(Equal("Gatorade"))
	})
})
