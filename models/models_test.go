package models_test

import (
	"time"

	. "code.doorsys.dev/console/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Models", func() {
	Describe("NewCustomer", func() {
		Describe("Validate", func() {
			It("succeeds for a valid customer", func() {
				c := NewCustomer{Name: "Acme", Email: "ops@acme.example"}
				Expect(c.Validate()).To(Succeed())
			})

			It("fails for missing name", func() {
				c := NewCustomer{Name: "  ", Email: "ops@acme.example"}
				err := c.Validate()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal("Customer requires a name"))
			})

			It("fails for missing email", func() {
				c := NewCustomer{Name: "Acme"}
				Expect(c.Validate()).To(MatchError("Email is required"))
			})

			It("fails for a malformed email", func() {
				c := NewCustomer{Name: "Acme", Email: "not-an-address"}
				Expect(c.Validate()).To(MatchError("Email is not a valid address"))
			})
		})
	})

	Describe("NewUser", func() {
		Describe("Validate", func() {
			It("succeeds for a valid user", func() {
				Expect(NewUser{Name: "Ada", Email: "ada@example.com"}.Validate()).To(Succeed())
			})

			It("fails for missing name", func() {
				Expect(NewUser{Email: "ada@example.com"}.Validate()).To(MatchError("User requires a name"))
			})
		})
	})

	Describe("NewStaff", func() {
		var staff NewStaff

		BeforeEach(func() {
			staff = NewStaff{CustomerID: 3, Name: "Grace", Phone: "555-0100"}
		})

		It("succeeds for valid staff without a fob", func() {
			Expect(staff.Validate()).To(Succeed())
		})

		It("requires a customer", func() {
			staff.CustomerID = 0
			Expect(staff.Validate()).To(MatchError("Staff must belong to a customer"))
		})

		It("requires a name and phone", func() {
			staff.Name = " "
			Expect(staff.Validate()).To(MatchError("Staff requires a name"))

			staff.Name = "Grace"
			staff.Phone = ""
			Expect(staff.Validate()).To(MatchError("Staff requires a phone number"))
		})

		It("rejects a non-positive fob", func() {
			fob := 0
			staff.Fob = &fob
			Expect(staff.Validate()).To(MatchError("Fob must be a positive number"))
		})
	})

	Describe("Code", func() {
		It("succeeds for a pin or fob code", func() {
			Expect(Code{Code: "123456", UserID: 1, CodeType: PinCode}.Validate()).To(Succeed())
			Expect(Code{Code: "9911", UserID: 1, CodeType: FobCode}.Validate()).To(Succeed())
		})

		It("rejects unknown types", func() {
			Expect(Code{Code: "1", UserID: 1, CodeType: "badge"}.Validate()).To(MatchError(`Unknown code type "badge"`))
		})

		It("requires digits", func() {
			Expect(Code{Code: "12a4", UserID: 1, CodeType: PinCode}.Validate()).To(MatchError("Code must contain only digits"))
			Expect(Code{Code: "", UserID: 1, CodeType: PinCode}.Validate()).To(MatchError("Code is required"))
		})

		It("requires a user", func() {
			Expect(Code{Code: "1234", CodeType: PinCode}.Validate()).To(MatchError("Code must belong to a user"))
		})
	})

	Describe("EntryLogFilter", func() {
		var (
			start  time.Time
			filter EntryLogFilter
		)

		BeforeEach(func() {
			start = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
			filter = EntryLogFilter{Start: start, End: start.Add(24 * time.Hour)}
		})

		Describe("Validate", func() {
			It("succeeds for an ordered range", func() {
				Expect(filter.Validate()).To(Succeed())
			})

			It("fails when the range is missing", func() {
				Expect(EntryLogFilter{}.Validate()).To(HaveOccurred())
			})

			It("fails when end is not after start", func() {
				filter.End = start
				Expect(filter.Validate()).To(MatchError("End date must be after start date"))
			})
		})

		Describe("Query", func() {
			It("encodes the range in RFC3339", func() {
				query := filter.Query()
				Expect(query.Get("startDate")).To(Equal("2024-03-01T08:00:00Z"))
				Expect(query.Get("endDate")).To(Equal("2024-03-02T08:00:00Z"))
				Expect(query.Has("deviceId")).To(BeFalse())
				Expect(query.Has("customerId")).To(BeFalse())
			})

			It("includes the optional device and customer", func() {
				device, customer := int64(3), int64(42)
				filter.DeviceID = &device
				filter.CustomerID = &customer

				query := filter.Query()
				Expect(query.Get("deviceId")).To(Equal("3"))
				Expect(query.Get("customerId")).To(Equal("42"))
			})
		})
	})
})
