package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	console "code.doorsys.dev/console"
	"code.doorsys.dev/console/fake_console"
	"code.doorsys.dev/console/handlers"
	. "code.doorsys.dev/console/matchers"
	"code.doorsys.dev/console/models"
	"code.doorsys.dev/console/notify"
	"code.doorsys.dev/console/views"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/rata"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CustomersHandler", func() {
	var (
		client    *fake_console.FakeClient
		board     *notify.Board
		errs      *fakeErrorCounter
		logger    *lagertest.TestLogger
		handler   *handlers.CustomersHandler
		recorder  *httptest.ResponseRecorder
		fakeClock *fakeclock.FakeClock

		listRoute   = rata.Route{Name: "CustomerList", Method: "GET", Path: "/customers"}
		createRoute = rata.Route{Name: "CreateCustomer", Method: "POST", Path: "/customers"}
		showRoute   = rata.Route{Name: "CustomerDetail", Method: "GET", Path: "/customers/:id"}
		updateRoute = rata.Route{Name: "UpdateCustomer", Method: "POST", Path: "/customers/:id"}
		statusRoute = rata.Route{Name: "UpdateCustomerStatus", Method: "POST", Path: "/customers/:id/status"}
	)

	BeforeEach(func() {
		client = new(fake_console.FakeClient)
		fakeClock = fakeclock.NewFakeClock(time.Now())
		logger = lagertest.NewTestLogger("customers")
		board = notify.NewBoard(notify.Config{Enabled: true}, fakeClock, logger)
		errs = &fakeErrorCounter{}

		templates, err := views.NewTemplateSet("/", nil, board.Config())
		Expect(err).NotTo(HaveOccurred())

		handler, err = handlers.NewCustomersHandler(client, templates, handlers.NewFormValidator(time.UTC), board, errs, logger)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		board.Close()
	})

	Describe("List", func() {
		BeforeEach(func() {
			client.CustomersReturns([]models.Customer{
				{ID: 1, Name: "Acme", Email: "ops@acme.example", Active: true},
				{ID: 2, Name: "Globex", Email: "it@globex.example"},
			}, nil)
		})

		It("renders the customer list into the app root", func() {
			recorder = serve(listRoute, handler.List, httptest.NewRequest("GET", "/customers", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			body := recorder.Body.String()
			Expect(body).To(HaveElementWithID(views.RootElementID))
			Expect(body).To(HaveElementText("customer-list", ContainSubstring("Acme")))
			Expect(body).To(HaveElementText("customer-list", ContainSubstring("Globex")))

			Expect(client.CustomersCallCount()).To(Equal(1))
			_, filter := client.CustomersArgsForCall(0)
			Expect(filter.Active).To(BeNil())
		})

		It("passes the active filter to the API", func() {
			recorder = serve(listRoute, handler.List, httptest.NewRequest("GET", "/customers?active=true", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, filter := client.CustomersArgsForCall(0)
			Expect(filter.Active).NotTo(BeNil())
			Expect(*filter.Active).To(BeTrue())
		})

		It("rejects an unknown filter value", func() {
			recorder = serve(listRoute, handler.List, httptest.NewRequest("GET", "/customers?active=maybe", nil))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(client.CustomersCallCount()).To(BeZero())
		})

		Context("when the API is unreachable", func() {
			BeforeEach(func() {
				client.CustomersReturns(nil, console.NewError(console.UnreachableError, "Cannot reach API: connection refused"))
			})

			It("renders the error page with an error notice", func() {
				recorder = serve(listRoute, handler.List, httptest.NewRequest("GET", "/customers", nil))

				Expect(recorder.Code).To(Equal(http.StatusBadGateway))
				body := recorder.Body.String()
				Expect(body).To(HaveElementText("error-message", ContainSubstring("connection refused")))
				Expect(body).To(HaveElementText("toasts", ContainSubstring("Failed to reach API")))

				Expect(errs.types).To(Equal([]string{console.UnreachableError}))
				Expect(board.Active(testSession)).To(HaveLen(1))
				Expect(board.Active(testSession)[0].Level).To(Equal(notify.Error))
				Expect(logger.Buffer()).To(gbytes.Say("api-request-failed"))
			})
		})
	})

	Describe("Create", func() {
		It("creates the customer and redirects to it with a notice", func() {
			client.CreateCustomerReturns(models.Customer{ID: 9, Name: "Initech", Email: "bill@initech.example", Active: true}, nil)

			form := url.Values{"name": {" Initech "}, "email": {"bill@initech.example"}}
			recorder = serve(createRoute, handler.Create, newFormRequest("POST", "/customers", form))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/customers/9"))

			Expect(client.CreateCustomerCallCount()).To(Equal(1))
			_, newCustomer := client.CreateCustomerArgsForCall(0)
			Expect(newCustomer).To(Equal(models.NewCustomer{Name: "Initech", Email: "bill@initech.example"}))

			notices := board.Active(testSession)
			Expect(notices).To(HaveLen(1))
			Expect(notices[0].Level).To(Equal(notify.Success))
			Expect(notices[0].Message).To(Equal("Customer Initech created"))
		})

		It("sends invalid input back to the list with a warning", func() {
			form := url.Values{"name": {"Initech"}, "email": {"not-an-email"}}
			recorder = serve(createRoute, handler.Create, newFormRequest("POST", "/customers", form))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/customers"))
			Expect(client.CreateCustomerCallCount()).To(BeZero())
			Expect(board.Active(testSession)[0].Message).To(Equal("Email is not a valid address"))
		})

		It("surfaces input the API rejects as a warning", func() {
			client.CreateCustomerReturns(models.Customer{}, console.Error{Type: console.ProcessRequestError, Message: "email already taken", Status: 422})

			form := url.Values{"name": {"Initech"}, "email": {"bill@initech.example"}}
			recorder = serve(createRoute, handler.Create, newFormRequest("POST", "/customers", form))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(board.Active(testSession)[0].Level).To(Equal(notify.Warning))
			Expect(board.Active(testSession)[0].Message).To(Equal("email already taken"))
			Expect(errs.types).To(BeEmpty())
		})
	})

	Describe("Show", func() {
		It("renders the customer with their staff", func() {
			fob := 4411
			client.CustomerReturns(models.Customer{ID: 42, Name: "Acme", Email: "ops@acme.example", Active: true}, nil)
			client.StaffReturns([]models.Staff{{ID: 1, CustomerID: 42, Name: "Sam", Fob: &fob, Active: true}}, nil)

			recorder = serve(showRoute, handler.Show, httptest.NewRequest("GET", "/customers/42", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, id := client.CustomerArgsForCall(0)
			Expect(id).To(BeEquivalentTo(42))
			_, customerID := client.StaffArgsForCall(0)
			Expect(customerID).To(BeEquivalentTo(42))

			body := recorder.Body.String()
			Expect(body).To(HaveElementText("staff-list", ContainSubstring("Sam")))
			Expect(body).To(HaveElementText("staff-list", ContainSubstring("4411")))
			Expect(body).To(HaveElementWithID("new-staff"))
			Expect(body).To(ContainSubstring(`action="/staff/1/pin"`))
			Expect(body).To(ContainSubstring(`name="customer_id" value="42"`))
		})

		It("rejects an id that is not a number", func() {
			recorder = serve(showRoute, handler.Show, httptest.NewRequest("GET", "/customers/abc", nil))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(client.CustomerCallCount()).To(BeZero())
		})

		It("renders the not found page when the API has no such customer", func() {
			client.CustomerReturns(models.Customer{}, console.Error{Type: console.ResourceNotFoundError, Message: "no rows", Status: 404})

			recorder = serve(showRoute, handler.Show, httptest.NewRequest("GET", "/customers/7", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
			Expect(recorder.Body.String()).To(ContainSubstring("/customers/7"))
			Expect(errs.types).To(BeEmpty())
		})

		It("passes the request context to the client", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			client.CustomerReturns(models.Customer{ID: 3}, nil)

			serve(showRoute, handler.Show, httptest.NewRequest("GET", "/customers/3", nil).WithContext(ctx))

			passed, _ := client.CustomerArgsForCall(0)
			Expect(passed).To(Equal(ctx))
		})
	})

	Describe("Update", func() {
		It("saves the customer and redirects back", func() {
			client.UpdateCustomerReturns(models.Customer{ID: 5, Name: "Acme Corp"}, nil)

			form := url.Values{"name": {"Acme Corp"}, "email": {"ops@acme.example"}, "notes": {"VIP"}}
			recorder = serve(updateRoute, handler.Update, newFormRequest("POST", "/customers/5", form))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/customers/5"))
			_, id, update := client.UpdateCustomerArgsForCall(0)
			Expect(id).To(BeEquivalentTo(5))
			Expect(update.Notes).To(Equal("VIP"))
			Expect(board.Active(testSession)[0].Message).To(Equal("Customer Acme Corp saved"))
		})
	})

	Describe("UpdateStatus", func() {
		It("toggles the status and notifies", func() {
			client.UpdateCustomerStatusReturns(models.Customer{ID: 5, Name: "Acme", Active: false}, nil)

			recorder = serve(statusRoute, handler.UpdateStatus, newFormRequest("POST", "/customers/5/status", url.Values{"active": {"false"}}))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			_, id, active := client.UpdateCustomerStatusArgsForCall(0)
			Expect(id).To(BeEquivalentTo(5))
			Expect(active).To(BeFalse())
			Expect(board.Active(testSession)[0].Message).To(Equal("Customer Acme deactivated"))
		})

		It("rejects a missing status", func() {
			recorder = serve(statusRoute, handler.UpdateStatus, newFormRequest("POST", "/customers/5/status", url.Values{}))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(client.UpdateCustomerStatusCallCount()).To(BeZero())
		})
	})
})
