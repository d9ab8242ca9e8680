package handlers_test

import (
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
	"github.com/tedsuo/rata"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UsersHandler", func() {
	var (
		client    *fake_console.FakeClient
		board     *notify.Board
		templates *views.TemplateSet
		logger    *lagertest.TestLogger
		handler   *handlers.UsersHandler
		recorder  *httptest.ResponseRecorder

		listRoute   = rata.Route{Name: "UserList", Method: "GET", Path: "/users"}
		createRoute = rata.Route{Name: "CreateUser", Method: "POST", Path: "/users"}
		showRoute   = rata.Route{Name: "UserDetail", Method: "GET", Path: "/users/:id"}
		updateRoute = rata.Route{Name: "UpdateUser", Method: "POST", Path: "/users/:id"}
	)

	BeforeEach(func() {
		client = new(fake_console.FakeClient)
		logger = lagertest.NewTestLogger("users")
		board = notify.NewBoard(notify.Config{Enabled: true}, fakeclock.NewFakeClock(time.Now()), logger)

		var err error
		templates, err = views.NewTemplateSet("/console", nil, board.Config())
		Expect(err).NotTo(HaveOccurred())

		handler, err = handlers.NewUsersHandler(client, templates, handlers.NewFormValidator(time.UTC), board, &fakeErrorCounter{}, logger)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		board.Close()
	})

	It("lists users", func() {
		client.UsersReturns([]models.User{{ID: 1, Name: "Ada", Email: "ada@example.com"}}, nil)

		recorder = serve(listRoute, handler.List, httptest.NewRequest("GET", "/users", nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Body.String()).To(HaveElementText("user-list", ContainSubstring("Ada")))
		Expect(recorder.Body.String()).To(ContainSubstring(`href="/console/users/1"`))
	})

	It("creates a user and redirects below the mount point", func() {
		client.CreateUserReturns(models.User{ID: 8, Name: "Grace"}, nil)

		form := url.Values{"name": {"Grace"}, "email": {"grace@example.com"}}
		recorder = serve(createRoute, handler.Create, newFormRequest("POST", "/users", form))

		Expect(recorder.Code).To(Equal(http.StatusSeeOther))
		Expect(recorder.Header().Get("Location")).To(Equal("/console/users/8"))
		Expect(board.Active(testSession)[0].Message).To(Equal("User Grace created"))
	})

	It("warns about a user without a name", func() {
		recorder = serve(createRoute, handler.Create, newFormRequest("POST", "/users", url.Values{"email": {"x@example.com"}}))

		Expect(recorder.Code).To(Equal(http.StatusSeeOther))
		Expect(recorder.Header().Get("Location")).To(Equal("/console/users"))
		Expect(board.Active(testSession)[0].Message).To(Equal("User requires a name"))
		Expect(client.CreateUserCallCount()).To(BeZero())
	})

	It("shows a user with their access codes", func() {
		client.UserReturns(models.User{ID: 3, Name: "Linus", Email: "linus@example.com"}, nil)
		client.CodesReturns([]models.Code{{Code: "4321", UserID: 3, CodeType: models.PinCode}}, nil)

		recorder = serve(showRoute, handler.Show, httptest.NewRequest("GET", "/users/3", nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Body.String()).To(HaveElementWithID("edit-user"))
		Expect(recorder.Body.String()).To(HaveElementWithID("new-code"))
		Expect(recorder.Body.String()).To(HaveElementText("code-list", ContainSubstring("pin")))
		Expect(recorder.Body.String()).To(ContainSubstring(`action="/console/users/3/codes/4321/delete"`))

		_, userID := client.CodesArgsForCall(0)
		Expect(userID).To(BeEquivalentTo(3))
	})

	It("renders not found for a missing user", func() {
		client.UserReturns(models.User{}, console.Error{Type: console.ResourceNotFoundError, Message: "not found", Status: 404})

		recorder = serve(showRoute, handler.Show, httptest.NewRequest("GET", "/users/3", nil))
		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})

	It("updates a user", func() {
		client.UpdateUserReturns(models.User{ID: 3, Name: "Linus T"}, nil)

		form := url.Values{"name": {"Linus T"}, "email": {"linus@example.com"}}
		recorder = serve(updateRoute, handler.Update, newFormRequest("POST", "/users/3", form))

		Expect(recorder.Code).To(Equal(http.StatusSeeOther))
		_, id, update := client.UpdateUserArgsForCall(0)
		Expect(id).To(BeEquivalentTo(3))
		Expect(update).To(Equal(models.NewUser{Name: "Linus T", Email: "linus@example.com"}))
	})

	Describe("AboutHandler", func() {
		It("shows the API base url", func() {
			about, err := handlers.NewAboutHandler("http://localhost:3000", templates, board, logger)
			Expect(err).NotTo(HaveOccurred())

			recorder = httptest.NewRecorder()
			about.ServeHTTP(recorder, httptest.NewRequest("GET", "/about", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(HaveElementText("api-base-url", Equal("http://localhost:3000")))
		})
	})

	Describe("NotFoundHandler", func() {
		It("renders the not found page with a 404", func() {
			notFound, err := handlers.NewNotFoundHandler(templates, board, logger)
			Expect(err).NotTo(HaveOccurred())

			recorder = httptest.NewRecorder()
			notFound.ServeHTTP(recorder, httptest.NewRequest("GET", "/nowhere", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
			Expect(recorder.Body.String()).To(HaveElementWithID(views.RootElementID))
			Expect(recorder.Body.String()).To(ContainSubstring("/nowhere"))
		})
	})
})
