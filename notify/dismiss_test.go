package notify_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.doorsys.dev/console/notify"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DismissHandler", func() {
	var (
		cfg      notify.Config
		board    *notify.Board
		handler  *notify.DismissHandler
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		cfg = notify.Config{Enabled: true}
	})

	JustBeforeEach(func() {
		logger := lagertest.NewTestLogger("dismiss")
		board = notify.NewBoard(cfg, fakeclock.NewFakeClock(time.Now()), logger)
		handler = notify.NewDismissHandler(board, logger)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		board.Close()
	})

	dismiss := func(session, id string) {
		req := httptest.NewRequest("POST", "/notifications/dismiss", strings.NewReader(url.Values{"id": {id}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if session != "" {
			req.AddCookie(&http.Cookie{Name: notify.SessionCookie, Value: session})
		}
		handler.ServeHTTP(recorder, req)
	}

	It("drops the notice from the session", func() {
		notice, err := board.Push("session-a", notify.Success, "Saved")
		Expect(err).NotTo(HaveOccurred())

		dismiss("session-a", notice.ID)

		Expect(recorder.Code).To(Equal(http.StatusNoContent))
		Expect(board.Active("session-a")).To(BeEmpty())
	})

	It("leaves other sessions' notices alone", func() {
		notice, err := board.Push("session-a", notify.Success, "Saved")
		Expect(err).NotTo(HaveOccurred())

		dismiss("session-b", notice.ID)

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
		Expect(board.Active("session-a")).To(HaveLen(1))
	})

	It("needs a session cookie", func() {
		dismiss("", "anything")
		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})

	It("needs an id", func() {
		dismiss("session-a", "")
		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})

	It("only accepts POST", func() {
		handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/notifications/dismiss", nil))
		Expect(recorder.Code).To(Equal(http.StatusMethodNotAllowed))
	})

	Context("when notifications are disabled", func() {
		BeforeEach(func() {
			cfg.Enabled = false
		})

		It("is not found", func() {
			dismiss("session-a", "anything")
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
