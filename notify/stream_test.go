package notify_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.doorsys.dev/console/notify"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StreamHandler", func() {
	var (
		fakeClock *fakeclock.FakeClock
		logger    *lagertest.TestLogger
		board     *notify.Board
		server    *httptest.Server
		cfg       notify.Config
	)

	BeforeEach(func() {
		fakeClock = fakeclock.NewFakeClock(time.Now())
		logger = lagertest.NewTestLogger("stream")
		cfg = notify.Config{Enabled: true, Position: "top-right", Timeout: 2 * time.Second}
	})

	JustBeforeEach(func() {
		board = notify.NewBoard(cfg, fakeClock, logger)
		server = httptest.NewServer(notify.NewStreamHandler(board, logger))
	})

	AfterEach(func() {
		board.Close()
		server.Close()
	})

	connect := func(session string) (*http.Response, notify.EventSource) {
		req, err := http.NewRequest("GET", server.URL, nil)
		Expect(err).NotTo(HaveOccurred())
		req.AddCookie(&http.Cookie{Name: notify.SessionCookie, Value: session})

		resp, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Header.Get("Content-Type")).To(ContainSubstring("text/event-stream"))

		return resp, notify.NewEventSource(resp.Body)
	}

	It("replays notices still on screen", func() {
		pushed, err := board.Push("session-a", notify.Success, "Saved")
		Expect(err).NotTo(HaveOccurred())

		_, source := connect("session-a")
		defer source.Close()

		notice, err := source.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(notice.ID).To(Equal(pushed.ID))
		Expect(notice.Message).To(Equal("Saved"))
		Expect(notice.Position).To(Equal("top-right"))
		Expect(notice.Timeout).To(Equal(2 * time.Second))
	})

	It("streams new notices for the session only", func() {
		_, source := connect("session-a")
		defer source.Close()

		_, err := board.Push("session-b", notify.Info, "not yours")
		Expect(err).NotTo(HaveOccurred())
		_, err = board.Push("session-a", notify.Error, "Failed to reach API")
		Expect(err).NotTo(HaveOccurred())

		notice, err := source.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(notice.Message).To(Equal("Failed to reach API"))
		Expect(notice.Level).To(Equal(notify.Error))
	})

	It("does not repeat a replayed notice that also arrives from the board", func() {
		pushed, err := board.Push("session-a", notify.Success, "Saved")
		Expect(err).NotTo(HaveOccurred())

		_, source := connect("session-a")
		defer source.Close()

		notice, err := source.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(notice.ID).To(Equal(pushed.ID))

		board.Reemit(pushed)
		_, err = board.Push("session-a", notify.Info, "Next")
		Expect(err).NotTo(HaveOccurred())

		notice, err = source.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(notice.Message).To(Equal("Next"))
	})

	It("issues a session cookie when the browser has none", func() {
		resp, err := http.Get(server.URL)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		var names []string
		for _, c := range resp.Cookies() {
			names = append(names, c.Name)
		}
		Expect(names).To(ContainElement(notify.SessionCookie))
	})

	Context("when notifications are disabled", func() {
		BeforeEach(func() {
			cfg.Enabled = false
		})

		It("is not found", func() {
			resp, err := http.Get(server.URL)
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})
})
