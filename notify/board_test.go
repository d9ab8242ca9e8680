package notify_test

import (
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.doorsys.dev/console/notify"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Board", func() {
	var (
		fakeClock *fakeclock.FakeClock
		logger    *lagertest.TestLogger
		cfg       notify.Config
		board     *notify.Board
	)

	BeforeEach(func() {
		fakeClock = fakeclock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
		logger = lagertest.NewTestLogger("board")
		cfg = notify.Config{Enabled: true}
	})

	JustBeforeEach(func() {
		board = notify.NewBoard(cfg, fakeClock, logger)
	})

	AfterEach(func() {
		board.Close()
	})

	It("defaults to the top-right position and a 2000ms timeout", func() {
		Expect(board.Config().Position).To(Equal("top-right"))
		Expect(board.Config().Timeout).To(Equal(2000 * time.Millisecond))
		Expect(board.Config().TimeoutMillis()).To(BeEquivalentTo(2000))
	})

	Describe("Push", func() {
		It("stamps the notice with the configured position and timeout", func() {
			notice, err := board.Push("session-a", notify.Success, "Customer created")
			Expect(err).NotTo(HaveOccurred())

			Expect(notice.ID).NotTo(BeEmpty())
			Expect(notice.Level).To(Equal(notify.Success))
			Expect(notice.Message).To(Equal("Customer created"))
			Expect(notice.Position).To(Equal("top-right"))
			Expect(notice.Timeout).To(Equal(2 * time.Second))
			Expect(notice.Created).To(Equal(fakeClock.Now()))
		})

		Context("with a custom position and timeout", func() {
			BeforeEach(func() {
				cfg.Position = "bottom-left"
				cfg.Timeout = 5 * time.Second
			})

			It("uses them", func() {
				notice, err := board.Push("session-a", notify.Info, "hello")
				Expect(err).NotTo(HaveOccurred())
				Expect(notice.Position).To(Equal("bottom-left"))
				Expect(notice.Timeout).To(Equal(5 * time.Second))
			})
		})

		Context("when notifications are disabled", func() {
			BeforeEach(func() {
				cfg.Enabled = false
			})

			It("refuses the notice", func() {
				_, err := board.Push("session-a", notify.Info, "hello")
				Expect(err).To(Equal(notify.ErrDisabled))
				Expect(board.Active("session-a")).To(BeEmpty())
			})
		})
	})

	Describe("Active", func() {
		It("keeps sessions apart", func() {
			_, err := board.Push("session-a", notify.Info, "for a")
			Expect(err).NotTo(HaveOccurred())
			_, err = board.Push("session-b", notify.Info, "for b")
			Expect(err).NotTo(HaveOccurred())

			active := board.Active("session-a")
			Expect(active).To(HaveLen(1))
			Expect(active[0].Message).To(Equal("for a"))
		})

		It("dismisses a notice once the timeout has elapsed", func() {
			_, err := board.Push("session-a", notify.Error, "Failed to reach API")
			Expect(err).NotTo(HaveOccurred())

			fakeClock.Increment(1999 * time.Millisecond)
			Expect(board.Active("session-a")).To(HaveLen(1))
			Expect(board.Active("session-a")[0].Remaining(fakeClock.Now())).To(Equal(time.Millisecond))

			fakeClock.Increment(time.Millisecond)
			Expect(board.Active("session-a")).To(BeEmpty())
		})

		It("orders notices oldest first", func() {
			_, err := board.Push("session-a", notify.Info, "first")
			Expect(err).NotTo(HaveOccurred())
			fakeClock.Increment(100 * time.Millisecond)
			_, err = board.Push("session-a", notify.Info, "second")
			Expect(err).NotTo(HaveOccurred())

			active := board.Active("session-a")
			Expect(active).To(HaveLen(2))
			Expect(active[0].Message).To(Equal("first"))
			Expect(active[1].Message).To(Equal("second"))
		})
	})

	Describe("Dismiss", func() {
		It("removes the notice before it expires", func() {
			notice, err := board.Push("session-a", notify.Info, "bye")
			Expect(err).NotTo(HaveOccurred())

			Expect(board.Dismiss("session-a", notice.ID)).To(BeTrue())
			Expect(board.Active("session-a")).To(BeEmpty())
			Expect(board.Dismiss("session-a", notice.ID)).To(BeFalse())
		})
	})

	Describe("Prune", func() {
		It("drops only expired notices", func() {
			_, err := board.Push("session-a", notify.Info, "old")
			Expect(err).NotTo(HaveOccurred())
			fakeClock.Increment(1500 * time.Millisecond)
			_, err = board.Push("session-b", notify.Info, "new")
			Expect(err).NotTo(HaveOccurred())
			Expect(board.Count()).To(Equal(2))

			fakeClock.Increment(500 * time.Millisecond)
			Expect(board.Prune()).To(Equal(1))
			Expect(board.Count()).To(Equal(1))
			Expect(board.Active("session-b")).To(HaveLen(1))
		})
	})

	Describe("ActiveCount", func() {
		It("leaves out expired notices that have not been pruned", func() {
			_, err := board.Push("session-a", notify.Info, "old")
			Expect(err).NotTo(HaveOccurred())
			fakeClock.Increment(1500 * time.Millisecond)
			_, err = board.Push("session-b", notify.Info, "new")
			Expect(err).NotTo(HaveOccurred())
			Expect(board.ActiveCount()).To(Equal(2))

			fakeClock.Increment(500 * time.Millisecond)
			Expect(board.Count()).To(Equal(2))
			Expect(board.ActiveCount()).To(Equal(1))
		})
	})

	Describe("Subscribe", func() {
		It("emits every pushed notice", func() {
			source, err := board.Subscribe()
			Expect(err).NotTo(HaveOccurred())
			defer source.Close()

			pushed, err := board.Push("session-a", notify.Warning, "careful")
			Expect(err).NotTo(HaveOccurred())

			event, err := source.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(event).To(Equal(pushed))
		})
	})
})
