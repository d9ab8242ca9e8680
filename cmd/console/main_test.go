package main_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"path/filepath"

	"code.doorsys.dev/console/admin"
	"code.doorsys.dev/console/cmd/console/testrunner"
	"code.doorsys.dev/console/models"
	"code.doorsys.dev/console/test_helpers"
	"code.doorsys.dev/console/web"
	"github.com/onsi/gomega/ghttp"
	"github.com/tedsuo/ifrit"
	ginkgomon "github.com/tedsuo/ifrit/ginkgomon_v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
	. "github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	It("exits 1 if no config file is provided", func() {
		session := Console()
		Eventually(session).Should(Exit(1))
		Eventually(session).Should(Say("No configuration file provided"))
	})

	It("exits 1 if the config file is invalid", func() {
		session := Console("-config=../../example_config/missing_upstream.yml")
		Eventually(session).Should(Exit(1))
		Eventually(session).Should(Say("failed-load-config"))
		Eventually(session).Should(Say("api.upstream is required when api.base_url is relative"))
	})

	Context("when initialized correctly", func() {
		var (
			upstream    *ghttp.Server
			port        int
			adminSocket string
			process     ifrit.Process
			settings    testrunner.Settings
		)

		BeforeEach(func() {
			upstream = ghttp.NewServer()
			port = test_helpers.NextAvailPort()
			adminSocket = filepath.Join(GinkgoT().TempDir(), "admin.sock")

			settings = testrunner.Settings{
				Variant:       "users",
				ListenPort:    port,
				AdminSocket:   adminSocket,
				BaseURL:       "/api",
				Upstream:      upstream.URL(),
				Notifications: true,
			}
		})

		JustBeforeEach(func() {
			args, err := testrunner.NewArgs(settings)
			Expect(err).NotTo(HaveOccurred())
			process = ginkgomon.Invoke(testrunner.New(consoleBinPath, args))
		})

		AfterEach(func() {
			ginkgomon.Interrupt(process)
			upstream.Close()
		})

		noRedirects := &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}

		It("redirects / to the user listing", func() {
			resp, err := noRedirects.Get(test_helpers.LocalURL(port) + "/")
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusFound))
			Expect(resp.Header.Get("Location")).To(Equal("/users"))
		})

		It("loads users through the proxied API with a JSON content type", func() {
			upstream.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/users"),
				ghttp.VerifyContentType("application/json"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, []models.User{{ID: 1, Name: "Ada", Email: "ada@example.com"}}),
			))

			resp, err := http.Get(test_helpers.LocalURL(port) + "/users")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(upstream.ReceivedRequests()).To(HaveLen(1))
		})

		It("reports activated views on the admin socket", func() {
			resp, err := http.Get(test_helpers.LocalURL(port) + "/about")
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()

			adminClient := http.Client{Transport: &http.Transport{
				DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
					return net.Dial("unix", adminSocket)
				},
			}}
			resp, err = adminClient.Get("http://admin/views")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			var views admin.ViewsResponse
			Expect(json.NewDecoder(resp.Body).Decode(&views)).To(Succeed())
			Expect(views.Variant).To(Equal(web.UsersVariant))
			for _, v := range views.Views {
				Expect(v.Loaded).To(Equal(v.Name == web.AboutRoute), v.Name)
			}
		})

		Context("when mounted below a path", func() {
			BeforeEach(func() {
				settings.MountPath = "/console"
			})

			It("redirects to the prefixed listing", func() {
				resp, err := noRedirects.Get(fmt.Sprintf("%s/console/", test_helpers.LocalURL(port)))
				Expect(err).NotTo(HaveOccurred())
				resp.Body.Close()

				Expect(resp.Header.Get("Location")).To(Equal("/console/users"))
			})
		})
	})
})

func Console(args ...string) *Session {
	session, err := Start(exec.Command(consoleBinPath, args...), GinkgoWriter, GinkgoWriter)
	Expect(err).ToNot(HaveOccurred())

	return session
}

