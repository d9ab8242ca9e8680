package console_test

import (
	"context"
	"net/http"

	console "code.doorsys.dev/console"
	"code.doorsys.dev/console/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Client over TLS", func() {
	var (
		server *ghttp.Server
		client console.Client
		cfg    console.ClientConfig
	)

	BeforeEach(func() {
		server = ghttp.NewTLSServer()
		server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/users"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, []models.User{}),
			),
		)
		cfg = console.ClientConfig{BaseURL: server.URL()}
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		var err error
		client, err = console.NewClient(cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("without skip SSL validation", func() {
		It("fails to connect to the API", func() {
			_, err := client.Users(context.Background())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("x509"))

			var apiErr console.Error
			Expect(err).To(BeAssignableToTypeOf(apiErr))
			Expect(err.(console.Error).Type).To(Equal(console.UnreachableError))
		})
	})

	Context("with skip SSL validation", func() {
		BeforeEach(func() {
			cfg.SkipSSLValidation = true
		})

		It("successfully connects to the API", func() {
			_, err := client.Users(context.Background())
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
