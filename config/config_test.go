package config_test

import (
	"time"

	"code.doorsys.dev/console/config"
	"code.doorsys.dev/console/web"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("NewConfigFromFile", func() {
		Context("when the file exists", func() {
			It("returns a valid Config struct", func() {
				cfg, err := config.NewConfigFromFile("../example_config/example.yml")
				Expect(err).NotTo(HaveOccurred())

				Expect(cfg.Variant).To(Equal(web.CustomersVariant))
				Expect(cfg.ListenPort).To(Equal(8080))
				Expect(cfg.MountPath).To(Equal("/"))
				Expect(cfg.AdminSocket).To(Equal("/tmp/doorsys-console-admin.sock"))
				Expect(cfg.DebugAddress).To(Equal("127.0.0.1:17002"))
				Expect(cfg.LogGuid).To(Equal("doorsys_console"))
				Expect(cfg.MetronConfig.Address).To(Equal("1.2.3.4"))
				Expect(cfg.MetronConfig.Port).To(Equal("4567"))
				Expect(cfg.StatsdEndpoint).To(Equal("localhost:8125"))
				Expect(cfg.StatsdClientFlushInterval).To(Equal(10 * time.Millisecond))
				Expect(cfg.MetricsReportingInterval).To(Equal(500 * time.Millisecond))

				Expect(cfg.API.BaseURL).To(Equal("http://localhost:3000/"))
				Expect(cfg.API.RequestTimeout).To(Equal(5 * time.Second))
				Expect(cfg.API.MaxResponseSize).To(BeEquivalentTo(2 * 1024 * 1024))
				Expect(cfg.API.SkipSSLValidation).To(BeTrue())
				Expect(cfg.API.CACertPath).To(Equal("some-ca-cert"))
				Expect(cfg.API.OAuth).NotTo(BeNil())
				Expect(cfg.API.OAuth.TokenEndpoint).To(Equal("https://uaa.example.com/oauth/token"))
				Expect(cfg.API.OAuth.ClientName).To(Equal("console"))
				Expect(cfg.API.OAuth.Scopes).To(ConsistOf("doorsys.admin"))

				Expect(cfg.Notifications.Enabled).To(BeTrue())
				Expect(cfg.Notifications.Position).To(Equal("top-right"))
				Expect(cfg.Notifications.Timeout).To(Equal(2000 * time.Millisecond))
				Expect(cfg.Notifications.PruneInterval).To(Equal(time.Second))
				Expect(cfg.RelativeBaseURL()).To(BeFalse())
			})

			It("loads the users variant behind the api proxy", func() {
				cfg, err := config.NewConfigFromFile("../example_config/users.yml")
				Expect(err).NotTo(HaveOccurred())

				Expect(cfg.Variant).To(Equal(web.UsersVariant))
				Expect(cfg.API.BaseURL).To(Equal("/api"))
				Expect(cfg.API.Upstream).To(Equal("http://localhost:3000"))
				Expect(cfg.RelativeBaseURL()).To(BeTrue())
				Expect(cfg.Notifications.Enabled).To(BeFalse())
			})

			Context("when a relative base url has no upstream", func() {
				It("returns an error", func() {
					_, err := config.NewConfigFromFile("../example_config/missing_upstream.yml")
					Expect(err).To(MatchError("api.upstream is required when api.base_url is relative"))
				})
			})
		})

		Context("when the file does not exist", func() {
			It("returns an error", func() {
				_, err := config.NewConfigFromFile("notexist")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("NewConfigFromBytes", func() {
		It("applies the defaults", func() {
			cfg, err := config.NewConfigFromBytes([]byte(`log_guid: "my_logs"`))
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Variant).To(Equal(web.CustomersVariant))
			Expect(cfg.ListenPort).To(Equal(config.DefaultListenPort))
			Expect(cfg.MountPath).To(Equal("/"))
			Expect(cfg.API.BaseURL).To(Equal("http://localhost:3000/"))
			Expect(cfg.API.RequestTimeout).To(Equal(config.DefaultRequestTimeout))
			Expect(cfg.API.MaxResponseSize).To(BeEquivalentTo(4 * 1024 * 1024))
			Expect(cfg.Notifications.Position).To(Equal("top-right"))
			Expect(cfg.Notifications.Timeout).To(Equal(2 * time.Second))
			Expect(cfg.Notifications.PruneInterval).To(Equal(config.DefaultPruneInterval))
			Expect(cfg.MetricsReportingInterval).To(Equal(config.DefaultMetricsInterval))
		})

		It("allows the console at the root beside a proxied api", func() {
			cfg, err := config.NewConfigFromBytes([]byte("mount_path: /\napi:\n  base_url: /api\n  upstream: http://localhost:3000"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.RelativeBaseURL()).To(BeTrue())
		})

		DescribeTable("rejects invalid configuration",
			func(yml string, message string) {
				_, err := config.NewConfigFromBytes([]byte(yml))
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(message))
			},
			Entry("unknown variant", `variant: reports`, "reports"),
			Entry("port out of range", `listen_port: 70000`, "Invalid listen_port"),
			Entry("mount path without slash", `mount_path: console`, "mount_path must start with /"),
			Entry("unparseable duration", "api:\n  request_timeout: soon", "invalid api.request_timeout"),
			Entry("zero duration", "notifications:\n  timeout: 0s", "notifications.timeout must be greater than 0"),
			Entry("bad size", "api:\n  max_response_size: lots", "invalid api.max_response_size"),
			Entry("unrooted relative base url", "api:\n  base_url: api", "must be an absolute URL or start with /"),
			Entry("relative upstream", "api:\n  base_url: /api\n  upstream: localhost", "api.upstream must be an absolute URL"),
			Entry("mount on the api proxy", "mount_path: /api\napi:\n  base_url: /api\n  upstream: http://localhost:3000", `mount_path "/api" overlaps api.base_url "/api"`),
			Entry("mount below the api proxy", "mount_path: /api/console/\napi:\n  base_url: /api/\n  upstream: http://localhost:3000", "overlaps api.base_url"),
			Entry("root api proxy", "api:\n  base_url: /\n  upstream: http://localhost:3000", "overlaps api.base_url"),
			Entry("oauth without endpoint", "api:\n  oauth:\n    client_name: console", "No token_endpoint"),
			Entry("oauth without client", "api:\n  oauth:\n    token_endpoint: http://uaa", "No client_name"),
			Entry("unknown position", "notifications:\n  enabled: true\n  position: middle", "Unknown notifications.position"),
			Entry("partial tls", "tls:\n  cert_path: cert.pem", "tls requires both cert_path and key_path"),
			Entry("malformed yaml", "variant: [", "yaml"),
		)
	})
})
