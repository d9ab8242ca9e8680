package console

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/cfhttp/v2"
	"code.cloudfoundry.org/tlsconfig"
	"code.doorsys.dev/console/models"
	"github.com/cloudfoundry/dropsonde"
	"github.com/docker/go-units"
	"github.com/tedsuo/rata"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const DefaultMaxResponseSize = 4 * units.MiB

//go:generate counterfeiter -o fake_console/fake_client.go . Client
type Client interface {
	BaseURL() string
	Health(ctx context.Context) error

	Customers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error)
	Customer(ctx context.Context, id int64) (models.Customer, error)
	CreateCustomer(ctx context.Context, customer models.NewCustomer) (models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, customer models.NewCustomer) (models.Customer, error)
	UpdateCustomerStatus(ctx context.Context, id int64, active bool) (models.Customer, error)
	Staff(ctx context.Context, customerID int64) ([]models.Staff, error)
	CreateStaff(ctx context.Context, staff models.NewStaff) (models.Staff, error)
	UpdateStaff(ctx context.Context, id int64, staff models.NewStaff) (models.Staff, error)
	ResetStaffPin(ctx context.Context, id int64) (models.Staff, error)
	DeleteStaff(ctx context.Context, id int64) error

	EntryLogs(ctx context.Context, filter models.EntryLogFilter) ([]models.EntryLog, error)
	Devices(ctx context.Context) ([]models.Device, error)

	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)
	UpdateUser(ctx context.Context, id int64, user models.NewUser) (models.User, error)

	Codes(ctx context.Context, userID int64) ([]models.Code, error)
	CreateCode(ctx context.Context, code models.Code) (models.Code, error)
	UpdateCode(ctx context.Context, oldCode, newCode string) (models.Code, error)
	DeleteCode(ctx context.Context, code string) error
}

type OAuthConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

type ClientConfig struct {
	// BaseURL is either absolute (http://localhost:3000/) or a path such as
	// /api, which is resolved against Origin.
	BaseURL           string
	Origin            string
	RequestTimeout    time.Duration
	SkipSSLValidation bool
	CACertPath        string
	MaxResponseSize   int64
	OAuth             *OAuthConfig
	Instrumented      bool
}

func NewClient(cfg ClientConfig) (Client, error) {
	baseURL, err := ResolveBaseURL(cfg.BaseURL, cfg.Origin)
	if err != nil {
		return nil, err
	}

	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	maxResponseSize := cfg.MaxResponseSize
	if maxResponseSize <= 0 {
		maxResponseSize = DefaultMaxResponseSize
	}

	return &client{
		httpClient:      httpClient,
		baseURL:         baseURL,
		maxResponseSize: maxResponseSize,

		reqGen: rata.NewRequestGenerator(baseURL, Routes),
	}, nil
}

// ResolveBaseURL returns the absolute API root without a trailing slash.
func ResolveBaseURL(base, origin string) (string, error) {
	if base == "" {
		return "", errors.New("No API base URL specified")
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid API base URL %q: %w", base, err)
	}

	if parsed.IsAbs() {
		if parsed.Host == "" {
			return "", fmt.Errorf("invalid API base URL %q: missing host", base)
		}
		return strings.TrimRight(parsed.String(), "/"), nil
	}

	if !strings.HasPrefix(base, "/") {
		return "", fmt.Errorf("invalid API base URL %q: relative URLs must start with /", base)
	}

	originURL, err := url.Parse(origin)
	if err != nil || !originURL.IsAbs() {
		return "", fmt.Errorf("relative API base URL %q requires an absolute origin", base)
	}

	return strings.TrimRight(originURL.String(), "/") + "/" + strings.Trim(parsed.Path, "/"), nil
}

func newHTTPClient(cfg ClientConfig) (*http.Client, error) {
	var options []cfhttp.Option
	if cfg.RequestTimeout > 0 {
		options = append(options, cfhttp.WithRequestTimeout(cfg.RequestTimeout))
	}

	tlsConfig, err := clientTLSConfig(cfg)
	if err != nil {
		return nil, err
	}
	if tlsConfig != nil {
		options = append(options, cfhttp.WithTLSConfig(tlsConfig))
	}

	httpClient := cfhttp.NewClient(options...)
	if cfg.Instrumented {
		httpClient.Transport = dropsonde.InstrumentedRoundTripper(httpClient.Transport)
	}

	if cfg.OAuth != nil {
		credentials := clientcredentials.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			TokenURL:     cfg.OAuth.TokenURL,
			Scopes:       cfg.OAuth.Scopes,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		oauthClient := credentials.Client(ctx)
		oauthClient.Timeout = httpClient.Timeout
		return oauthClient, nil
	}

	return httpClient, nil
}

func clientTLSConfig(cfg ClientConfig) (*tls.Config, error) {
	var tlsConfig *tls.Config
	if cfg.CACertPath != "" {
		var err error
		tlsConfig, err = tlsconfig.Build(
			tlsconfig.WithInternalServiceDefaults(),
		).Client(
			tlsconfig.WithAuthorityFromFile(cfg.CACertPath),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build API TLS config: %w", err)
		}
	}

	if cfg.SkipSSLValidation {
		if tlsConfig == nil {
			tlsConfig = &tls.Config{}
		}
		tlsConfig.InsecureSkipVerify = true
	}

	return tlsConfig, nil
}

type client struct {
	httpClient      *http.Client
	baseURL         string
	maxResponseSize int64

	reqGen *rata.RequestGenerator
}

func (c *client) BaseURL() string {
	return c.baseURL
}

func (c *client) Health(ctx context.Context) error {
	return c.doRequest(ctx, HealthRoute, nil, nil, nil, nil)
}

func (c *client) Customers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	var query url.Values
	if filter.Active != nil {
		query = url.Values{"active": []string{strconv.FormatBool(*filter.Active)}}
	}

	var customers []models.Customer
	err := c.doRequest(ctx, ListCustomersRoute, nil, query, nil, &customers)
	return customers, err
}

func (c *client) Customer(ctx context.Context, id int64) (models.Customer, error) {
	var customer models.Customer
	err := c.doRequest(ctx, GetCustomerRoute, idParams(id), nil, nil, &customer)
	return customer, err
}

func (c *client) CreateCustomer(ctx context.Context, newCustomer models.NewCustomer) (models.Customer, error) {
	var customer models.Customer
	err := c.doRequest(ctx, CreateCustomerRoute, nil, nil, newCustomer, &customer)
	return customer, err
}

func (c *client) UpdateCustomer(ctx context.Context, id int64, newCustomer models.NewCustomer) (models.Customer, error) {
	var customer models.Customer
	err := c.doRequest(ctx, UpdateCustomerRoute, idParams(id), nil, newCustomer, &customer)
	return customer, err
}

func (c *client) UpdateCustomerStatus(ctx context.Context, id int64, active bool) (models.Customer, error) {
	var customer models.Customer
	err := c.doRequest(ctx, UpdateCustomerStatusRoute, idParams(id), nil, models.CustomerStatus{Active: active}, &customer)
	return customer, err
}

func (c *client) Staff(ctx context.Context, customerID int64) ([]models.Staff, error) {
	var staff []models.Staff
	err := c.doRequest(ctx, ListStaffRoute, idParams(customerID), nil, nil, &staff)
	return staff, err
}

func (c *client) CreateStaff(ctx context.Context, newStaff models.NewStaff) (models.Staff, error) {
	var staff models.Staff
	err := c.doRequest(ctx, CreateStaffRoute, nil, nil, newStaff, &staff)
	return staff, err
}

func (c *client) UpdateStaff(ctx context.Context, id int64, update models.NewStaff) (models.Staff, error) {
	var staff models.Staff
	err := c.doRequest(ctx, UpdateStaffRoute, idParams(id), nil, update, &staff)
	return staff, err
}

// ResetStaffPin asks the backend to generate a new PIN; the returned staff
// carries it.
func (c *client) ResetStaffPin(ctx context.Context, id int64) (models.Staff, error) {
	var staff models.Staff
	err := c.doRequest(ctx, ResetStaffPinRoute, idParams(id), nil, nil, &staff)
	return staff, err
}

func (c *client) DeleteStaff(ctx context.Context, id int64) error {
	return c.doRequest(ctx, DeleteStaffRoute, idParams(id), nil, nil, nil)
}

func (c *client) EntryLogs(ctx context.Context, filter models.EntryLogFilter) ([]models.EntryLog, error) {
	var entries []models.EntryLog
	err := c.doRequest(ctx, ListEntryLogsRoute, nil, filter.Query(), nil, &entries)
	return entries, err
}

func (c *client) Devices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	err := c.doRequest(ctx, ListDevicesRoute, nil, nil, nil, &devices)
	return devices, err
}

func (c *client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.doRequest(ctx, ListUsersRoute, nil, nil, nil, &users)
	return users, err
}

func (c *client) User(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := c.doRequest(ctx, GetUserRoute, idParams(id), nil, nil, &user)
	return user, err
}

func (c *client) CreateUser(ctx context.Context, newUser models.NewUser) (models.User, error) {
	var user models.User
	err := c.doRequest(ctx, CreateUserRoute, nil, nil, newUser, &user)
	return user, err
}

func (c *client) UpdateUser(ctx context.Context, id int64, newUser models.NewUser) (models.User, error) {
	var user models.User
	err := c.doRequest(ctx, UpdateUserRoute, idParams(id), nil, newUser, &user)
	return user, err
}

func (c *client) Codes(ctx context.Context, userID int64) ([]models.Code, error) {
	var codes []models.Code
	err := c.doRequest(ctx, ListCodesRoute, idParams(userID), nil, nil, &codes)
	return codes, err
}

func (c *client) CreateCode(ctx context.Context, newCode models.Code) (models.Code, error) {
	var code models.Code
	err := c.doRequest(ctx, CreateCodeRoute, nil, nil, newCode, &code)
	return code, err
}

// UpdateCode replaces oldCode with newCode. The body is the bare JSON string.
func (c *client) UpdateCode(ctx context.Context, oldCode, newCode string) (models.Code, error) {
	var code models.Code
	err := c.doRequest(ctx, UpdateCodeRoute, rata.Params{"code": oldCode}, nil, newCode, &code)
	return code, err
}

func (c *client) DeleteCode(ctx context.Context, code string) error {
	return c.doRequest(ctx, DeleteCodeRoute, rata.Params{"code": code}, nil, nil, nil)
}

func idParams(id int64) rata.Params {
	return rata.Params{"id": strconv.FormatInt(id, 10)}
}

func (c *client) createRequest(ctx context.Context, requestName string, params rata.Params, queryParams url.Values, request interface{}) (*http.Request, error) {
	var body io.Reader
	var contentLength int64
	if request != nil {
		requestJson, err := json.Marshal(request)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(requestJson)
		contentLength = int64(len(requestJson))
	}

	req, err := c.reqGen.CreateRequest(requestName, params, body)
	if err != nil {
		return nil, err
	}

	req = req.WithContext(ctx)
	req.URL.RawQuery = queryParams.Encode()
	req.ContentLength = contentLength
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *client) doRequest(ctx context.Context, requestName string, params rata.Params, queryParams url.Values, request, response interface{}) error {
	req, err := c.createRequest(ctx, requestName, params, queryParams, request)
	if err != nil {
		return err
	}
	return c.do(req, response)
}

// apiErrorBody is the error envelope the backend writes for failed requests.
type apiErrorBody struct {
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

func (c *client) do(req *http.Request, response interface{}) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := NewError(UnreachableError, "Cannot reach API: "+err.Error())
		apiErr.cause = err
		return apiErr
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, c.maxResponseSize+1))
	if err != nil {
		apiErr := NewError(UnreachableError, "Cannot read API response: "+err.Error())
		apiErr.Status = res.StatusCode
		apiErr.cause = err
		return apiErr
	}
	if int64(len(body)) > c.maxResponseSize {
		apiErr := NewError(ResponseDecodeError, "API response exceeds "+units.BytesSize(float64(c.maxResponseSize)))
		apiErr.Status = res.StatusCode
		return apiErr
	}

	if res.StatusCode > 299 {
		errBody := apiErrorBody{}
		_ = json.Unmarshal(body, &errBody)

		message := errBody.Msg
		if message == "" {
			message = http.StatusText(res.StatusCode)
		}

		apiErr := NewError(errorTypeForStatus(res.StatusCode), message)
		apiErr.Status = res.StatusCode
		return apiErr
	}

	if response != nil && len(body) > 0 {
		err = json.Unmarshal(body, response)
		if err != nil {
			apiErr := NewError(ResponseDecodeError, "Cannot decode API response: "+err.Error())
			apiErr.Status = res.StatusCode
			apiErr.cause = err
			return apiErr
		}
	}

	return nil
}
