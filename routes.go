package console

import "github.com/tedsuo/rata"

const (
	HealthRoute               = "Health"
	ListCustomersRoute        = "ListCustomers"
	CreateCustomerRoute       = "CreateCustomer"
	GetCustomerRoute          = "GetCustomer"
	UpdateCustomerRoute       = "UpdateCustomer"
	UpdateCustomerStatusRoute = "UpdateCustomerStatus"
	ListStaffRoute            = "ListStaff"
	CreateStaffRoute          = "CreateStaff"
	UpdateStaffRoute          = "UpdateStaff"
	ResetStaffPinRoute        = "ResetStaffPin"
	DeleteStaffRoute          = "DeleteStaff"
	ListEntryLogsRoute        = "ListEntryLogs"
	ListDevicesRoute          = "ListDevices"
	ListUsersRoute            = "ListUsers"
	CreateUserRoute           = "CreateUser"
	GetUserRoute              = "GetUser"
	UpdateUserRoute           = "UpdateUser"
	ListCodesRoute            = "ListCodes"
	CreateCodeRoute           = "CreateCode"
	UpdateCodeRoute           = "UpdateCode"
	DeleteCodeRoute           = "DeleteCode"
)

// Routes is the backend API surface the console consumes. Paths are relative
// to the configured base URL.
var Routes = rata.Routes{
	{Path: "/", Method: "GET", Name: HealthRoute},

	{Path: "/customers", Method: "GET", Name: ListCustomersRoute},
	{Path: "/customers", Method: "POST", Name: CreateCustomerRoute},
	{Path: "/customers/:id", Method: "GET", Name: GetCustomerRoute},
	{Path: "/customers/:id", Method: "PUT", Name: UpdateCustomerRoute},
	{Path: "/customers/:id/status", Method: "PUT", Name: UpdateCustomerStatusRoute},
	{Path: "/customers/:id/staff", Method: "GET", Name: ListStaffRoute},
	{Path: "/staff", Method: "POST", Name: CreateStaffRoute},
	{Path: "/staff/:id", Method: "PUT", Name: UpdateStaffRoute},
	{Path: "/staff/:id/pin", Method: "PUT", Name: ResetStaffPinRoute},
	{Path: "/staff/:id", Method: "DELETE", Name: DeleteStaffRoute},

	{Path: "/entry_logs", Method: "GET", Name: ListEntryLogsRoute},
	{Path: "/devices", Method: "GET", Name: ListDevicesRoute},

	{Path: "/users", Method: "GET", Name: ListUsersRoute},
	{Path: "/users", Method: "POST", Name: CreateUserRoute},
	{Path: "/users/:id", Method: "GET", Name: GetUserRoute},
	{Path: "/users/:id", Method: "PUT", Name: UpdateUserRoute},
	{Path: "/users/:id/codes", Method: "GET", Name: ListCodesRoute},

	{Path: "/codes", Method: "POST", Name: CreateCodeRoute},
	{Path: "/codes/:code", Method: "PUT", Name: UpdateCodeRoute},
	{Path: "/codes/:code", Method: "DELETE", Name: DeleteCodeRoute},
}
