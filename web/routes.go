package web

import (
	"net/http"
	"time"

	"code.doorsys.dev/console/handlers"
	"code.doorsys.dev/console/views"
)

const (
	RootRoute = "Root"

	CustomerListRoute         = "CustomerList"
	CreateCustomerRoute       = "CreateCustomer"
	CustomerDetailRoute       = "CustomerDetail"
	UpdateCustomerRoute       = "UpdateCustomer"
	UpdateCustomerStatusRoute = "UpdateCustomerStatus"
	EntryLogsRoute            = "EntryLogs"
	CreateStaffRoute          = "CreateStaff"
	UpdateStaffRoute          = "UpdateStaff"
	ResetStaffPinRoute        = "ResetStaffPin"
	DeleteStaffRoute          = "DeleteStaff"

	UserListRoute   = "UserList"
	CreateUserRoute = "CreateUser"
	UserDetailRoute = "UserDetail"
	UpdateUserRoute = "UpdateUser"
	AboutRoute      = "About"
	CreateCodeRoute = "CreateCode"
	UpdateCodeRoute = "UpdateCode"
	DeleteCodeRoute = "DeleteCode"
)

func CustomersTable() Table {
	return Table{
		Variant: CustomersVariant,
		Nav: []views.NavLink{
			{Label: "Customers", Path: "/customers"},
			{Label: "Logs", Path: "/logs"},
		},
		Entries: []Entry{
			{Name: RootRoute, Path: "/", Method: "GET", Redirect: "/customers"},
			{Name: CustomerListRoute, Path: "/customers", Method: "GET", Load: customersView((*handlers.CustomersHandler).List)},
			{Name: CreateCustomerRoute, Path: "/customers", Method: "POST", Load: customersView((*handlers.CustomersHandler).Create)},
			{Name: CustomerDetailRoute, Path: "/customers/:id", Method: "GET", Load: customersView((*handlers.CustomersHandler).Show)},
			{Name: UpdateCustomerRoute, Path: "/customers/:id", Method: "POST", Load: customersView((*handlers.CustomersHandler).Update)},
			{Name: UpdateCustomerStatusRoute, Path: "/customers/:id/status", Method: "POST", Load: customersView((*handlers.CustomersHandler).UpdateStatus)},
			{Name: EntryLogsRoute, Path: "/logs", Method: "GET", Load: loadEntryLogs},
			{Name: CreateStaffRoute, Path: "/customers/:id/staff", Method: "POST", Load: staffView((*handlers.StaffHandler).Create)},
			{Name: UpdateStaffRoute, Path: "/staff/:id", Method: "POST", Load: staffView((*handlers.StaffHandler).Update)},
			{Name: ResetStaffPinRoute, Path: "/staff/:id/pin", Method: "POST", Load: staffView((*handlers.StaffHandler).ResetPin)},
			{Name: DeleteStaffRoute, Path: "/staff/:id/delete", Method: "POST", Load: staffView((*handlers.StaffHandler).Delete)},
		},
	}
}

func UsersTable() Table {
	return Table{
		Variant: UsersVariant,
		Nav: []views.NavLink{
			{Label: "Users", Path: "/users"},
			{Label: "About", Path: "/about"},
		},
		Entries: []Entry{
			{Name: RootRoute, Path: "/", Method: "GET", Redirect: "/users"},
			{Name: UserListRoute, Path: "/users", Method: "GET", Load: usersView((*handlers.UsersHandler).List)},
			{Name: CreateUserRoute, Path: "/users", Method: "POST", Load: usersView((*handlers.UsersHandler).Create)},
			{Name: UserDetailRoute, Path: "/users/:id", Method: "GET", Load: usersView((*handlers.UsersHandler).Show)},
			{Name: UpdateUserRoute, Path: "/users/:id", Method: "POST", Load: usersView((*handlers.UsersHandler).Update)},
			{Name: AboutRoute, Path: "/about", Method: "GET", Load: loadAbout},
			{Name: CreateCodeRoute, Path: "/users/:id/codes", Method: "POST", Load: codesView((*handlers.CodesHandler).Create)},
			{Name: UpdateCodeRoute, Path: "/users/:id/codes/:code", Method: "POST", Load: codesView((*handlers.CodesHandler).Update)},
			{Name: DeleteCodeRoute, Path: "/users/:id/codes/:code/delete", Method: "POST", Load: codesView((*handlers.CodesHandler).Delete)},
		},
	}
}

func validator() handlers.FormValidator {
	return handlers.NewFormValidator(time.Local)
}

func customersView(action func(*handlers.CustomersHandler, http.ResponseWriter, *http.Request)) Loader {
	return func(deps Dependencies) (http.Handler, error) {
		h, err := handlers.NewCustomersHandler(deps.Client, deps.Templates, validator(), deps.Notices, deps.Errors, deps.Logger)
		if err != nil {
			return nil, err
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			action(h, w, r)
		}), nil
	}
}

func usersView(action func(*handlers.UsersHandler, http.ResponseWriter, *http.Request)) Loader {
	return func(deps Dependencies) (http.Handler, error) {
		h, err := handlers.NewUsersHandler(deps.Client, deps.Templates, validator(), deps.Notices, deps.Errors, deps.Logger)
		if err != nil {
			return nil, err
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			action(h, w, r)
		}), nil
	}
}

func staffView(action func(*handlers.StaffHandler, http.ResponseWriter, *http.Request)) Loader {
	return func(deps Dependencies) (http.Handler, error) {
		h, err := handlers.NewStaffHandler(deps.Client, deps.Templates, validator(), deps.Notices, deps.Errors, deps.Logger)
		if err != nil {
			return nil, err
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			action(h, w, r)
		}), nil
	}
}

func codesView(action func(*handlers.CodesHandler, http.ResponseWriter, *http.Request)) Loader {
	return func(deps Dependencies) (http.Handler, error) {
		h, err := handlers.NewCodesHandler(deps.Client, deps.Templates, validator(), deps.Notices, deps.Errors, deps.Logger)
		if err != nil {
			return nil, err
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			action(h, w, r)
		}), nil
	}
}

func loadEntryLogs(deps Dependencies) (http.Handler, error) {
	h, err := handlers.NewEntryLogsHandler(deps.Client, deps.Templates, validator(), deps.Clock, deps.Notices, deps.Errors, deps.Logger)
	if err != nil {
		return nil, err
	}
	return http.HandlerFunc(h.List), nil
}

func loadAbout(deps Dependencies) (http.Handler, error) {
	h, err := handlers.NewAboutHandler(deps.Client.BaseURL(), deps.Templates, deps.Notices, deps.Logger)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// LoadNotFound builds the view served for paths no entry matches.
func LoadNotFound(deps Dependencies) (http.Handler, error) {
	h, err := handlers.NewNotFoundHandler(deps.Templates, deps.Notices, deps.Logger)
	if err != nil {
		return nil, err
	}
	return h, nil
}
