package handlers

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"code.doorsys.dev/console/models"
)

const (
	dateTimeLocalLayout = "2006-01-02T15:04"
	dateLayout          = "2006-01-02"
	defaultLogWindow    = 24 * time.Hour
)

// FormValidator turns submitted forms and query strings into API requests.
type FormValidator struct {
	location *time.Location
}

func NewFormValidator(location *time.Location) FormValidator {
	if location == nil {
		location = time.Local
	}
	return FormValidator{location: location}
}

func (v FormValidator) Customer(form url.Values) (models.NewCustomer, error) {
	customer := models.NewCustomer{
		Name:  strings.TrimSpace(form.Get("name")),
		Email: strings.TrimSpace(form.Get("email")),
		Notes: strings.TrimSpace(form.Get("notes")),
	}
	return customer, customer.Validate()
}

func (v FormValidator) User(form url.Values) (models.NewUser, error) {
	user := models.NewUser{
		Name:  strings.TrimSpace(form.Get("name")),
		Email: strings.TrimSpace(form.Get("email")),
	}
	return user, user.Validate()
}

// Staff reads a staff form for the given customer. An empty fob leaves the
// staff member without one.
func (v FormValidator) Staff(form url.Values, customerID int64) (models.NewStaff, error) {
	staff := models.NewStaff{
		CustomerID: customerID,
		Name:       strings.TrimSpace(form.Get("name")),
		Phone:      strings.TrimSpace(form.Get("phone")),
	}

	if raw := strings.TrimSpace(form.Get("fob")); raw != "" {
		fob, err := strconv.Atoi(raw)
		if err != nil {
			return staff, errors.New("Fob must be a positive number")
		}
		staff.Fob = &fob
	}

	return staff, staff.Validate()
}

// CustomerID reads the customer_id field that staff forms carry.
func (v FormValidator) CustomerID(form url.Values) (int64, error) {
	id, err := optionalID(form.Get("customer_id"))
	if err != nil || id == nil {
		return 0, errors.New("customer_id must be a positive integer")
	}
	return *id, nil
}

func (v FormValidator) Code(form url.Values, userID int64) (models.Code, error) {
	codeType := models.CodeType(strings.TrimSpace(form.Get("type")))
	if codeType == "" {
		codeType = models.PinCode
	}

	code := models.Code{
		Code:     strings.TrimSpace(form.Get("code")),
		UserID:   userID,
		CodeType: codeType,
	}
	return code, code.Validate()
}

func (v FormValidator) CodeValue(form url.Values) (string, error) {
	code := strings.TrimSpace(form.Get("code"))
	return code, models.ValidateCodeValue(code)
}

func (v FormValidator) CustomerFilter(query url.Values) (models.CustomerFilter, error) {
	raw := query.Get("active")
	if raw == "" {
		return models.CustomerFilter{}, nil
	}

	active, err := strconv.ParseBool(raw)
	if err != nil {
		return models.CustomerFilter{}, errors.New("active must be true or false")
	}
	return models.CustomerFilter{Active: &active}, nil
}

func (v FormValidator) Active(form url.Values) (bool, error) {
	active, err := strconv.ParseBool(form.Get("active"))
	if err != nil {
		return false, errors.New("active must be true or false")
	}
	return active, nil
}

// EntryLogFilter reads start, end, device and customer. A missing range
// defaults to the day before now.
func (v FormValidator) EntryLogFilter(query url.Values, now time.Time) (models.EntryLogFilter, error) {
	filter := models.EntryLogFilter{}

	end, err := v.parseTime(query.Get("end"))
	if err != nil {
		return filter, errors.New("end is not a valid date")
	}
	if end.IsZero() {
		end = now
	}

	start, err := v.parseTime(query.Get("start"))
	if err != nil {
		return filter, errors.New("start is not a valid date")
	}
	if start.IsZero() {
		start = end.Add(-defaultLogWindow)
	}

	filter.Start = start
	filter.End = end

	filter.DeviceID, err = optionalID(query.Get("device"))
	if err != nil {
		return filter, errors.New("device must be a positive integer")
	}
	filter.CustomerID, err = optionalID(query.Get("customer"))
	if err != nil {
		return filter, errors.New("customer must be a positive integer")
	}

	return filter, filter.Validate()
}

func (v FormValidator) parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateTimeLocalLayout, raw, v.location); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dateLayout, raw, v.location)
}

func (v FormValidator) FormatTime(t time.Time) string {
	return t.In(v.location).Format(dateTimeLocalLayout)
}

func optionalID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errInvalidID
	}
	return &id, nil
}
