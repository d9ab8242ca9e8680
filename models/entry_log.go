package models

import (
	"errors"
	"net/url"
	"strconv"
	"time"
)

type EntryLog struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Created      time.Time `json:"created"`
	DeviceName   string    `json:"deviceName,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
	StaffName    string    `json:"staffName,omitempty"`
}

// EntryLogFilter selects entries created in [Start, End), optionally narrowed
// to one device or customer.
type EntryLogFilter struct {
	Start      time.Time
	End        time.Time
	DeviceID   *int64
	CustomerID *int64
}

func (f EntryLogFilter) Validate() error {
	if f.Start.IsZero() || f.End.IsZero() {
		return errors.New("Entry log filter requires a start and end date")
	}
	if !f.End.After(f.Start) {
		return errors.New("End date must be after start date")
	}
	return nil
}

func (f EntryLogFilter) Query() url.Values {
	query := url.Values{}
	query.Set("startDate", f.Start.UTC().Format(time.RFC3339))
	query.Set("endDate", f.End.UTC().Format(time.RFC3339))
	if f.DeviceID != nil {
		query.Set("deviceId", strconv.FormatInt(*f.DeviceID, 10))
	}
	if f.CustomerID != nil {
		query.Set("customerId", strconv.FormatInt(*f.CustomerID, 10))
	}
	return query
}
