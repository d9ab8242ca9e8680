package models

type Device struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	NetID string `json:"netId"`
}
