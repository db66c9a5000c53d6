package models

type Bus struct {
	ID            int64  `json:"id"`
	BusNumber     string `json:"bus_number"`
	BusName       string `json:"bus_name"`
	ContactNumber string `json:"contact_number"`
}
