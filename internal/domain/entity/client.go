package entity

import "time"

// Client representa un cliente de la empresa.
type Client struct {
	ID        string
	CompanyID string
	Name      string
	ICE       string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
