package dto

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name    string `json:"name"`
	ICE     string `json:"ice,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id. Campos nil no se modifican.
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	ICE     *string `json:"ice,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	ICE       string `json:"ice,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}
