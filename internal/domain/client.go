package domain

type ClientType string

const (
	ClientTypeIndividual   ClientType = "pf"
	ClientTypeOrganization ClientType = "pj"
)

type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Client holds either individual (pf) or organization (pj) fields depending
// on Type. Public-catalog bookings identify clients by phone number.
type Client struct {
	ID   string     `json:"id"`
	Type ClientType `json:"type"`
	Name string     `json:"name"`

	// pf fields
	CPF       string `json:"cpf,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`

	// pj fields
	CNPJ        string `json:"cnpj,omitempty"`
	LegalName   string `json:"legal_name,omitempty"`
	ContactName string `json:"contact_name,omitempty"`

	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	HowFound string  `json:"how_found,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}
