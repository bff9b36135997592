package domain

// SettingsID is the fixed document id of the company settings singleton.
const SettingsID = "company"

type PaymentInfo struct {
	PixKey   string `json:"pix_key,omitempty"`
	BankName string `json:"bank_name,omitempty"`
	Agency   string `json:"agency,omitempty"`
	Account  string `json:"account,omitempty"`
}

// CompanySettings is a singleton record, created lazily and overwritten
// wholesale on save. The UI always resubmits the whole record, so there are
// no partial-field updates.
type CompanySettings struct {
	ID            string      `json:"id"`
	CompanyName   string      `json:"company_name"`
	CNPJ          string      `json:"cnpj"`
	Address       string      `json:"address"`
	LogoURL       string      `json:"logo_url,omitempty"`
	PaymentInfo   PaymentInfo `json:"payment_info"`
	ContractTerms string      `json:"contract_terms,omitempty"`
}
