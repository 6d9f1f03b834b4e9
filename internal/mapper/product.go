package mapper

import (
	"github.com/ashitosh07/lambda/internal/document"
	"github.com/ashitosh07/lambda/pkg/clock"
)

type Product struct {
	IdentificationType   string `json:"IdentificationType"`
	IdentificationNumber string `json:"IdentificationNumber"`
	Product              string `json:"Product"`
	Subproduct           string `json:"Subproduct"`
	ProductNumber        string `json:"ProductNumber"`
	RegistrationDate     string `json:"RegistrationDate"`
	City                 string `json:"City"`
	BranchOffice         string `json:"BranchOffice"`
	DistributionChannel  string `json:"DistributionChannel"`
	CurrencyType         string `json:"CurrencyType"`
	OpeningAmount        Amount `json:"OpeningAmount"`
	ProductState         string `json:"ProductState"`
	ParentType           string `json:"ParentType"`
}

func (p *Product) Family() Family { return FamilyProduct }

func (p *Product) Attributes() []Attribute {
	return []Attribute{
		{"IdentificationType", p.IdentificationType},
		{"IdentificationNumber", p.IdentificationNumber},
		{"Product", p.Product},
		{"Subproduct", p.Subproduct},
		{"ProductNumber", p.ProductNumber},
		{"RegistrationDate", p.RegistrationDate},
		{"City", p.City},
		{"BranchOffice", p.BranchOffice},
		{"DistributionChannel", p.DistributionChannel},
		{"CurrencyType", p.CurrencyType},
		{"OpeningAmount", p.OpeningAmount.String()},
		{"ProductState", p.ProductState},
		{"ParentType", p.ParentType},
	}
}

// Remittance is the only product line; it is product number 1.
const remittanceProduct = "Remittance"

func MapProduct(doc document.Document) (Record, error) {
	if err := requireDocument(FamilyProduct, doc); err != nil {
		return nil, err
	}

	return &Product{
		IdentificationType:   doc.Lookup("document_type").TextOr("Driving Licence"),
		IdentificationNumber: doc.Lookup("document_number").TextOr(DefaultText),
		Product:              remittanceProduct,
		Subproduct:           doc.Lookup("details", "sendInfo", "send").TextOr("Send"),
		ProductNumber:        "user-1",
		RegistrationDate:     clock.Now().Format(DateTimeLayout),
		City:                 "New York City",
		BranchOffice:         "West",
		DistributionChannel:  "ATM",
		CurrencyType:         doc.Lookup("details", "sendInfo", "sendAmounts", "sendCurrency").TextOr(DefaultText),
		OpeningAmount:        Amount{},
		ProductState:         "1",
		ParentType:           "CLIENTS",
	}, nil
}
