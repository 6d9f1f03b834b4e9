package mapper

import (
	"github.com/ashitosh07/lambda/internal/document"
	"github.com/ashitosh07/lambda/pkg/clock"
)

type Client struct {
	IdentificationType   string `json:"identificationType"`
	IdentificationNumber string `json:"identificationNumber"`
	PersonType           string `json:"personType"`
	FirstName            string `json:"firstName"`
	FirstLastName        string `json:"firstLastName"`
	BusinessName         string `json:"businessName"`
	ConstitutionDate     string `json:"constitutionDate"`
	EconomicActivity     string `json:"economicActivity"`
	RegistrationDate     string `json:"registrationDate"`
	UpdateAt             string `json:"updateAt"`
	State                string `json:"state"`
	City                 string `json:"city"`
	Country              string `json:"country"`
	PostalCode           string `json:"postalCode"`
	FullAddress          string `json:"fullAddress"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
	Sex                  string `json:"sex"`
}

func (c *Client) Family() Family { return FamilyClient }

func (c *Client) Attributes() []Attribute {
	return []Attribute{
		{"identificationType", c.IdentificationType},
		{"identificationNumber", c.IdentificationNumber},
		{"personType", c.PersonType},
		{"firstName", c.FirstName},
		{"firstLastName", c.FirstLastName},
		{"businessName", c.BusinessName},
		{"constitutionDate", c.ConstitutionDate},
		{"economicActivity", c.EconomicActivity},
		{"registrationDate", c.RegistrationDate},
		{"updateAt", c.UpdateAt},
		{"state", c.State},
		{"city", c.City},
		{"country", c.Country},
		{"postalCode", c.PostalCode},
		{"fullAddress", c.FullAddress},
		{"phone", c.Phone},
		{"email", c.Email},
		{"sex", c.Sex},
	}
}

const clientDefault = "default"

// MapClient reads the identity verification output nested under
// onfidoResult.output; dates come from the document's extended JSON fields.
func MapClient(doc document.Document) (Record, error) {
	if err := requireDocument(FamilyClient, doc); err != nil {
		return nil, err
	}

	out := func(key string) document.Value {
		return doc.Lookup("onfidoResult", "output", key)
	}
	now := clock.Now()

	return &Client{
		IdentificationType:   out("document_type").TextOr(clientDefault),
		IdentificationNumber: out("document_number").TextOr(clientDefault),
		PersonType:           out("personType").TextOr("1"),
		FirstName:            out("first_name").TextOr(clientDefault),
		FirstLastName:        out("last_name").TextOr(clientDefault),
		BusinessName:         out("businessName").TextOr(clientDefault),
		ConstitutionDate:     out("constitutionDate").TextOr(clientDefault),
		EconomicActivity:     out("economicActivity").TextOr(clientDefault),
		RegistrationDate:     dateText(doc.Lookup("procDate"), now),
		UpdateAt:             dateText(doc.Lookup("onfidoResult", "updatedDate"), now),
		State:                out("state").TextOr("1"),
		City:                 out("bomCity").TextOr(clientDefault),
		Country:              out("bomCountry").TextOr(clientDefault),
		PostalCode:           out("postalCode").TextOr(clientDefault),
		FullAddress:          out("fullAddress").TextOr(clientDefault),
		Phone:                out("phone").TextOr(clientDefault),
		Email:                out("email").TextOr(clientDefault),
		Sex:                  out("sex").TextOr("2"),
	}, nil
}
