package office

import "fmt"

// Office is a sales office.
type Office struct {
	code         string
	city         string
	phone        string
	addressLine1 string
	addressLine2 *string
	state        *string
	country      string
	postalCode   string
	territory    string
}

// ReconstructOffice rebuilds an office from persisted state.
func ReconstructOffice(
	code, city, phone, addressLine1 string,
	addressLine2, state *string,
	country, postalCode, territory string,
) (*Office, error) {
	if code == "" {
		return nil, fmt.Errorf("office code is required")
	}
	return &Office{
		code:         code,
		city:         city,
		phone:        phone,
		addressLine1: addressLine1,
		addressLine2: addressLine2,
		state:        state,
		country:      country,
		postalCode:   postalCode,
		territory:    territory,
	}, nil
}

func (o *Office) Code() string          { return o.code }
func (o *Office) City() string          { return o.city }
func (o *Office) Phone() string         { return o.phone }
func (o *Office) AddressLine1() string  { return o.addressLine1 }
func (o *Office) AddressLine2() *string { return o.addressLine2 }
func (o *Office) State() *string        { return o.state }
func (o *Office) Country() string       { return o.country }
func (o *Office) PostalCode() string    { return o.postalCode }
func (o *Office) Territory() string     { return o.territory }
