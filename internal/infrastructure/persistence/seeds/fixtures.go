package seeds

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"classicmodels/internal/infrastructure/persistence/models"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

const fixtureDateLayout = "2006-01-02"

// Fixtures is the parsed reference dataset, one slice per table.
type Fixtures struct {
	Offices      []models.OfficeModel
	Employees    []models.EmployeeModel
	Customers    []models.CustomerModel
	ProductLines []models.ProductLineModel
	Products     []models.ProductModel
	Orders       []models.OrderModel
	OrderDetails []models.OrderDetailModel
	Payments     []models.PaymentModel
}

type fixtureFile struct {
	Offices      []officeFixture      `yaml:"offices"`
	Employees    []employeeFixture    `yaml:"employees"`
	Customers    []customerFixture    `yaml:"customers"`
	ProductLines []productLineFixture `yaml:"productLines"`
	Products     []productFixture     `yaml:"products"`
	Orders       []orderFixture       `yaml:"orders"`
	OrderDetails []orderDetailFixture `yaml:"orderDetails"`
	Payments     []paymentFixture     `yaml:"payments"`
}

type officeFixture struct {
	OfficeCode   string  `yaml:"officeCode"`
	City         string  `yaml:"city"`
	Phone        string  `yaml:"phone"`
	AddressLine1 string  `yaml:"addressLine1"`
	AddressLine2 *string `yaml:"addressLine2"`
	State        *string `yaml:"state"`
	Country      string  `yaml:"country"`
	PostalCode   string  `yaml:"postalCode"`
	Territory    string  `yaml:"territory"`
}

type employeeFixture struct {
	EmployeeNumber int64  `yaml:"employeeNumber"`
	LastName       string `yaml:"lastName"`
	FirstName      string `yaml:"firstName"`
	Extension      string `yaml:"extension"`
	Email          string `yaml:"email"`
	OfficeCode     string `yaml:"officeCode"`
	ReportsTo      *int64 `yaml:"reportsTo"`
	JobTitle       string `yaml:"jobTitle"`
}

type customerFixture struct {
	CustomerNumber         int64    `yaml:"customerNumber"`
	CustomerName           string   `yaml:"customerName"`
	ContactLastName        string   `yaml:"contactLastName"`
	ContactFirstName       string   `yaml:"contactFirstName"`
	Phone                  string   `yaml:"phone"`
	AddressLine1           string   `yaml:"addressLine1"`
	AddressLine2           *string  `yaml:"addressLine2"`
	City                   string   `yaml:"city"`
	State                  *string  `yaml:"state"`
	PostalCode             *string  `yaml:"postalCode"`
	Country                string   `yaml:"country"`
	SalesRepEmployeeNumber *int64   `yaml:"salesRepEmployeeNumber"`
	CreditLimit            *float64 `yaml:"creditLimit"`
}

type productLineFixture struct {
	ProductLine     string  `yaml:"productLine"`
	TextDescription *string `yaml:"textDescription"`
	HTMLDescription *string `yaml:"htmlDescription"`
}

type productFixture struct {
	ProductCode        string  `yaml:"productCode"`
	ProductName        string  `yaml:"productName"`
	ProductLine        string  `yaml:"productLine"`
	ProductScale       string  `yaml:"productScale"`
	ProductVendor      string  `yaml:"productVendor"`
	ProductDescription string  `yaml:"productDescription"`
	QuantityInStock    int     `yaml:"quantityInStock"`
	BuyPrice           float64 `yaml:"buyPrice"`
	MSRP               float64 `yaml:"MSRP"`
}

type orderFixture struct {
	OrderNumber    int64   `yaml:"orderNumber"`
	OrderDate      string  `yaml:"orderDate"`
	RequiredDate   string  `yaml:"requiredDate"`
	ShippedDate    string  `yaml:"shippedDate"`
	Status         string  `yaml:"status"`
	Comments       *string `yaml:"comments"`
	CustomerNumber int64   `yaml:"customerNumber"`
}

type orderDetailFixture struct {
	OrderNumber     int64   `yaml:"orderNumber"`
	ProductCode     string  `yaml:"productCode"`
	QuantityOrdered int     `yaml:"quantityOrdered"`
	PriceEach       float64 `yaml:"priceEach"`
	OrderLineNumber int     `yaml:"orderLineNumber"`
}

type paymentFixture struct {
	CustomerNumber int64   `yaml:"customerNumber"`
	CheckNumber    string  `yaml:"checkNumber"`
	PaymentDate    string  `yaml:"paymentDate"`
	Amount         float64 `yaml:"amount"`
}

// LoadFixtures parses the embedded reference dataset.
func LoadFixtures() (*Fixtures, error) {
	return ParseFixtures(fixturesYAML)
}

// ParseFixtures parses a fixture document in the embedded format.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}

	f := &Fixtures{}
	for _, o := range file.Offices {
		f.Offices = append(f.Offices, models.OfficeModel{
			OfficeCode:   o.OfficeCode,
			City:         o.City,
			Phone:        o.Phone,
			AddressLine1: o.AddressLine1,
			AddressLine2: o.AddressLine2,
			State:        o.State,
			Country:      o.Country,
			PostalCode:   o.PostalCode,
			Territory:    o.Territory,
		})
	}
	for _, e := range file.Employees {
		f.Employees = append(f.Employees, models.EmployeeModel{
			EmployeeNumber: e.EmployeeNumber,
			LastName:       e.LastName,
			FirstName:      e.FirstName,
			Extension:      e.Extension,
			Email:          e.Email,
			OfficeCode:     e.OfficeCode,
			ReportsTo:      e.ReportsTo,
			JobTitle:       e.JobTitle,
		})
	}
	for _, c := range file.Customers {
		f.Customers = append(f.Customers, models.CustomerModel{
			CustomerNumber:         c.CustomerNumber,
			CustomerName:           c.CustomerName,
			ContactLastName:        c.ContactLastName,
			ContactFirstName:       c.ContactFirstName,
			Phone:                  c.Phone,
			AddressLine1:           c.AddressLine1,
			AddressLine2:           c.AddressLine2,
			City:                   c.City,
			State:                  c.State,
			PostalCode:             c.PostalCode,
			Country:                c.Country,
			SalesRepEmployeeNumber: c.SalesRepEmployeeNumber,
			CreditLimit:            c.CreditLimit,
		})
	}
	for _, l := range file.ProductLines {
		f.ProductLines = append(f.ProductLines, models.ProductLineModel{
			ProductLine:     l.ProductLine,
			TextDescription: l.TextDescription,
			HTMLDescription: l.HTMLDescription,
		})
	}
	for _, p := range file.Products {
		f.Products = append(f.Products, models.ProductModel{
			ProductCode:        p.ProductCode,
			ProductName:        p.ProductName,
			ProductLine:        p.ProductLine,
			ProductScale:       p.ProductScale,
			ProductVendor:      p.ProductVendor,
			ProductDescription: p.ProductDescription,
			QuantityInStock:    p.QuantityInStock,
			BuyPrice:           p.BuyPrice,
			MSRP:               p.MSRP,
		})
	}
	for _, o := range file.Orders {
		model, err := o.toModel()
		if err != nil {
			return nil, err
		}
		f.Orders = append(f.Orders, model)
	}
	for _, d := range file.OrderDetails {
		f.OrderDetails = append(f.OrderDetails, models.OrderDetailModel{
			OrderNumber:     d.OrderNumber,
			ProductCode:     d.ProductCode,
			QuantityOrdered: d.QuantityOrdered,
			PriceEach:       d.PriceEach,
			OrderLineNumber: d.OrderLineNumber,
		})
	}
	for _, p := range file.Payments {
		paid, err := parseDate(p.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("payment %d/%s: %w", p.CustomerNumber, p.CheckNumber, err)
		}
		f.Payments = append(f.Payments, models.PaymentModel{
			CustomerNumber: p.CustomerNumber,
			CheckNumber:    p.CheckNumber,
			PaymentDate:    paid,
			Amount:         p.Amount,
		})
	}

	return f, nil
}

func (o orderFixture) toModel() (models.OrderModel, error) {
	ordered, err := parseDate(o.OrderDate)
	if err != nil {
		return models.OrderModel{}, fmt.Errorf("order %d: %w", o.OrderNumber, err)
	}
	required, err := parseDate(o.RequiredDate)
	if err != nil {
		return models.OrderModel{}, fmt.Errorf("order %d: %w", o.OrderNumber, err)
	}

	model := models.OrderModel{
		OrderNumber:    o.OrderNumber,
		OrderDate:      ordered,
		RequiredDate:   required,
		Status:         o.Status,
		Comments:       o.Comments,
		CustomerNumber: o.CustomerNumber,
	}
	if o.ShippedDate != "" {
		shipped, err := parseDate(o.ShippedDate)
		if err != nil {
			return models.OrderModel{}, fmt.Errorf("order %d: %w", o.OrderNumber, err)
		}
		model.ShippedDate = &shipped
	}
	return model, nil
}

func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse(fixtureDateLayout, value)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return datatypes.Date(t), nil
}
