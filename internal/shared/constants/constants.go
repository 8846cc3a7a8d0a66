package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination, pages are zero-based
	DefaultPageNumber = 0
	DefaultPerPage    = 10
	MaxPageSize       = 100

	// Default limit for top-N order queries
	DefaultTopLimit = 5

	// Query parameter names
	QueryPageNumber = "pageNumber"
	QueryPerPage    = "perPage"
	QueryStatuses   = "statuses"
	QueryCustomer   = "customer"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableOffices      = "offices"
	TableEmployees    = "employees"
	TableCustomers    = "customers"
	TableOrders       = "orders"
	TableOrderDetails = "orderdetails"
	TablePayments     = "payments"
	TableProducts     = "products"
	TableProductLines = "productlines"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgStoreUnavailable    = "Data store is unavailable"
)
