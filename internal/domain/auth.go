package domain

// OperatorRole scopes what an authenticated operator may do.
type OperatorRole string

const (
	OperatorRoleAdmin  OperatorRole = "ADMIN"
	OperatorRoleViewer OperatorRole = "VIEWER"
)

// Operator is the authenticated caller of the HTTP API.
type Operator struct {
	Username string
	Role     OperatorRole
}
