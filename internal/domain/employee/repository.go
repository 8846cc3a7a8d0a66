package employee

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import "context"

type Repository interface {
	FindAll(ctx context.Context) ([]*Employee, error)
	GetByNumber(ctx context.Context, number int64) (*Employee, error)
	ListByOffice(ctx context.Context, officeCode string) ([]*Employee, error)
	// ListReports returns the direct reports of a manager.
	ListReports(ctx context.Context, managerNumber int64) ([]*Employee, error)
}
