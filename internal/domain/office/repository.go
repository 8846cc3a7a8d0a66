package office

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import "context"

type Repository interface {
	FindAll(ctx context.Context) ([]*Office, error)
	GetByCode(ctx context.Context, code string) (*Office, error)
}
