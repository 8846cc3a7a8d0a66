// Package catalog serves products and product lines.
package catalog

import (
	"context"

	"classicmodels/internal/application/catalog/dto"
	"classicmodels/internal/domain/product"
	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/query"
	"classicmodels/internal/shared/services/markdown"
)

type Service struct {
	productRepo product.Repository
	lineRepo    product.LineRepository
	markdown    markdown.MarkdownService
	logger      logger.Interface
}

func NewService(
	productRepo product.Repository,
	lineRepo product.LineRepository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *Service {
	return &Service{
		productRepo: productRepo,
		lineRepo:    lineRepo,
		markdown:    markdownService,
		logger:      logger,
	}
}

func (s *Service) FindProducts(
	ctx context.Context,
	filter product.Filter,
	page query.PageRequest,
) (*query.Page[*dto.ProductDTO], error) {
	result, err := s.productRepo.FindPage(ctx, filter, page)
	if err != nil {
		s.logger.Errorw("failed to page products", "product_line", filter.ProductLine, "error", err)
		return nil, err
	}
	return query.MapPage(result, dto.ToProductDTO), nil
}

func (s *Service) GetProduct(ctx context.Context, code string) (*dto.ProductDTO, error) {
	p, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return dto.ToProductDTO(p), nil
}

// GetProductLineOf resolves the line a product belongs to.
func (s *Service) GetProductLineOf(ctx context.Context, code string) (*dto.ProductLineDTO, error) {
	p, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.GetProductLine(ctx, p.ProductLine())
}

func (s *Service) ListProductLines(ctx context.Context) ([]*dto.ProductLineDTO, error) {
	lines, err := s.lineRepo.FindAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to list product lines", "error", err)
		return nil, err
	}

	out := make([]*dto.ProductLineDTO, 0, len(lines))
	for _, l := range lines {
		d, err := s.toLineDTO(l)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Service) GetProductLine(ctx context.Context, id string) (*dto.ProductLineDTO, error) {
	l, err := s.lineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toLineDTO(l)
}

func (s *Service) toLineDTO(l *product.Line) (*dto.ProductLineDTO, error) {
	html, err := s.markdown.RenderDescription(l.HTMLDescription(), l.TextDescription())
	if err != nil {
		s.logger.Errorw("failed to render product line description", "product_line", l.ID(), "error", err)
		return nil, errors.NewInternalError("failed to render description", l.ID())
	}
	return dto.ToProductLineDTO(l, html), nil
}
