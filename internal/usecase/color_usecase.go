package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

var colorCodeRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorUseCase реализует бизнес-логику управления цветами.
type ColorUseCase struct {
	colorRepo ColorRepository
	logger    logger.Logger
}

func NewColorUC(colorRepo ColorRepository, logger logger.Logger) *ColorUseCase {
	return &ColorUseCase{
		colorRepo: colorRepo,
		logger:    logger,
	}
}

func (c *ColorUseCase) CreateColor(ctx context.Context, req *SaveColorReq) (*ColorInfo, error) {
	const op = "ColorUseCase.CreateColor"

	if err := validateColor(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	color, err := c.colorRepo.Insert(ctx, domain.NewColor(req.Name, req.ColorCode))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return toColorInfo(color), nil
}

func (c *ColorUseCase) UpdateColor(ctx context.Context, id int64, req *SaveColorReq) (*ColorInfo, error) {
	const op = "ColorUseCase.UpdateColor"

	if err := validateColor(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	color, err := c.colorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	color.Name = req.Name
	color.ColorCode = req.ColorCode
	if err := c.colorRepo.Update(ctx, color); err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := c.colorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return toColorInfo(updated), nil
}

// DeleteColor удаляет цвет, если на него не ссылается ни одна связь продукт-цвет.
func (c *ColorUseCase) DeleteColor(ctx context.Context, id int64) error {
	const op = "ColorUseCase.DeleteColor"

	if _, err := c.colorRepo.GetByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	hasVariants, err := c.colorRepo.HasVariants(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if hasVariants {
		return e.Wrap(op, e.ErrColorHasVariants)
	}

	if err := c.colorRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *ColorUseCase) GetColor(ctx context.Context, id int64) (*ColorInfo, error) {
	const op = "ColorUseCase.GetColor"

	color, err := c.colorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return toColorInfo(color), nil
}

func (c *ColorUseCase) GetColors(ctx context.Context) ([]ColorInfo, error) {
	const op = "ColorUseCase.GetColors"

	colors, err := c.colorRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]ColorInfo, 0, len(colors))
	for i := range colors {
		result = append(result, *toColorInfo(&colors[i]))
	}

	return result, nil
}

func validateColor(req *SaveColorReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrNameRequired
	}

	if req.ColorCode != nil && !colorCodeRe.MatchString(*req.ColorCode) {
		return e.ErrInvalidColorCode
	}

	return nil
}

func toColorInfo(color *domain.Color) *ColorInfo {
	return &ColorInfo{
		ID:        color.ID,
		Name:      color.Name,
		ColorCode: color.ColorCode,
		CreatedAt: color.CreatedAt,
		UpdatedAt: color.UpdatedAt,
	}
}
