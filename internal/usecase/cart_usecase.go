package usecase

import (
	"context"
	"net/http"

	"storefront/internal/pricing"
	repo "storefront/internal/repository"
)

// CartUsecase turns client-held cart rows into a price breakdown. The
// cart itself lives on the client; nothing here is persisted.
type CartUsecase struct {
	productRepo repo.ProductRepository
	policy      pricing.Policy
}

func NewCartUsecase(productRepo repo.ProductRepository, policy pricing.Policy) *CartUsecase {
	return &CartUsecase{
		productRepo: productRepo,
		policy:      policy,
	}
}

// A row may carry its own product snapshot or just a product_id to be
// resolved from the catalog.
type CartLineInput struct {
	ProductID int64
	Quantity  int64
	Product   *pricing.ProductSnapshot
}

type CartSummaryOutput struct {
	Summary      pricing.Summary `json:"summary"`
	TotalDisplay string          `json:"total_display"`
}

// Summarize prices the submitted rows. Rows that cannot be resolved to a
// product count as zero, matching the calculator's treatment of missing
// prices; a nil row list yields the zero summary.
func (u *CartUsecase) Summarize(ctx context.Context, rows []CartLineInput) (CartSummaryOutput, error) {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		if row.Product == nil && row.ProductID > 0 {
			ids = append(ids, row.ProductID)
		}
	}

	snapshots := map[int64]*pricing.ProductSnapshot{}
	if len(ids) > 0 {
		products, err := u.productRepo.FindActiveByIDs(ctx, ids)
		if err != nil {
			return CartSummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		for _, p := range products {
			compareAt := ""
			if p.CompareAtPrice != nil {
				compareAt = *p.CompareAtPrice
			}
			snapshots[p.ID] = &pricing.ProductSnapshot{
				Price:          p.Price,
				CompareAtPrice: compareAt,
			}
		}
	}

	items := make([]pricing.LineItem, 0, len(rows))
	for _, row := range rows {
		snap := row.Product
		if snap == nil {
			snap = snapshots[row.ProductID]
		}
		items = append(items, pricing.LineItem{
			ProductID: row.ProductID,
			Product:   snap,
			Quantity:  row.Quantity,
		})
	}

	summary := pricing.Summarize(items, u.policy)
	return CartSummaryOutput{
		Summary:      summary,
		TotalDisplay: pricing.FormatINRDecimal(summary.Total),
	}, nil
}
