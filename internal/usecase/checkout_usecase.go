package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/pricing"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type CheckoutUsecase struct {
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
	policy      pricing.Policy
	idGen       IDGenerator
	clock       Clock
}

func NewCheckoutUsecase(
	orderRepo repo.OrderRepository,
	productRepo repo.ProductRepository,
	policy pricing.Policy,
	idGen IDGenerator,
	clock Clock,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		policy:      policy,
		idGen:       idGen,
		clock:       clock,
	}
}

type CheckoutItemInput struct {
	ProductID int64
	Quantity  int64
}

type CheckoutInput struct {
	CustomerEmail  string
	IdempotencyKey string
	Items          []CheckoutItemInput
}

type CheckoutOutput struct {
	OrderID      int64           `json:"order_id"`
	Status       string          `json:"status"`
	Summary      pricing.Summary `json:"summary"`
	TotalDisplay string          `json:"total_display"`
}

// Confirm prices the cart at current catalog prices, snapshots them into
// an order, and returns the breakdown. The same (email, idempotency key)
// pair always returns the first order created for it.
func (u *CheckoutUsecase) Confirm(ctx context.Context, in CheckoutInput) (CheckoutOutput, error) {
	email := strings.TrimSpace(strings.ToLower(in.CustomerEmail))
	if _, err := mail.ParseAddress(email); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Items) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if it.Quantity < 1 {
			return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" {
		key = u.idGen.NewID()
	}
	if len(key) > 255 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}

	// Same key, same result.
	existing, found, err := u.orderRepo.FindByIdempotencyKey(ctx, email, key)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if found {
		return toCheckoutOutput(existing), nil
	}

	ids := make([]int64, 0, len(in.Items))
	for _, it := range in.Items {
		ids = append(ids, it.ProductID)
	}

	products, err := u.productRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]pricing.LineItem, 0, len(in.Items))
	orderItems := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			// Inactive or deleted since the cart was built.
			return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product")
		}
		lines = append(lines, pricing.LineItem{
			ProductID: p.ID,
			Product:   &pricing.ProductSnapshot{Price: p.Price},
			Quantity:  it.Quantity,
		})
		orderItems = append(orderItems, model.OrderItem{
			ProductID:           p.ID,
			ProductNameSnapshot: p.Name,
			UnitPriceSnapshot:   p.Price,
			Quantity:            it.Quantity,
		})
	}

	summary := pricing.Summarize(lines, u.policy)
	now := u.clock.Now()

	order := model.Order{
		CustomerEmail:  email,
		Status:         model.OrderStatusPending,
		Subtotal:       summary.Subtotal.StringFixed(2),
		Shipping:       summary.Shipping.StringFixed(2),
		Tax:            summary.Tax.StringFixed(2),
		Total:          summary.Total.StringFixed(2),
		IdempotencyKey: key,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.orderRepo.Create(ctx, order, orderItems)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCheckoutOutput(created), nil
}

func toCheckoutOutput(o model.Order) CheckoutOutput {
	summary := pricing.Summary{
		Subtotal: parseStoredAmount(o.Subtotal),
		Shipping: parseStoredAmount(o.Shipping),
		Tax:      parseStoredAmount(o.Tax),
		Total:    parseStoredAmount(o.Total),
	}
	return CheckoutOutput{
		OrderID:      o.ID,
		Status:       string(o.Status),
		Summary:      summary,
		TotalDisplay: pricing.FormatINRDecimal(summary.Total),
	}
}

func parseStoredAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
