package main

import (
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/middleware"
	"storefront/internal/pricing"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// sessionTokenCodec signs and verifies the admin session cookie.
type sessionTokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func (s *sessionTokenCodec) Issue(sessionID string, userID int64, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"sid": sessionID,
		"sub": userID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (s *sessionTokenCodec) Parse(raw string) (string, int64, error) {
	return middleware.ParseSessionToken(string(s.secret), raw)
}

func main() {
	// optional in prod; env vars may already be set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.AdminUser{},
		&model.AdminSession{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// repositories (GORM)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	userRepo := infraRepo.NewAdminUserRepository(gormDB)
	sessionRepo := infraRepo.NewAdminSessionRepository(gormDB)

	idGen := &uuidGenerator{}
	clock := &realClock{}

	verifier := usecase.NewBcryptPasswordVerifier()

	sessionTTL := 24 * time.Hour
	codec := &sessionTokenCodec{
		secret: []byte(cfg.SessionSecret),
		ttl:    sessionTTL,
	}

	// shipping/tax currently waived; switch to StandardPolicy() to charge
	// the threshold-based shipping fee and 5% tax again
	policy := pricing.CurrentPolicy()

	// usecases
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(productRepo, policy)
	checkoutUC := usecase.NewCheckoutUsecase(orderRepo, productRepo, policy, idGen, clock)
	authUC := usecase.NewAdminAuthUsecase(userRepo, sessionRepo, verifier, codec, codec, idGen, clock, sessionTTL)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, orderItemRepo)

	// handlers
	e := server.New(cfg)
	handler.NewProductHandler(productUC).RegisterRoutes(e)
	handler.NewCartHandler(cartUC).RegisterRoutes(e)
	handler.NewCheckoutHandler(checkoutUC).RegisterRoutes(e)
	handler.NewAdminAuthHandler(authUC).RegisterRoutes(e)
	handler.NewAdminOrderHandler(adminOrderUC).RegisterRoutes(e, cfg, sessionRepo, userRepo)
	handler.NewAdminProductHandler(productUC).RegisterRoutes(e, cfg, sessionRepo, userRepo)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := e.Start(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
