// Seeds the database with the demo accounts and a handful of bills in every
// review state, so a fresh install has something to show.
package main

import (
	"context"
	"log"
	"time"

	"billed/internal/models"
	"billed/internal/repository"
	"billed/pkg/auth"
	"billed/pkg/config"
	"billed/pkg/logger"
	"billed/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	billRepo := repository.NewBillRepository(db, appLogger)

	appLogger.Info("Starting database seeding")

	seedUsers(ctx, userRepo, appLogger)
	seedBills(ctx, billRepo, appLogger)

	appLogger.Info("Seeding complete")
}

func seedUsers(ctx context.Context, repo *repository.UserRepository, appLogger *zap.Logger) {
	users := []struct {
		userType models.UserType
		name     string
		email    string
		password string
	}{
		{models.UserTypeEmployee, "employee", "employee@test.tld", "employee"},
		{models.UserTypeAdmin, "admin", "admin@test.tld", "admin"},
	}

	for _, u := range users {
		if existing, _ := repo.GetByEmail(ctx, u.email); existing != nil {
			appLogger.Info("user already present", zap.String("email", u.email))
			continue
		}

		hash, err := auth.HashPassword(u.password)
		if err != nil {
			appLogger.Fatal("Failed to hash password", zap.Error(err))
		}

		now := time.Now()
		user := &models.User{
			ID:        uuid.New(),
			Type:      u.userType,
			Name:      u.name,
			Email:     u.email,
			Password:  hash,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, user); err != nil {
			appLogger.Fatal("Failed to seed user", zap.String("email", u.email), zap.Error(err))
		}
		appLogger.Info("user seeded", zap.String("email", u.email), zap.String("type", string(u.userType)))
	}
}

func seedBills(ctx context.Context, repo *repository.BillRepository, appLogger *zap.Logger) {
	now := time.Now()
	bills := []*models.Bill{
		{
			Type: "Hôtel et logement", Name: "encore", Date: "2004-04-04",
			Amount: 400, VAT: "80", Pct: 20, Commentary: "séminaire billed",
			FileName: "preview-facture-free-201801-pdf-1.jpg",
			Status:   models.BillStatusPending, CommentAdmin: "ok",
		},
		{
			Type: "Transports", Name: "test1", Date: "2001-01-01",
			Amount: 100, VAT: "", Pct: 20, Commentary: "plop",
			FileName: "1592770761.jpeg",
			Status:   models.BillStatusRefused, CommentAdmin: "en fait non",
		},
		{
			Type: "Services en ligne", Name: "test3", Date: "2003-03-03",
			Amount: 300, VAT: "60", Pct: 20, Commentary: "",
			FileName: "facture-client-php-exportee-dans-document-pdf.png",
			Status:   models.BillStatusAccepted, CommentAdmin: "bon bah d'accord",
		},
		{
			Type: "Restaurants et bars", Name: "test2", Date: "2002-02-02",
			Amount: 200, VAT: "40", Pct: 20, Commentary: "test2",
			FileName: "preview-facture-free-201801-pdf-1.jpg",
			Status:   models.BillStatusRefused, CommentAdmin: "pas la bonne facture",
		},
	}

	for _, bill := range bills {
		bill.ID = uuid.New()
		bill.Email = "employee@test.tld"
		bill.FileURL = "/uploads/" + bill.FileName
		bill.CreatedAt = now
		bill.UpdatedAt = now

		if err := repo.Create(ctx, bill); err != nil {
			appLogger.Warn("Failed to seed bill (already present?)",
				zap.String("name", bill.Name),
				zap.Error(err),
			)
			continue
		}
		appLogger.Info("bill seeded", zap.String("name", bill.Name), zap.String("status", string(bill.Status)))
	}
}
