package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"content-ledger/pkg/config"
	"content-ledger/pkg/database"
	"content-ledger/pkg/jwt"
	"content-ledger/pkg/logger"
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"
	"content-ledger/services/ledger/internal/repo/persistent"
	"content-ledger/services/ledger/internal/settlement"
	"content-ledger/services/ledger/internal/usecase"

	"github.com/google/uuid"
)

type demoUser struct {
	name string
	id   string
	role string
}

func main() {
	var funds uint64
	flag.Uint64Var(&funds, "funds", 1000, "wallet balance given to every demo buyer")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if cfg.LedgerOwnerID == "" {
		panic("LEDGER_OWNER_ID must be set in environment variables")
	}

	log := logger.New()
	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	if cfg.DBDriver == "sqlite" {
		if err := model.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			panic(err)
		}
	}

	deps := usecase.Deps{
		Repo:       persistent.NewLedgerRepository(db),
		Settlement: settlement.NewWalletSettlement(log),
		Owner:      cfg.LedgerOwnerID,
		Custody:    cfg.LedgerCustodyID,
		Logger:     log,
	}

	users := []demoUser{
		{name: "owner", id: cfg.LedgerOwnerID, role: "owner"},
		{name: "alice", id: uuid.New().String(), role: "creator"},
		{name: "bob", id: uuid.New().String(), role: "creator"},
		{name: "charlie", id: uuid.New().String(), role: "buyer"},
		{name: "diana", id: uuid.New().String(), role: "buyer"},
	}

	if err := seedLedger(context.Background(), deps, users, funds); err != nil {
		log.Error("Failed to seed ledger: %v", err)
		panic(err)
	}

	jwtService := jwt.NewService(cfg.JWTSecret)
	for _, user := range users {
		token, err := jwtService.GenerateToken(user.id, user.role)
		if err != nil {
			log.Error("Failed to issue token for %s: %v", user.name, err)
			continue
		}
		fmt.Printf("%-8s %s\n  Bearer %s\n", user.name, user.id, token)
	}

	log.Info("Ledger seeded successfully!")
}

func seedLedger(ctx context.Context, deps usecase.Deps, users []demoUser, funds uint64) error {
	contents := usecase.NewContentUseCase(deps)
	access := usecase.NewAccessUseCase(deps)
	wallets := usecase.NewWalletUseCase(deps)
	ratings := usecase.NewRatingUseCase(deps)
	clock := usecase.UnixClock{}

	owner, alice, bob, charlie, diana := users[0], users[1], users[2], users[3], users[4]

	for _, buyer := range []demoUser{charlie, diana} {
		if _, err := wallets.TopUp(ctx, usecase.Call{Caller: owner.id, Height: clock.Height()}, buyer.id, funds); err != nil {
			return fmt.Errorf("failed to fund %s: %w", buyer.name, err)
		}
	}

	items := []struct {
		creator demoUser
		id      uint64
		price   uint64
		royalty uint64
		premium bool
	}{
		{owner, 1, 50, 10, false},
		{alice, 2, 100, 20, true},
		{alice, 3, 250, 35, true},
		{bob, 4, 80, 50, true},
	}
	for _, item := range items {
		call := usecase.Call{Caller: item.creator.id, Height: clock.Height()}
		var err error
		if item.premium {
			_, err = contents.CreatePremiumContent(ctx, call, item.id, item.price, item.royalty)
		} else {
			_, err = contents.CreateContent(ctx, call, item.id, item.price, item.royalty)
		}
		// Re-running the seed finds its content already registered.
		if errors.Is(err, entity.ErrContentNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create content %d: %w", item.id, err)
		}
	}

	purchases := []struct {
		buyer  demoUser
		id     uint64
		rating uint64
	}{
		{charlie, 2, 5},
		{charlie, 4, 3},
		{diana, 2, 4},
	}
	for _, purchase := range purchases {
		call := usecase.Call{Caller: purchase.buyer.id, Height: clock.Height()}
		if _, err := access.PurchaseContentAccess(ctx, call, purchase.id); err != nil {
			return fmt.Errorf("failed to purchase content %d for %s: %w", purchase.id, purchase.buyer.name, err)
		}
		if _, err := ratings.RateContent(ctx, call, purchase.id, purchase.rating); err != nil {
			return fmt.Errorf("failed to rate content %d: %w", purchase.id, err)
		}
	}
	return nil
}
