package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/config"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
)

const usage = `usage: storefront-admin <command> [flags]

commands:
  migrate        apply database migrations
  create-admin   create a back-office account (-email, -name, -password)
  seed           copy the bundled catalog into an empty product store
  dedupe         remove duplicate products that share a name`

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		slog.Error("❌ Command failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	configPath := fs.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	email := fs.String("email", "", "admin e-mail (create-admin)")
	name := fs.String("name", "", "admin display name (create-admin)")
	password := fs.String("password", "", "admin password, at least 8 characters (create-admin)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath == "" {
		*configPath = "config/local.yaml"
	}

	cfg, err := config.LoadConfigFromPath(*configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "migrate":
		if err := repository.Migrate(db); err != nil {
			return err
		}

		slog.Info("✅ Migrations applied")

		return nil

	case "create-admin":
		req := &models.CreateAdminRequest{Email: *email, Name: *name, Password: *password}
		if err := utils.NewValidator().Struct(req); err != nil {
			return fmt.Errorf("invalid admin: %w", err)
		}

		authService := service.NewAuthService(repository.NewAdminRepo(db), nil, []byte(cfg.Security.JWTKey), time.Duration(cfg.Security.JWTExpiryHours)*time.Hour)

		admin, err := authService.CreateAdmin(ctx, req)
		if err != nil {
			return err
		}

		slog.Info("✅ Admin created", slog.String("adminId", admin.ID.String()), slog.String("email", admin.Email))

		return nil

	case "seed", "dedupe":
		redisClient, err := repository.NewRedisClient(cfg)
		if err != nil {
			return err
		}

		defer redisClient.Close()

		productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

		productRepo := repository.NewProductRepo(db)
		maskRepo := repository.NewMaskRepo(redisClient)
		catalogService := service.NewCatalogService(productRepo, maskRepo, productCache)
		adminService := service.NewAdminProductService(productRepo, maskRepo, catalogService)

		if command == "seed" {
			resp, err := adminService.SeedProducts(ctx)
			if err != nil {
				return err
			}

			slog.Info("✅ Catalog seeded", slog.Int("inserted", resp.Inserted))

			return nil
		}

		resp, err := adminService.RemoveDuplicates(ctx)
		if err != nil {
			return err
		}

		slog.Info("✅ Duplicates removed", slog.Any("removed", resp.Removed))

		return nil
	}

	fmt.Fprintln(os.Stderr, usage)

	return fmt.Errorf("unknown command %q", command)
}
