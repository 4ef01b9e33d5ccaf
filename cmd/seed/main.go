// Seed: garante o schema, cria o usuário administrador padrão e,
// com -demo, insere produtos e clientes de exemplo.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/infrastructure/postgres"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/pkg/config"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/pkg/logger"
)

const (
	defaultAdminUser     = "admin"
	defaultAdminPassword = "admin123" // trocar no primeiro login
	defaultAdminEmail    = "admin@integreplus.local"
)

func main() {
	demo := flag.Bool("demo", false, "inserir produtos e clientes de exemplo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap do schema")
	}

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByUsername(ctx, defaultAdminUser)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash da senha do admin")
		}
		now := time.Now()
		admin := &entity.User{
			Username:     defaultAdminUser,
			PasswordHash: string(hash),
			Email:        defaultAdminEmail,
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("criar admin")
		}
		log.Info().Int64("id", admin.ID).Msg("usuário admin criado")
	} else {
		log.Info().Msg("usuário admin já existe")
	}

	if *demo {
		seedDemo(ctx,
			postgres.NewProductRepository(pool),
			postgres.NewClientRepository(pool),
			log)
	}
}

func seedDemo(ctx context.Context, products *postgres.ProductRepo, clients *postgres.ClientRepo, log *logger.Logger) {
	now := time.Now()
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	str := func(s string) *string { return &s }

	demoProducts := []*entity.Product{
		{Name: "Vinho Tinto Reserva 750ml", Quantity: 24, Price: price("89.90"), Expiry: now.AddDate(3, 0, 0), Category: "Vinhos", Barcode: str("7891000100101"), CreatedAt: now, UpdatedAt: now},
		{Name: "Vinho Branco Seco 750ml", Quantity: 18, Price: price("64.50"), Expiry: now.AddDate(2, 0, 0), Category: "Vinhos", Barcode: str("7891000100102"), CreatedAt: now, UpdatedAt: now},
		{Name: "Whey Protein 900g", Quantity: 12, Price: price("129.90"), Expiry: now.AddDate(1, 0, 0), Category: "Suplementos", Barcode: str("7891000100103"), CreatedAt: now, UpdatedAt: now},
		{Name: "Creatina 300g", Quantity: 8, Price: price("79.90"), Expiry: now.AddDate(1, 6, 0), Category: "Suplementos", Barcode: str("7891000100104"), CreatedAt: now, UpdatedAt: now},
		{Name: "Espumante Brut 750ml", Quantity: 4, Price: price("54.90"), Expiry: now.AddDate(0, 0, 20), Category: "Vinhos", Barcode: str("7891000100105"), CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range demoProducts {
		if err := products.Create(ctx, p); err != nil {
			log.Warn().Err(err).Str("produto", p.Name).Msg("produto de exemplo não inserido")
			continue
		}
		log.Info().Int64("id", p.ID).Str("produto", p.Name).Msg("produto de exemplo criado")
	}

	demoClients := []*entity.Client{
		{Name: "Maria Oliveira", CPF: str("123.456.789-00"), Email: str("maria@example.com"), Phone: "(11) 98888-0001", CreatedAt: now, UpdatedAt: now},
		{Name: "João Santos", CPF: str("987.654.321-00"), Email: str("joao@example.com"), Phone: "(11) 98888-0002", CreatedAt: now, UpdatedAt: now},
	}
	for _, c := range demoClients {
		if err := clients.Create(ctx, c); err != nil {
			log.Warn().Err(err).Str("cliente", c.Name).Msg("cliente de exemplo não inserido")
			continue
		}
		log.Info().Int64("id", c.ID).Str("cliente", c.Name).Msg("cliente de exemplo criado")
	}
}
