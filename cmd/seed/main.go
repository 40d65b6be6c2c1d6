package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	crepo "github.com/fahad1722/mail-sender/internal/careers/repository"
	"github.com/fahad1722/mail-sender/internal/config"
	rrepo "github.com/fahad1722/mail-sender/internal/referrals/repository"
)

// Seeds a handful of sample careers and referrals for local development.
func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fatalf("load config: %v", err)
	}
	pgCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		fatalf("invalid DATABASE_URL: %v", err)
	}
	pgPool, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		fatalf("pg pool: %v", err)
	}
	defer pgPool.Close()

	careers := crepo.New(pgPool)
	for _, c := range [][2]string{
		{"Acme", "https://acme.example/jobs"},
		{"Globex", "https://careers.globex.example"},
		{"Initech", "https://initech.example/careers"},
	} {
		row, err := careers.Create(ctx, c[0], c[1])
		if err != nil {
			fatalf("seed career %s: %v", c[0], err)
		}
		fmt.Printf("career %d: %s\n", row.ID, row.CompanyName)
	}

	referrals := rrepo.New(pgPool)
	for _, r := range [][2]string{
		{"Acme", "https://linkedin.com/in/jane-doe"},
		{"Globex", "https://linkedin.com/in/john-roe"},
	} {
		row, err := referrals.Create(ctx, r[0], r[1])
		if err != nil {
			fatalf("seed referral %s: %v", r[0], err)
		}
		fmt.Printf("referral %d: %s\n", row.ID, row.CompanyName)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
