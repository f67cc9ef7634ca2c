// migrate aplica o revierte el esquema embebido en internal/infrastructure/postgres/migrations.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down [pasos]   (sin pasos revierte todo)
//	go run ./cmd/migrate version
//
// Lee la conexión de la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/Facturation-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturation-api/pkg/config"
	"github.com/jhoicas/Facturation-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: migrate up | down [pasos] | version")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "migrate"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	switch os.Args[1] {
	case "up":
		err = postgres.MigrateUp(pool)
	case "down":
		steps := 0
		if len(os.Args) > 2 {
			if steps, err = strconv.Atoi(os.Args[2]); err != nil || steps < 0 {
				log.Fatal().Str("pasos", os.Args[2]).Msg("pasos debe ser un entero positivo")
			}
		}
		err = postgres.MigrateDown(pool, steps)
	case "version":
	default:
		log.Fatal().Str("comando", os.Args[1]).Msg("comando desconocido")
	}
	if err != nil {
		log.Fatal().Err(err).Str("comando", os.Args[1]).Msg("migración fallida")
	}

	version, dirty, err := postgres.MigrationVersion(pool)
	if err != nil {
		log.Fatal().Err(err).Msg("leer versión")
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("esquema")
}
