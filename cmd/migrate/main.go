package main

import (
	"context"

	"github.com/tu-usuario/inventory-track/internal/infrastructure/postgres"
	"github.com/tu-usuario/inventory-track/pkg/config"
	"github.com/tu-usuario/inventory-track/pkg/logger"
)

// Aplica el esquema y termina. Útil en pipelines de despliegue donde no se
// quiere que el API migre al arrancar.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")
}
