// Package jobs agrupa las tareas programadas del proceso.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aracah/aracah-api/internal/application/gateway"
	"github.com/aracah/aracah-api/pkg/logger"
)

// Scheduler corre el recálculo nocturno de stock. Es el mismo
// procedimiento que expone POST /api/materiales/recalcular/stock; el job
// existe para que el saldo no dependa de que alguien apriete el botón.
type Scheduler struct {
	cron *cron.Cron
	db   gateway.Caller
	log  *logger.Logger
}

// NewScheduler construye el scheduler sin arrancarlo.
func NewScheduler(db gateway.Caller, log *logger.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), db: db, log: log}
}

// Start registra el recálculo con la expresión cron dada y arranca.
// Expresión vacía deja el scheduler apagado.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		s.log.Info().Msg("recálculo de stock programado deshabilitado")
		return nil
	}

	_, err := s.cron.AddFunc(spec, s.recalcularStock)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("cron", spec).Msg("recálculo de stock programado")
	return nil
}

// Stop detiene el scheduler y espera a que termine el job en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) recalcularStock() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	if err := s.db.Exec(ctx, "sp_materiales_recalcular_stock"); err != nil {
		s.log.Error().Err(err).Msg("recálculo de stock falló")
		return
	}
	s.log.Info().Dur("elapsed", time.Since(start)).Msg("recálculo de stock completado")
}
