// Package scheduler ejecuta las tareas periódicas del sistema con robfig/cron:
// la marca de visitas de mantenimiento vencidas y la sincronización de
// proveedores de mensajería.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Piscinas-api/internal/application/comms"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/pkg/config"
	"github.com/jhoicas/Piscinas-api/pkg/logger"
)

const jobTimeout = 5 * time.Minute

// Scheduler agrupa los jobs periódicos y su ciclo de vida.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger
}

// New registra los jobs según la configuración y devuelve el scheduler listo
// para arrancar. Una expresión cron inválida es error de arranque.
func New(cfg config.SyncConfig, maintUC *usecase.MaintenanceUseCase, commsUC *comms.UseCase, log *logger.Logger) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, log: log}

	if _, err := c.AddFunc(cfg.MaintenanceCron, s.rollOverdueJob(maintUC)); err != nil {
		return nil, fmt.Errorf("programar job de mantenimientos (%q): %w", cfg.MaintenanceCron, err)
	}
	if _, err := c.AddFunc(cfg.EmailCron, s.syncMessagesJob(commsUC)); err != nil {
		return nil, fmt.Errorf("programar job de mensajería (%q): %w", cfg.EmailCron, err)
	}
	return s, nil
}

// Start arranca el scheduler en su propia goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("Scheduler de tareas periódicas iniciado")
}

// Stop detiene el scheduler y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler detenido")
}

func (s *Scheduler) rollOverdueJob(uc *usecase.MaintenanceUseCase) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		n, err := uc.RollOverdue(ctx, time.Now())
		if err != nil {
			// n > 0 con error: hubo visitas marcadas cuya siguiente
			// recurrencia no se pudo crear.
			s.log.Error().Err(err).Int("marcados", n).Msg("Job de mantenimientos vencidos falló")
			return
		}
		s.log.Info().Int("marcados", n).Msg("Mantenimientos vencidos procesados")
	}
}

func (s *Scheduler) syncMessagesJob(uc *comms.UseCase) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		res, err := uc.SyncAll(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("Sincronización de mensajería falló")
			return
		}
		s.log.Info().
			Int("proveedores", res.ProvidersSynced).
			Int("nuevos", res.NewMessages).
			Int("fallidos", res.Failures).
			Msg("Sincronización de mensajería completada")
	}
}
