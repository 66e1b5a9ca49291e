package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// MaintenanceUseCase casos de uso para visitas de mantenimiento.
//
// Las lecturas de química del agua son campos estructurados del registro.
// Nunca se serializan dentro del campo de notas: ese patrón obligaba a
// recuperarlas con regex y cualquier nota del operario con la misma forma
// corrompía el parseo.
type MaintenanceUseCase struct {
	repo       repository.MaintenanceRepository
	reportRepo repository.ServiceReportRepository
	clientRepo repository.ClientRepository
	tx         MaintenanceTxRunner
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, reportRepo repository.ServiceReportRepository, clientRepo repository.ClientRepository, tx MaintenanceTxRunner) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, reportRepo: reportRepo, clientRepo: clientRepo, tx: tx}
}

// Create programa una visita para un cliente de la empresa.
func (uc *MaintenanceUseCase) Create(ctx context.Context, companyID int64, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, companyID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	frequency := in.Frequency
	if frequency == "" {
		frequency = entity.FrequencyOnce
	}
	now := time.Now()
	m := &entity.Maintenance{
		CompanyID:     companyID,
		ClientID:      in.ClientID,
		ProjectID:     in.ProjectID,
		TechnicianID:  in.TechnicianID,
		ScheduledDate: in.ScheduledDate,
		Frequency:     frequency,
		Status:        entity.MaintenanceScheduled,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// GetByID obtiene una visita de la empresa.
func (uc *MaintenanceUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.MaintenanceResponse, error) {
	m, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaintenanceResponse(m), nil
}

// List lista visitas de la empresa con filtros.
func (uc *MaintenanceUseCase) List(ctx context.Context, companyID int64, f repository.MaintenanceFilter) (*dto.MaintenanceListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaintenanceResponse(m))
	}
	return &dto.MaintenanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update aplica solo los campos presentes. Al pasar a completed se fija la
// fecha de completado (si no vino) y se genera el informe de servicio y la
// siguiente visita de la recurrencia.
func (uc *MaintenanceUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	m, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	wasCompleted := m.Status == entity.MaintenanceCompleted
	if in.TechnicianID != nil {
		m.TechnicianID = in.TechnicianID
	}
	if in.ScheduledDate != nil {
		m.ScheduledDate = *in.ScheduledDate
	}
	if in.CompletedDate != nil {
		m.CompletedDate = in.CompletedDate
	}
	if in.Frequency != nil {
		m.Frequency = *in.Frequency
	}
	if in.Status != nil {
		m.Status = *in.Status
	}
	if in.Readings != nil {
		m.Readings = entity.WaterReadings{
			PH:            in.Readings.PH,
			ChlorinePPM:   in.Readings.ChlorinePPM,
			AlkalinityPPM: in.Readings.AlkalinityPPM,
			CyanuricPPM:   in.Readings.CyanuricPPM,
		}
	}
	if in.FilterCleaned != nil {
		m.FilterCleaned = *in.FilterCleaned
	}
	if in.EquipmentOK != nil {
		m.EquipmentOK = *in.EquipmentOK
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	if m.Status == entity.MaintenanceCompleted && m.CompletedDate == nil {
		now := time.Now()
		m.CompletedDate = &now
	}
	m.UpdatedAt = time.Now()
	if m.Status == entity.MaintenanceCompleted && !wasCompleted {
		if err := uc.complete(ctx, m); err != nil {
			return nil, err
		}
		return toMaintenanceResponse(m), nil
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// complete persiste la visita completada, su informe de servicio y, si es
// recurrente, la siguiente visita. Todo dentro de una transacción.
func (uc *MaintenanceUseCase) complete(ctx context.Context, m *entity.Maintenance) error {
	return uc.tx.Run(ctx, func(maintRepo repository.MaintenanceRepository, reportRepo repository.ServiceReportRepository) error {
		if err := maintRepo.Update(ctx, m); err != nil {
			return err
		}
		report := &entity.ServiceReport{
			MaintenanceID: m.ID,
			Summary:       buildReportSummary(m),
			Readings:      m.Readings,
			CreatedAt:     time.Now(),
		}
		if err := reportRepo.Create(ctx, report); err != nil {
			return err
		}
		next := m.NextScheduledDate()
		if next.IsZero() {
			return nil
		}
		now := time.Now()
		return maintRepo.Create(ctx, &entity.Maintenance{
			CompanyID:     m.CompanyID,
			ClientID:      m.ClientID,
			ProjectID:     m.ProjectID,
			TechnicianID:  m.TechnicianID,
			ScheduledDate: next,
			Frequency:     m.Frequency,
			Status:        entity.MaintenanceScheduled,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	})
}

// GetServiceReport devuelve el informe de una visita completada.
func (uc *MaintenanceUseCase) GetServiceReport(ctx context.Context, companyID, maintenanceID int64) (*dto.ServiceReportResponse, error) {
	m, err := uc.repo.GetByID(ctx, companyID, maintenanceID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	report, err := uc.reportRepo.GetByMaintenance(ctx, maintenanceID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ServiceReportResponse{
		ID:            report.ID,
		MaintenanceID: report.MaintenanceID,
		Summary:       report.Summary,
		Readings:      toReadingsDTO(report.Readings),
		ChemicalsUsed: report.ChemicalsUsed,
		CreatedAt:     report.CreatedAt,
	}, nil
}

// Delete elimina una visita de la empresa.
func (uc *MaintenanceUseCase) Delete(ctx context.Context, companyID, id int64) error {
	m, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}

// RollOverdue marca como vencidas las visitas programadas anteriores a now y
// genera la siguiente visita para las recurrentes. Lo invoca el scheduler.
// Si no se puede crear una visita siguiente, la recurrencia de ese cliente
// queda cortada: el error se acumula y se devuelve para que el scheduler lo
// registre, sin frenar el resto de las reprogramaciones.
func (uc *MaintenanceUseCase) RollOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := uc.repo.MarkOverdue(ctx, now)
	if err != nil {
		return 0, err
	}
	var createErrs []error
	for _, m := range overdue {
		next := m.NextScheduledDate()
		if next.IsZero() {
			continue
		}
		ts := time.Now()
		if err := uc.repo.Create(ctx, &entity.Maintenance{
			CompanyID:     m.CompanyID,
			ClientID:      m.ClientID,
			ProjectID:     m.ProjectID,
			TechnicianID:  m.TechnicianID,
			ScheduledDate: next,
			Frequency:     m.Frequency,
			Status:        entity.MaintenanceScheduled,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		}); err != nil {
			createErrs = append(createErrs, fmt.Errorf("reprogramar mantenimiento %d: %w", m.ID, err))
		}
	}
	return len(overdue), errors.Join(createErrs...)
}

func buildReportSummary(m *entity.Maintenance) string {
	summary := "Visita de mantenimiento completada."
	if m.Readings.HasAny() {
		summary += " Lecturas de agua registradas."
	}
	if m.FilterCleaned {
		summary += " Filtro limpiado."
	}
	if !m.EquipmentOK {
		summary += " Equipo requiere revisión."
	}
	return summary
}

func toReadingsDTO(w entity.WaterReadings) dto.WaterReadingsDTO {
	return dto.WaterReadingsDTO{
		PH:            w.PH,
		ChlorinePPM:   w.ChlorinePPM,
		AlkalinityPPM: w.AlkalinityPPM,
		CyanuricPPM:   w.CyanuricPPM,
	}
}

func toMaintenanceResponse(m *entity.Maintenance) *dto.MaintenanceResponse {
	if m == nil {
		return nil
	}
	return &dto.MaintenanceResponse{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		ClientID:      m.ClientID,
		ProjectID:     m.ProjectID,
		TechnicianID:  m.TechnicianID,
		ScheduledDate: m.ScheduledDate,
		CompletedDate: m.CompletedDate,
		Frequency:     m.Frequency,
		Status:        m.Status,
		Readings:      toReadingsDTO(m.Readings),
		FilterCleaned: m.FilterCleaned,
		EquipmentOK:   m.EquipmentOK,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
