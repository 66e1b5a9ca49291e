package usecase_test

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia y almacenamiento.
// Implementan lo justo para ejercitar los casos de uso sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.ProjectRepository       = (*fakeProjectRepo)(nil)
	_ repository.PhaseRepository         = (*fakePhaseRepo)(nil)
	_ repository.DocumentRepository      = (*fakeDocumentRepo)(nil)
	_ repository.ClientRepository        = (*fakeClientRepo)(nil)
	_ repository.MaintenanceRepository   = (*fakeMaintenanceRepo)(nil)
	_ repository.ServiceReportRepository = (*fakeReportRepo)(nil)
	_ usecase.MaintenanceTxRunner        = (*fakeTx)(nil)
	_ usecase.ObjectStorage              = (*fakeStorage)(nil)
)

type fakeProjectRepo struct {
	seq      int64
	projects map[int64]*entity.Project
	preview  entity.DeletionPreview
	deleted  []int64
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int64]*entity.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) ListByCompany(_ context.Context, companyID int64, f repository.ProjectFilter) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if p.CompanyID != companyID {
			continue
		}
		if p.IsArchived && !f.IncludeArchived {
			continue
		}
		if f.ClientID != 0 && p.ClientID != f.ClientID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *entity.Project) error {
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) SetArchived(_ context.Context, companyID, id int64, archived bool) error {
	if p, ok := r.projects[id]; ok && p.CompanyID == companyID {
		p.IsArchived = archived
	}
	return nil
}

func (r *fakeProjectRepo) DeletionPreview(_ context.Context, _, _ int64) (*entity.DeletionPreview, error) {
	cp := r.preview
	return &cp, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, _, id int64) error {
	delete(r.projects, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakePhaseRepo struct {
	seq    int64
	phases map[int64]*entity.ProjectPhase
}

func newFakePhaseRepo() *fakePhaseRepo {
	return &fakePhaseRepo{phases: make(map[int64]*entity.ProjectPhase)}
}

func (r *fakePhaseRepo) Create(_ context.Context, ph *entity.ProjectPhase) error {
	r.seq++
	ph.ID = r.seq
	cp := *ph
	r.phases[ph.ID] = &cp
	return nil
}

func (r *fakePhaseRepo) GetByID(_ context.Context, id int64) (*entity.ProjectPhase, error) {
	ph, ok := r.phases[id]
	if !ok {
		return nil, nil
	}
	cp := *ph
	return &cp, nil
}

func (r *fakePhaseRepo) ListByProject(_ context.Context, projectID int64) ([]*entity.ProjectPhase, error) {
	var out []*entity.ProjectPhase
	for _, ph := range r.phases {
		if ph.ProjectID == projectID {
			cp := *ph
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakePhaseRepo) Update(_ context.Context, ph *entity.ProjectPhase) error {
	cp := *ph
	r.phases[ph.ID] = &cp
	return nil
}

func (r *fakePhaseRepo) Delete(_ context.Context, id int64) error {
	delete(r.phases, id)
	return nil
}

type fakeDocumentRepo struct {
	seq  int64
	docs map[int64]*entity.ProjectDocument
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[int64]*entity.ProjectDocument)}
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *entity.ProjectDocument) error {
	r.seq++
	d.ID = r.seq
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id int64) (*entity.ProjectDocument, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) ListByProject(_ context.Context, projectID int64, documentType string) ([]*entity.ProjectDocument, error) {
	var out []*entity.ProjectDocument
	for _, d := range r.docs {
		if d.ProjectID != projectID {
			continue
		}
		if documentType != "" && d.DocumentType != documentType {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDocumentRepo) Update(_ context.Context, d *entity.ProjectDocument) error {
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id int64) error {
	delete(r.docs, id)
	return nil
}

type fakeClientRepo struct {
	seq     int64
	clients map[int64]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[int64]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.seq++
	c.ID = r.seq
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) ListByCompany(_ context.Context, companyID int64, _ string, _, _ int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, _, id int64) error {
	delete(r.clients, id)
	return nil
}

type fakeMaintenanceRepo struct {
	seq       int64
	visits    map[int64]*entity.Maintenance
	createErr error // si está seteado, Create falla
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{visits: make(map[int64]*entity.Maintenance)}
}

func (r *fakeMaintenanceRepo) Create(_ context.Context, m *entity.Maintenance) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	m.ID = r.seq
	cp := *m
	r.visits[m.ID] = &cp
	return nil
}

func (r *fakeMaintenanceRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Maintenance, error) {
	m, ok := r.visits[id]
	if !ok || m.CompanyID != companyID {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaintenanceRepo) ListByCompany(_ context.Context, companyID int64, f repository.MaintenanceFilter) ([]*entity.Maintenance, error) {
	var out []*entity.Maintenance
	for _, m := range r.visits {
		if m.CompanyID != companyID {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMaintenanceRepo) Update(_ context.Context, m *entity.Maintenance) error {
	cp := *m
	r.visits[m.ID] = &cp
	return nil
}

func (r *fakeMaintenanceRepo) Delete(_ context.Context, _, id int64) error {
	delete(r.visits, id)
	return nil
}

func (r *fakeMaintenanceRepo) MarkOverdue(_ context.Context, before time.Time) ([]*entity.Maintenance, error) {
	var out []*entity.Maintenance
	for _, m := range r.visits {
		if m.Status == entity.MaintenanceScheduled && m.ScheduledDate.Before(before) {
			m.Status = entity.MaintenanceOverdue
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeReportRepo struct {
	seq     int64
	reports map[int64]*entity.ServiceReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[int64]*entity.ServiceReport)}
}

func (r *fakeReportRepo) Create(_ context.Context, rep *entity.ServiceReport) error {
	r.seq++
	rep.ID = r.seq
	cp := *rep
	r.reports[rep.ID] = &cp
	return nil
}

func (r *fakeReportRepo) GetByMaintenance(_ context.Context, maintenanceID int64) (*entity.ServiceReport, error) {
	for _, rep := range r.reports {
		if rep.MaintenanceID == maintenanceID {
			cp := *rep
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeTx ejecuta fn directamente contra los fakes; registra que corrió.
type fakeTx struct {
	maintRepo  *fakeMaintenanceRepo
	reportRepo *fakeReportRepo
	runs       int
}

func (t *fakeTx) Run(ctx context.Context, fn func(repository.MaintenanceRepository, repository.ServiceReportRepository) error) error {
	t.runs++
	return fn(t.maintRepo, t.reportRepo)
}

// fakeStorage registra cada llamada al object store.
type fakeStorage struct {
	uploads []string
	deletes []string
	signed  []string
}

func (s *fakeStorage) Upload(_ context.Context, objectKey, _ string, r io.Reader, _ int64) error {
	_, _ = io.Copy(io.Discard, r)
	s.uploads = append(s.uploads, objectKey)
	return nil
}

func (s *fakeStorage) SignedGetURL(objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/" + objectKey, nil
}

func (s *fakeStorage) SignedPutURL(objectKey, contentType string, _ time.Duration) (string, map[string]string, error) {
	s.signed = append(s.signed, objectKey)
	return "https://storage.test/upload/" + objectKey, map[string]string{"Content-Type": contentType}, nil
}

func (s *fakeStorage) Delete(_ context.Context, objectKey string) error {
	s.deletes = append(s.deletes, objectKey)
	return nil
}
