package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ComplianceUseCase casos de uso de licencias y pólizas de seguro.
type ComplianceUseCase struct {
	licenseRepo   repository.LicenseRepository
	insuranceRepo repository.InsuranceRepository
}

// NewComplianceUseCase construye el caso de uso.
func NewComplianceUseCase(licenseRepo repository.LicenseRepository, insuranceRepo repository.InsuranceRepository) *ComplianceUseCase {
	return &ComplianceUseCase{licenseRepo: licenseRepo, insuranceRepo: insuranceRepo}
}

// CreateLicense registra una licencia o permiso.
func (uc *ComplianceUseCase) CreateLicense(ctx context.Context, companyID int64, in dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	now := time.Now()
	l := &entity.License{
		CompanyID:  companyID,
		Name:       in.Name,
		Number:     in.Number,
		Authority:  in.Authority,
		IssueDate:  in.IssueDate,
		ExpiryDate: in.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.licenseRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLicenseResponse(l), nil
}

// GetLicense obtiene una licencia de la empresa.
func (uc *ComplianceUseCase) GetLicense(ctx context.Context, companyID, id int64) (*dto.LicenseResponse, error) {
	l, err := uc.licenseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return toLicenseResponse(l), nil
}

// ListLicenses lista las licencias de la empresa. Con expiringDays > 0
// devuelve solo las que vencen dentro de esa ventana.
func (uc *ComplianceUseCase) ListLicenses(ctx context.Context, companyID int64, expiringDays, limit, offset int) (*dto.LicenseListResponse, error) {
	var (
		list []*entity.License
		err  error
	)
	if expiringDays > 0 {
		before := time.Now().AddDate(0, 0, expiringDays)
		list, err = uc.licenseRepo.ListExpiring(ctx, companyID, before)
	} else {
		list, err = uc.licenseRepo.ListByCompany(ctx, companyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.LicenseResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLicenseResponse(l))
	}
	return &dto.LicenseListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// UpdateLicense aplica solo los campos presentes.
func (uc *ComplianceUseCase) UpdateLicense(ctx context.Context, companyID, id int64, in dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	l, err := uc.licenseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Number != nil {
		l.Number = *in.Number
	}
	if in.Authority != nil {
		l.Authority = *in.Authority
	}
	if in.IssueDate != nil {
		l.IssueDate = in.IssueDate
	}
	if in.ExpiryDate != nil {
		l.ExpiryDate = in.ExpiryDate
	}
	l.UpdatedAt = time.Now()
	if err := uc.licenseRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toLicenseResponse(l), nil
}

// DeleteLicense elimina una licencia de la empresa.
func (uc *ComplianceUseCase) DeleteLicense(ctx context.Context, companyID, id int64) error {
	l, err := uc.licenseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.licenseRepo.Delete(ctx, companyID, id)
}

// CreateInsurance registra una póliza de seguro.
func (uc *ComplianceUseCase) CreateInsurance(ctx context.Context, companyID int64, in dto.CreateInsuranceRequest) (*dto.InsuranceResponse, error) {
	now := time.Now()
	p := &entity.Insurance{
		CompanyID:     companyID,
		PolicyNumber:  in.PolicyNumber,
		Carrier:       in.Carrier,
		CoverageType:  in.CoverageType,
		Premium:       in.Premium,
		EffectiveDate: in.EffectiveDate,
		ExpiryDate:    in.ExpiryDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.insuranceRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toInsuranceResponse(p), nil
}

// GetInsurance obtiene una póliza de la empresa.
func (uc *ComplianceUseCase) GetInsurance(ctx context.Context, companyID, id int64) (*dto.InsuranceResponse, error) {
	p, err := uc.insuranceRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toInsuranceResponse(p), nil
}

// ListInsurance lista las pólizas de la empresa. Con expiringDays > 0
// devuelve solo las que vencen dentro de esa ventana.
func (uc *ComplianceUseCase) ListInsurance(ctx context.Context, companyID int64, expiringDays, limit, offset int) (*dto.InsuranceListResponse, error) {
	var (
		list []*entity.Insurance
		err  error
	)
	if expiringDays > 0 {
		before := time.Now().AddDate(0, 0, expiringDays)
		list, err = uc.insuranceRepo.ListExpiring(ctx, companyID, before)
	} else {
		list, err = uc.insuranceRepo.ListByCompany(ctx, companyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.InsuranceResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toInsuranceResponse(p))
	}
	return &dto.InsuranceListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// UpdateInsurance aplica solo los campos presentes.
func (uc *ComplianceUseCase) UpdateInsurance(ctx context.Context, companyID, id int64, in dto.UpdateInsuranceRequest) (*dto.InsuranceResponse, error) {
	p, err := uc.insuranceRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.PolicyNumber != nil {
		p.PolicyNumber = *in.PolicyNumber
	}
	if in.Carrier != nil {
		p.Carrier = *in.Carrier
	}
	if in.CoverageType != nil {
		p.CoverageType = *in.CoverageType
	}
	if in.Premium != nil {
		p.Premium = *in.Premium
	}
	if in.EffectiveDate != nil {
		p.EffectiveDate = in.EffectiveDate
	}
	if in.ExpiryDate != nil {
		p.ExpiryDate = in.ExpiryDate
	}
	p.UpdatedAt = time.Now()
	if err := uc.insuranceRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toInsuranceResponse(p), nil
}

// DeleteInsurance elimina una póliza de la empresa.
func (uc *ComplianceUseCase) DeleteInsurance(ctx context.Context, companyID, id int64) error {
	p, err := uc.insuranceRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.insuranceRepo.Delete(ctx, companyID, id)
}

func toLicenseResponse(l *entity.License) *dto.LicenseResponse {
	if l == nil {
		return nil
	}
	return &dto.LicenseResponse{
		ID:         l.ID,
		CompanyID:  l.CompanyID,
		Name:       l.Name,
		Number:     l.Number,
		Authority:  l.Authority,
		IssueDate:  l.IssueDate,
		ExpiryDate: l.ExpiryDate,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toInsuranceResponse(p *entity.Insurance) *dto.InsuranceResponse {
	if p == nil {
		return nil
	}
	return &dto.InsuranceResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		PolicyNumber:  p.PolicyNumber,
		Carrier:       p.Carrier,
		CoverageType:  p.CoverageType,
		Premium:       p.Premium,
		EffectiveDate: p.EffectiveDate,
		ExpiryDate:    p.ExpiryDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
