package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Piscinas-api/internal/application/auth"
	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.CompanyRepository = (*fakeCompanyRepo)(nil)
)

// fakeUserRepo repositorio de usuarios en memoria; lookupErr fuerza fallos
// de consulta para los caminos de error.
type fakeUserRepo struct {
	seq       int64
	users     map[int64]*entity.User
	lookupErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.seq++
	u.ID = r.seq
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(_ context.Context, email string, companyID int64) (*entity.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, u := range r.users {
		if u.Email == email && u.CompanyID == companyID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByCompany(_ context.Context, companyID int64, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct {
	seq       int64
	companies map[int64]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[int64]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.seq++
	c.ID = r.seq
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func buildAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeCompanyRepo) {
	t.Helper()
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	uc := auth.NewAuthUseCase(users, companies, auth.JWTConfig{
		Secret:     "secreto-de-pruebas",
		ExpMinutes: 60,
		Issuer:     "piscinas-api-test",
	})
	return uc, users, companies
}

func seedCompany(t *testing.T, repo *fakeCompanyRepo) *entity.Company {
	t.Helper()
	c := &entity.Company{Name: "AquaPro Piscinas", Status: "active"}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_HasheaPasswordYRolPorDefecto(t *testing.T) {
	uc, users, companies := buildAuthUC(t)
	company := seedCompany(t, companies)

	u, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "oficina@aquapro.test",
		Password:  "contraseña-larga",
		CompanyID: company.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOficina, u.Role)

	stored := users.users[u.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña-larga")))
}

func TestRegisterUser_EmailDuplicadoEnLaEmpresa(t *testing.T) {
	uc, _, companies := buildAuthUC(t)
	company := seedCompany(t, companies)

	in := dto.RegisterRequest{Email: "repetido@aquapro.test", Password: "contraseña-larga", CompanyID: company.ID}
	_, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Un fallo de consulta no puede leerse como "email libre": el registro debe
// abortar con el error del repositorio, sin insertar nada.
func TestRegisterUser_ErrorDeConsultaAborta(t *testing.T) {
	uc, users, companies := buildAuthUC(t)
	company := seedCompany(t, companies)

	dbDown := errors.New("db caída")
	users.lookupErr = dbDown

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "nuevo@aquapro.test",
		Password:  "contraseña-larga",
		CompanyID: company.ID,
	})
	require.ErrorIs(t, err, dbDown)
	assert.Empty(t, users.users, "no debe insertarse ningún usuario")
}

func TestRegisterUser_EmpresaInexistente(t *testing.T) {
	uc, _, _ := buildAuthUC(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "nadie@aquapro.test",
		Password:  "contraseña-larga",
		CompanyID: 42,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
