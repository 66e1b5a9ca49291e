package auth

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
	"github.com/jhoicas/Piscinas-api/pkg/jwt"
)

// OAuthConfig parámetros del flujo con el proveedor de identidad externo.
// La verificación criptográfica del id_token la hace el proveedor/gateway;
// aquí solo se emite y valida el state anti-CSRF y se resuelve el usuario local.
type OAuthConfig struct {
	GoogleClientID string
	RedirectURL    string
	StateTTL       time.Duration
}

// OAuthUseCase maneja el handshake con el proveedor OAuth externo.
type OAuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	cfg      OAuthConfig

	mu     sync.Mutex
	states map[string]time.Time // state -> vencimiento
}

// NewOAuthUseCase construye el caso de uso del flujo OAuth.
func NewOAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, cfg OAuthConfig) *OAuthUseCase {
	if cfg.StateTTL <= 0 {
		cfg.StateTTL = 10 * time.Minute
	}
	return &OAuthUseCase{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		cfg:      cfg,
		states:   make(map[string]time.Time),
	}
}

// Prepare emite un state de un solo uso y la URL de redirección al proveedor.
func (uc *OAuthUseCase) Prepare() *dto.PrepareOAuthResponse {
	state := uuid.New().String()
	expires := time.Now().Add(uc.cfg.StateTTL)

	uc.mu.Lock()
	// Barrido de states vencidos aprovechando el lock
	now := time.Now()
	for s, exp := range uc.states {
		if exp.Before(now) {
			delete(uc.states, s)
		}
	}
	uc.states[state] = expires
	uc.mu.Unlock()

	q := url.Values{}
	q.Set("client_id", uc.cfg.GoogleClientID)
	q.Set("redirect_uri", uc.cfg.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)

	return &dto.PrepareOAuthResponse{
		State:       state,
		RedirectURL: "https://accounts.google.com/o/oauth2/v2/auth?" + q.Encode(),
		ExpiresAt:   expires,
	}
}

// Complete consume el state del callback y resuelve el usuario local por el
// email verificado que reporta el proveedor. Si el usuario no tiene empresa
// asignada retorna ErrNoOrganization (código "no-organization" en el login).
func (uc *OAuthUseCase) Complete(ctx context.Context, state, email string) (*dto.LoginResponse, error) {
	uc.mu.Lock()
	exp, ok := uc.states[state]
	delete(uc.states, state) // un solo uso, válido o no
	uc.mu.Unlock()
	if !ok || exp.Before(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	if user.CompanyID == 0 {
		return nil, domain.ErrNoOrganization
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}
