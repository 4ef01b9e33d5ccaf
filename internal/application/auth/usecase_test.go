package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/audit"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/pkg/logger"
)

// fakeUserRepo implementação em memória do porto de usuários para os testes.
type fakeUserRepo struct {
	users  map[string]*entity.User // por username
	nextID int64

	failureWrites int // chamadas a RecordLoginFailure
	successWrites int // chamadas a RecordLoginSuccess
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) add(u *entity.User) *entity.User {
	u.ID = f.nextID
	f.nextID++
	f.users[u.Username] = u
	return u
}

func (f *fakeUserRepo) byID(id int64) *entity.User {
	for _, u := range f.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.Username]; ok {
		return domain.ErrDuplicate
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return f.byID(id), nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByResetToken(_ context.Context, token string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	u := f.byID(id)
	if u == nil {
		return domain.ErrUserNotFound
	}
	delete(f.users, u.Username)
	return nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int64, role string, _ time.Time) error {
	u := f.byID(id)
	if u == nil {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) RecordLoginSuccess(_ context.Context, id int64, at time.Time) error {
	f.successWrites++
	u := f.byID(id)
	u.FailedAttempts = 0
	u.LastLogin = &at
	return nil
}

func (f *fakeUserRepo) RecordLoginFailure(_ context.Context, id int64, attempts int, locked bool, _ time.Time) error {
	f.failureWrites++
	u := f.byID(id)
	u.FailedAttempts = attempts
	u.Locked = locked
	return nil
}

func (f *fakeUserRepo) Unlock(_ context.Context, id int64, _ time.Time) error {
	u := f.byID(id)
	if u == nil {
		return domain.ErrUserNotFound
	}
	u.Locked = false
	u.FailedAttempts = 0
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string, _ time.Time) error {
	u := f.byID(id)
	if u == nil {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) SetResetToken(_ context.Context, id int64, token string, expiry time.Time) error {
	u := f.byID(id)
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	return nil
}

func (f *fakeUserRepo) ClearResetToken(_ context.Context, id int64) error {
	u := f.byID(id)
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
	return nil
}

// fakeAuditRepo trilha em memória; com fail=true toda escrita falha.
type fakeAuditRepo struct {
	entries []*entity.AuditEntry
	fail    bool
}

func (f *fakeAuditRepo) Append(_ context.Context, entry *entity.AuditEntry) error {
	if f.fail {
		return errors.New("trilha indisponível")
	}
	f.entries = append(f.entries, entry)
	return nil
}

func testRecorder(repo *fakeAuditRepo) *audit.Recorder {
	return audit.NewRecorder(repo, logger.New(logger.Config{Env: "development", Level: "error"}))
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuthUC(repo *fakeUserRepo) *AuthUseCase {
	return NewAuthUseCase(repo, testRecorder(&fakeAuditRepo{}), JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 60,
		Issuer:     "integre-plus-test",
	})
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) *entity.User {
	t.Helper()
	return repo.add(&entity.User{
		Username:     username,
		PasswordHash: mustHash(t, password),
		Email:        username + "@example.com",
		Role:         entity.RoleFuncionario,
	})
}

// Cenário: três senhas erradas seguidas bloqueiam a conta; a quarta tentativa,
// mesmo com a senha correta, continua bloqueada.
func TestAuthenticate_BloqueiaNaTerceiraFalha(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "carlos", "Senha@123")
	uc := newTestAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Authenticate(ctx, "carlos", "errada1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 1, user.FailedAttempts)
	assert.False(t, user.Locked)

	_, err = uc.Authenticate(ctx, "carlos", "errada2")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 2, user.FailedAttempts)
	assert.False(t, user.Locked)

	// Terceira falha consecutiva: bloqueio imediato, erro distinto.
	_, err = uc.Authenticate(ctx, "carlos", "errada3")
	assert.ErrorIs(t, err, domain.ErrAccountLockedNow)
	assert.Equal(t, 3, user.FailedAttempts)
	assert.True(t, user.Locked)

	// Senha correta não destrava: a conta segue bloqueada e o contador parado.
	_, err = uc.Authenticate(ctx, "carlos", "Senha@123")
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
	assert.Equal(t, 3, user.FailedAttempts)
	assert.Equal(t, 3, repo.failureWrites, "conta bloqueada não gera novas escritas de falha")
}

// Cenário: duas falhas e um acerto; o acerto zera o contador e grava o login.
func TestAuthenticate_SucessoZeraContador(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ana", "Senha@123")
	uc := newTestAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Authenticate(ctx, "ana", "errada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Authenticate(ctx, "ana", "errada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 2, user.FailedAttempts)

	identity, err := uc.Authenticate(ctx, "ana", "Senha@123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, "ana", identity.Username)
	assert.Equal(t, 0, user.FailedAttempts)
	assert.False(t, user.Locked)
	require.NotNil(t, user.LastLogin)

	// O contador recomeça do zero depois do acerto.
	_, err = uc.Authenticate(ctx, "ana", "errada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 1, user.FailedAttempts)
}

// Username inexistente: falha sem criar estado fantasma nem tocar contadores.
func TestAuthenticate_UsuarioInexistenteENoOp(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana", "Senha@123")
	uc := newTestAuthUC(repo)

	_, err := uc.Authenticate(context.Background(), "fantasma", "qualquer")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, 0, repo.failureWrites)
	assert.Equal(t, 0, repo.successWrites)
	assert.Len(t, repo.users, 1)
}

func TestLogin_DevolveTokenEIdentidade(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana", "Senha@123")
	uc := newTestAuthUC(repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "Senha@123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.Username)
	assert.Equal(t, entity.RoleFuncionario, out.Role)
}

func TestRegister_ValidaAntesDePersistir(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)
	ctx := context.Background()

	// Senha fraca: rejeitada antes de qualquer escrita.
	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "novo", Password: "fraca", Email: "novo@example.com"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, repo.users)

	// Email inválido: idem.
	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "novo", Password: "Senha@123", Email: "sem-arroba"})
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, repo.users)

	// Registro válido: papel padrão Funcionario, hash bcrypt persistido.
	out, err := uc.Register(ctx, dto.RegisterRequest{Username: "novo", Password: "Senha@123", Email: "novo@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFuncionario, out.Role)
	created := repo.users["novo"]
	require.NotNil(t, created)
	assert.NotEqual(t, "Senha@123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Senha@123")))
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana", "Senha@123")
	uc := newTestAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "ana", Password: "Senha@123", Email: "outra@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "username")
}

func TestResetPassword_TokenExpirado(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ana", "Senha@123")
	uc := newTestAuthUC(repo)
	ctx := context.Background()

	token := "token-antigo"
	expired := time.Now().Add(-time.Minute)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expired

	err := uc.ResetPassword(ctx, token, "NovaSenha@1")
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestResetPassword_FluxoCompleto(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ana", "Senha@123")
	user.Locked = true
	user.FailedAttempts = 3
	uc := newTestAuthUC(repo)
	ctx := context.Background()

	token, err := uc.RequestPasswordReset(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, uc.ResetPassword(ctx, token, "NovaSenha@1"))

	// Redefinir a senha limpa o token e desbloqueia a conta.
	assert.Nil(t, user.ResetToken)
	assert.False(t, user.Locked)
	assert.Equal(t, 0, user.FailedAttempts)

	identity, err := uc.Authenticate(ctx, "ana", "NovaSenha@1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
}

func TestRequestPasswordReset_EmailDesconhecido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	_, err := uc.RequestPasswordReset(context.Background(), "ninguem@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// A trilha de auditoria indisponível nunca impede o login.
func TestAuthenticate_AuditoriaIndisponivelNaoFalha(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana", "Senha@123")
	uc := NewAuthUseCase(repo, testRecorder(&fakeAuditRepo{fail: true}), JWTConfig{
		Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "integre-plus-test",
	})

	identity, err := uc.Authenticate(context.Background(), "ana", "Senha@123")
	require.NoError(t, err)
	assert.Equal(t, "ana", identity.Username)
}
