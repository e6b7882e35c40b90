package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/viapro/armazem-api/internal/application/auth"
	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/infrastructure/memory"
	pkgjwt "github.com/viapro/armazem-api/pkg/jwt"
)

const (
	loginEmail    = "maria@viapro.com.br"
	loginPassword = "senha-forte-123"
	loginSecret   = "test-secret-key-for-unit-tests"
)

func newAuthFixture(t *testing.T) *auth.UseCase {
	t.Helper()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte(loginPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(&entity.User{
		ID:           "user-1",
		Name:         "Maria Andrade",
		Role:         "Gestor",
		Email:        loginEmail,
		PasswordHash: string(hash),
	}))

	return auth.NewUseCase(users, auth.JWTConfig{
		Secret:     loginSecret,
		ExpMinutes: 60,
		Issuer:     "armazem-api-test",
	})
}

func TestLogin_CredenciaisValidasDevolvemTokenEUsuario(t *testing.T) {
	uc := newAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Email: loginEmail, Password: loginPassword})

	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "Maria Andrade", out.User.Name)

	userID, name, role, err := pkgjwt.Parse(loginSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "Maria Andrade", name)
	assert.Equal(t, "Gestor", role, "o cargo vai no token para a política de acesso")
}

func TestLogin_EmailNormalizado(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "  MARIA@viapro.com.br ", Password: loginPassword})
	assert.NoError(t, err, "email compara sem caixa e sem espaços nas pontas")
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: loginEmail, Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteMesmoErro(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@viapro.com.br", Password: loginPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuário inexistente e senha errada devolvem o mesmo erro")
}

func TestLogin_CamposVazios(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
