package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "almacen-test"}
}

func usuarioConClave(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "user-1",
		Name:         "Camila",
		Email:        "camila@tienda.local",
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
	}
}

// Login correcto: el token trae identidad y rol, la respuesta nunca el hash.
func TestLogin_Correcto(t *testing.T) {
	repo := newFakeUserRepo(usuarioConClave(t, "secreto1"))
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Email: "camila@tienda.local", Password: "secreto1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "Camila", out.User.Name)

	userID, userName, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "Camila", userName)
	assert.Equal(t, entity.RoleUser, role)
}

// Email inexistente y clave incorrecta responden igual: ErrUnauthorized,
// sin revelar cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo(usuarioConClave(t, "secreto1"))
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@tienda.local", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "camila@tienda.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Base vacía → se siembra el administrador y puede loguearse.
func TestEnsureSeedAdmin_BaseVacia(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	require.NoError(t, uc.EnsureSeedAdmin())
	require.Len(t, repo.users, 1)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@local", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

// Con usuarios existentes no se siembra nada (ni se pisa al admin real).
func TestEnsureSeedAdmin_BaseConUsuarios(t *testing.T) {
	repo := newFakeUserRepo(usuarioConClave(t, "secreto1"))
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	require.NoError(t, uc.EnsureSeedAdmin())
	assert.Len(t, repo.users, 1)
}
