package user

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"
	"sync"
	"testing"

	jwtgo "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CheckEmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) UpdateUserFields(_ context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if password, ok := fields["password"].(string); ok {
		u.Password = password
	}
	return nil
}

func (f *fakeUserRepository) GetUsersByRole(_ context.Context, role string) ([]*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entities.User
	for _, u := range f.users {
		if u.Role == role {
			copied := *u
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeUserRepository) CountUsersByRole(_ context.Context, role string) (int64, error) {
	users, _ := f.GetUsersByRole(context.Background(), role)
	return int64(len(users)), nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if role != "" && u.Role != role {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

// stubJWT avoids reading the real secret in tests.
type stubJWT struct{}

func (stubJWT) GenerateTokenUser(userId string, role string) string { return "token-" + role }

func (stubJWT) ValidateTokenUser(token string) (*jwtgo.Token, error) { return nil, nil }

func (stubJWT) GetUserIDByToken(token string) (string, string, error) { return "", "", nil }

func donorRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:            "Maria Silva",
		Email:           "maria@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		Role:            domain.RoleDonor,
		Address: &domain.AddressPayload{
			Street:     "Rua das Flores",
			Number:     "100",
			District:   "Centro",
			City:       "Sao Paulo",
			State:      "SP",
			PostalCode: "01000-000",
		},
	}
}

func TestRegisterDonor(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWT{})

	res, err := svc.Register(context.Background(), donorRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleDonor, res.Role)
	require.NotNil(t, res.Address)
	assert.Equal(t, "Sao Paulo", res.Address.City)

	// Password is stored hashed, never verbatim.
	stored, err := repo.GetUserByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")))
}

func TestRegisterDriverDefaultsAvailability(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWT{})

	req := domain.RegisterRequest{
		Name:            "Joao Motorista",
		Email:           "joao@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		Role:            domain.RoleDriver,
		LicenseNumber:   "CNH-12345",
		VehiclePlate:    "ABC-1234",
	}

	res, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DriverAvailable, res.Availability)
	assert.Equal(t, "ABC-1234", res.VehiclePlate)
}

func TestRegisterRolePayloads(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWT{})

	noAddress := donorRequest()
	noAddress.Address = nil
	_, err := svc.Register(context.Background(), noAddress)
	assert.ErrorIs(t, err, domain.ErrMissingAddress)

	noLicense := donorRequest()
	noLicense.Role = domain.RoleDriver
	noLicense.LicenseNumber = ""
	noLicense.VehiclePlate = ""
	_, err = svc.Register(context.Background(), noLicense)
	assert.ErrorIs(t, err, domain.ErrMissingDriverData)

	badRole := donorRequest()
	badRole.Role = "manager"
	_, err = svc.Register(context.Background(), badRole)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := NewUserService(newFakeUserRepository(), stubJWT{})

	req := donorRequest()
	req.ConfirmPassword = "different"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWT{})

	_, err := svc.Register(context.Background(), donorRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), donorRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWT{})

	_, err := svc.Register(context.Background(), donorRequest())
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "maria@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-donor", res.AccessToken)
	assert.Equal(t, domain.RoleDonor, res.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWT{})

	_, err := svc.Register(context.Background(), donorRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "maria@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWT{})

	res, err := svc.Register(context.Background(), donorRequest())
	require.NoError(t, err)

	repo.mu.Lock()
	repo.users[res.ID].IsActive = false
	repo.mu.Unlock()

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "maria@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}
