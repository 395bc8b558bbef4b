package authenticating

import (
	"errors"
	"testing"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/repository/mocks"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "secreto-de-prueba"

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: testSecret},
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Marta",
		Lastname:     "Pérez",
		Email:        "marta@alcaldia.gov.co",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleCoordinator,
	}
}

func TestLoginUser_GeneraTokenValido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	user := activeUser(t, "clave123")
	userRepo.EXPECT().GetUserByEmail("marta@alcaldia.gov.co").Return(user, nil)

	service := NewService(userRepo, authConfig())

	// El email se normaliza antes de la consulta
	token, err := service.LoginUser("  Marta@Alcaldia.gov.co ", "clave123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Marta", claims.UserName)
	assert.Equal(t, domain.RoleCoordinator, claims.UserRoleID)
}

func TestLoginUser_ContrasenaIncorrecta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("marta@alcaldia.gov.co").Return(activeUser(t, "clave123"), nil)

	service := NewService(userRepo, authConfig())

	_, err := service.LoginUser("marta@alcaldia.gov.co", "otra-clave")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.True(t, IsCredentialsError(err))

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 7, authErr.UserID)
}

func TestLoginUser_UsuarioDesactivado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := activeUser(t, "clave123")
	user.Active = false

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("marta@alcaldia.gov.co").Return(user, nil)

	service := NewService(userRepo, authConfig())

	_, err := service.LoginUser("marta@alcaldia.gov.co", "clave123")
	assert.True(t, errors.Is(err, ErrUserDisabled))
}

func TestLoginUser_UsuarioNoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("nadie@alcaldia.gov.co").Return(nil, nil)

	service := NewService(userRepo, authConfig())

	_, err := service.LoginUser("nadie@alcaldia.gov.co", "clave123")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestLoginUser_DatosObligatorios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), authConfig())

	_, err := service.LoginUser("", "clave123")
	assert.True(t, errors.Is(err, ErrMissingRequiredData))

	_, err = service.LoginUser("marta@alcaldia.gov.co", "")
	assert.True(t, errors.Is(err, ErrMissingRequiredData))
}

func TestValidateToken_RechazaFirmaAjena(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("marta@alcaldia.gov.co").Return(activeUser(t, "clave123"), nil)

	service := NewService(userRepo, authConfig())
	token, err := service.LoginUser("marta@alcaldia.gov.co", "clave123")
	require.NoError(t, err)

	otherCfg := &config.Config{Auth: config.Auth{Secret: "otro-secreto"}}
	other := NewService(userRepo, otherCfg)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestCreateUser_HasheaYAsignaRolPorDefecto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("nuevo@alcaldia.gov.co").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
		// La contraseña nunca llega en claro al repositorio
		assert.NotEqual(t, "clave123", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("clave123")))
		assert.Equal(t, domain.RoleViewer, u.RoleID)
		assert.False(t, u.Active)
		return u, nil
	})

	service := NewService(userRepo, authConfig())

	created, err := service.CreateUser(&domain.User{
		Name:         "Nuevo",
		Lastname:     "Usuario",
		Email:        " Nuevo@Alcaldia.gov.co ",
		PasswordHash: "clave123",
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@alcaldia.gov.co", created.Email)
}

func TestCreateUser_EmailYaRegistrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("marta@alcaldia.gov.co").Return(activeUser(t, "clave123"), nil)

	service := NewService(userRepo, authConfig())

	_, err := service.CreateUser(&domain.User{
		Name:         "Marta",
		Lastname:     "Pérez",
		Email:        "marta@alcaldia.gov.co",
		PasswordHash: "clave123",
	})
	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
}
