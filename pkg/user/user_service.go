package user

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/pkg/jwt"
	"context"
	"errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error
		GetDrivers(ctx context.Context) ([]*domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string, role string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// validateRolePayload is the role factory: each role tag demands its own
// slice of the unified user record.
func validateRolePayload(req domain.RegisterRequest) error {
	switch req.Role {
	case domain.RoleDonor, domain.RoleReceptor:
		if req.Address == nil {
			return domain.ErrMissingAddress
		}
	case domain.RoleDriver:
		if req.LicenseNumber == "" || req.VehiclePlate == "" {
			return domain.ErrMissingDriverData
		}
	default:
		return domain.ErrInvalidRole
	}
	return nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	if err := validateRolePayload(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Role:     req.Role,
		IsActive: true,
	}

	if req.Address != nil {
		user.Street = req.Address.Street
		user.Number = req.Address.Number
		user.District = req.Address.District
		user.City = req.Address.City
		user.State = req.Address.State
		user.PostalCode = req.Address.PostalCode
	}

	if req.Role == domain.RoleDriver {
		user.LicenseNumber = req.LicenseNumber
		user.VehiclePlate = req.VehiclePlate
		user.Availability = domain.DriverAvailable
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.LoginResponse{
		AccessToken: token,
		UserID:      user.ID.String(),
		Role:        user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) error {
	fields := map[string]interface{}{}

	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fields["password"] = string(hashed)
	}
	if req.Address != nil {
		fields["street"] = req.Address.Street
		fields["number"] = req.Address.Number
		fields["district"] = req.Address.District
		fields["city"] = req.Address.City
		fields["state"] = req.Address.State
		fields["postal_code"] = req.Address.PostalCode
	}
	if req.VehiclePlate != "" {
		fields["vehicle_plate"] = req.VehiclePlate
	}

	if len(fields) == 0 {
		return nil
	}

	return s.userRepository.UpdateUserFields(ctx, userID, fields)
}

func (s *userService) GetDrivers(ctx context.Context) ([]*domain.UserResponse, error) {
	drivers, err := s.userRepository.GetUsersByRole(ctx, domain.RoleDriver)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserResponse, 0, len(drivers))
	for _, driver := range drivers {
		result = append(result, toUserResponse(driver))
	}
	return result, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string, role string) error {
	if err := s.userRepository.DeleteUser(ctx, id, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func toUserResponse(user *entities.User) *domain.UserResponse {
	resp := &domain.UserResponse{
		ID:            user.ID.String(),
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		Role:          user.Role,
		LicenseNumber: user.LicenseNumber,
		VehiclePlate:  user.VehiclePlate,
		Availability:  user.Availability,
		CreatedAt:     user.CreatedAt,
	}

	if user.Street != "" {
		resp.Address = &domain.AddressPayload{
			Street:     user.Street,
			Number:     user.Number,
			District:   user.District,
			City:       user.City,
			State:      user.State,
			PostalCode: user.PostalCode,
		}
	}

	return resp
}
