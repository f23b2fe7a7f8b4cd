package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
	"mountainride-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	employeeRepo repository.EmployeeRepository
	tokens       security.TokenManager
}

func NewAuthService(employeeRepo repository.EmployeeRepository, tokens security.TokenManager) AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		tokens:       tokens,
	}
}

// Login checks the employee password and issues an access token. Unknown
// emails and wrong passwords fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Employee, error) {
	logger.EnterMethod("authService.Login", "email", email)

	employee, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.ExitMethodWithError("authService.Login", ErrInvalidCredentials, "email", email)
			return "", nil, ErrInvalidCredentials
		}
		logger.ExitMethodWithError("authService.Login", err, "email", email)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		logger.ExitMethodWithError("authService.Login", ErrInvalidCredentials, "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(employee)
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err, "email", email)
		return "", nil, err
	}

	logger.ExitMethod("authService.Login", "employeeID", employee.ID)
	return token, employee, nil
}
