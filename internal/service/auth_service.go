package service

import (
	"context"
	"os"
	"time"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/repository/specification"
	"virtual-classroom-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Subjects(identity *entity.Identity) *dto.SubjectsResponse
}

type authService struct {
	uowFactory  unitofwork.RepositoryFactory
	expiryHours int
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, expiryHours int) IAuthService {
	return &authService{
		uowFactory:  uowFactory,
		expiryHours: expiryHours,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidation("username already taken")
	}

	role := entity.UserRole(req.Role)
	switch role {
	case entity.UserRoleStudent:
		if req.ClassName == "" {
			return nil, apperror.NewValidation("class_name is required for students")
		}
	case entity.UserRoleTeacher:
		if req.StaffId == "" {
			return nil, apperror.NewValidation("staff_id is required for teachers")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		ClassName:    req.ClassName,
		StaffId:      req.StaffId,
		CreatedAt:    time.Now(),
	}

	// Staff id consumption and user creation must commit together so an
	// id can never be burned without a matching account.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if role == entity.UserRoleTeacher {
		staffId, err := uow.UserRepository().FindStaffId(ctx, req.StaffId)
		if err != nil {
			return nil, err
		}
		if staffId == nil || staffId.IsUsed {
			return nil, apperror.NewValidation("invalid or already used staff id")
		}
		if err := uow.UserRepository().MarkStaffIdUsed(ctx, staffId.Id); err != nil {
			return nil, err
		}
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAuthorization("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthorization("invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User: dto.UserDTO{
			Id:        user.Id,
			Username:  user.Username,
			Email:     user.Email,
			Role:      string(user.Role),
			ClassName: user.ClassName,
		},
	}, nil
}

func (s *authService) Subjects(identity *entity.Identity) *dto.SubjectsResponse {
	return &dto.SubjectsResponse{
		ClassName: identity.ClassName,
		Subjects:  entity.SubjectsForClass(identity.ClassName),
	}
}

func (s *authService) generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.Id.String(),
		"username":   user.Username,
		"role":       string(user.Role),
		"class_name": user.ClassName,
		"exp":        time.Now().Add(time.Duration(s.expiryHours) * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
