package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"newsroom-backend/internal/domains/user"
	"newsroom-backend/internal/shared/utils"
	"newsroom-backend/pkg/jwt"
)

// bcryptCost 12: chậm hơn default (10) nhưng phù hợp cho password storage.
const bcryptCost = 12

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{repo: repo, jwtManager: jwtManager}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse(created)
	return &resp, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Không lộ email tồn tại hay không
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	return &user.LoginResponse{
		Token: token,
		User:  user.ToResponse(u),
	}, nil
}

func (s *userService) Me(ctx context.Context, id uuid.UUID) (*user.MeResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &user.MeResponse{
		UserResponse:  user.ToResponse(u),
		ArticlesCount: u.ArticleCount,
	}, nil
}

func (s *userService) List(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResponse, error) {
	req.SetDefaults()

	users, total, err := s.repo.List(ctx, user.ListFilter{
		Search: req.Search,
		Role:   req.Role,
		Offset: utils.Offset(req.Page, req.Limit),
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserWithCountResponse, 0, len(users))
	for i := range users {
		responses = append(responses, user.ToResponseWithCount(&users[i]))
	}

	return &user.ListUsersResponse{
		Users:      responses,
		Pagination: utils.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (s *userService) Get(ctx context.Context, rawID string) (*user.UserWithCountResponse, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponseWithCount(u)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// parseID validate format UUID trước khi chạm database.
func (s *userService) parseID(rawID string) (uuid.UUID, error) {
	if !utils.IsValidUUID(rawID) {
		return uuid.Nil, user.ErrInvalidUUID
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, user.ErrInvalidUUID
	}
	return id, nil
}
