package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MoBa75/webshop/internal/auth"
	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"
)

// User records derived from verified Auth0 identities. The shop never sees
// credentials; the token's claims are the source of truth for the subject.
type UserUsecase struct {
	userRepo repo.UserRepository
}

func NewUserUsecase(userRepo repo.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

type RegisterInput struct {
	Company   string `json:"company"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
}

type UpdateUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	BirthDate string `json:"birth_date"`
}

// Register creates the local user for a verified identity. Name and email
// come from the token claims, not from the request body.
func (u *UserUsecase) Register(ctx context.Context, ident auth.Identity, in RegisterInput) (model.User, error) {
	if ident.Sub == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(ident.Email) == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "token carries no email claim")
	}

	if _, err := u.userRepo.FindByAuth0Sub(ctx, ident.Sub); err == nil {
		return model.User{}, NewHTTPError(http.StatusConflict, "already registered")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.User{}, err
	}

	if _, err := u.userRepo.FindByEmail(ctx, ident.Email); err == nil {
		return model.User{}, NewHTTPError(http.StatusConflict, "a user with this email already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.User{}, err
	}

	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return model.User{}, err
	}

	created, err := u.userRepo.Create(ctx, model.User{
		Auth0Sub:  ident.Sub,
		Email:     ident.Email,
		FirstName: ident.FirstName,
		LastName:  ident.LastName,
		Company:   in.Company,
		BirthDate: birthDate,
	})
	if err != nil {
		return model.User{}, err
	}
	return created, nil
}

// GetUser returns a user record. Non-admins only see themselves.
func (u *UserUsecase) GetUser(ctx context.Context, callerID int64, callerIsAdmin bool, targetID int64) (model.User, error) {
	if targetID != callerID && !callerIsAdmin {
		return model.User{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	user, err := u.userRepo.FindByID(ctx, targetID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.userRepo.List(ctx)
}

func (u *UserUsecase) UpdateUser(ctx context.Context, callerID int64, callerIsAdmin bool, targetID int64, in UpdateUserInput) (model.User, error) {
	if targetID != callerID && !callerIsAdmin {
		return model.User{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	user, err := u.userRepo.FindByID(ctx, targetID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, err
	}

	if strings.TrimSpace(in.FirstName) != "" {
		user.FirstName = in.FirstName
	}
	if strings.TrimSpace(in.LastName) != "" {
		user.LastName = in.LastName
	}
	user.Company = in.Company

	if in.BirthDate != "" {
		birthDate, err := parseBirthDate(in.BirthDate)
		if err != nil {
			return model.User{}, err
		}
		user.BirthDate = birthDate
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return model.User{}, err
	}
	return user, nil
}

func (u *UserUsecase) DeleteUser(ctx context.Context, targetID int64) error {
	err := u.userRepo.Delete(ctx, targetID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}
	return err
}

func parseBirthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
	}
	return &t, nil
}
