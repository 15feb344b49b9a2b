package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"
)

// Billing/shipping addresses, strictly scoped to their owner.
type AddressUsecase struct {
	addressRepo repo.AddressRepository
}

func NewAddressUsecase(addressRepo repo.AddressRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo}
}

type AddressInput struct {
	Street     string `json:"street"`
	ZipCode    string `json:"zip_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
	IsBilling  bool   `json:"is_billing"`
	IsShipping bool   `json:"is_shipping"`
}

func (u *AddressUsecase) ListAddresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.addressRepo.ListByUserID(ctx, userID)
}

func (u *AddressUsecase) CreateAddress(ctx context.Context, userID int64, in AddressInput) (model.Address, error) {
	if err := validateAddressInput(in); err != nil {
		return model.Address{}, err
	}

	created, err := u.addressRepo.Create(ctx, model.Address{
		UserID:     userID,
		Street:     in.Street,
		ZipCode:    in.ZipCode,
		City:       in.City,
		Country:    in.Country,
		IsBilling:  in.IsBilling,
		IsShipping: in.IsShipping,
	})
	if err != nil {
		return model.Address{}, err
	}
	return created, nil
}

func (u *AddressUsecase) UpdateAddress(ctx context.Context, userID int64, addressID int64, in AddressInput) (model.Address, error) {
	if err := validateAddressInput(in); err != nil {
		return model.Address{}, err
	}

	addr, err := u.addressRepo.FindByID(ctx, addressID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "address not found")
	}
	if err != nil {
		return model.Address{}, err
	}
	// someone else's address reads as missing
	if addr.UserID != userID {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "address not found")
	}

	addr.Street = in.Street
	addr.ZipCode = in.ZipCode
	addr.City = in.City
	addr.Country = in.Country
	addr.IsBilling = in.IsBilling
	addr.IsShipping = in.IsShipping

	if err := u.addressRepo.Update(ctx, addr); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Address{}, NewHTTPError(http.StatusNotFound, "address not found")
		}
		return model.Address{}, err
	}
	return addr, nil
}

func (u *AddressUsecase) DeleteAddress(ctx context.Context, userID int64, addressID int64) error {
	addr, err := u.addressRepo.FindByID(ctx, addressID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "address not found")
	}
	if err != nil {
		return err
	}
	if addr.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "address not found")
	}

	err = u.addressRepo.Delete(ctx, addressID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "address not found")
	}
	return err
}

func validateAddressInput(in AddressInput) error {
	if strings.TrimSpace(in.Street) == "" {
		return NewHTTPError(http.StatusBadRequest, "street is required")
	}
	if strings.TrimSpace(in.ZipCode) == "" {
		return NewHTTPError(http.StatusBadRequest, "zip_code is required")
	}
	if strings.TrimSpace(in.City) == "" {
		return NewHTTPError(http.StatusBadRequest, "city is required")
	}
	if strings.TrimSpace(in.Country) == "" {
		return NewHTTPError(http.StatusBadRequest, "country is required")
	}
	return nil
}
