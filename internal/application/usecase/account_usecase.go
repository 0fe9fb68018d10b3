package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// AccountUseCase casos de uso CRUD para cuentas de marketplace.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create crea una cuenta. accName es único (ErrDuplicate).
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	in.AccName = strings.TrimSpace(in.AccName)
	if err := validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByAccName(ctx, in.AccName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("accName")
	}
	status := in.Status
	if status == "" {
		status = entity.AccountStatusActive
	}
	ts := now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Marketplace:  in.Marketplace,
		AccName:      in.AccName,
		ProfileName:  in.ProfileName,
		SheetID:      in.SheetID,
		AccountInfo:  in.AccountInfo,
		Proxy:        in.Proxy,
		ClientID:     in.ClientID,
		ClientSecret: in.ClientSecret,
		TelegramID:   in.TelegramID,
		Status:       status,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := uc.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *AccountUseCase) GetByID(ctx context.Context, id string) (*dto.AccountResponse, error) {
	account, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

func (uc *AccountUseCase) get(ctx context.Context, id string) (*entity.Account, error) {
	account, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// List lista cuentas filtrando por status y/o marketplace.
func (uc *AccountUseCase) List(ctx context.Context, q dto.AccountQuery) ([]dto.AccountResponse, error) {
	list, err := uc.repo.List(ctx, repository.AccountFilter{Status: q.Status, Marketplace: q.Marketplace})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAccountResponse(a))
	}
	return items, nil
}

// Update aplica los campos presentes. lastSync no se toca.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	account, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.AccName != nil {
		name := strings.TrimSpace(*in.AccName)
		if name == "" {
			return nil, domain.NewValidationError("accName", "required")
		}
		if name != account.AccName {
			other, err := uc.repo.GetByAccName(ctx, name)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != account.ID {
				return nil, domain.Duplicate("accName")
			}
		}
		account.AccName = name
	}
	if in.Marketplace != nil {
		account.Marketplace = *in.Marketplace
	}
	if in.ProfileName != nil {
		account.ProfileName = *in.ProfileName
	}
	if in.SheetID != nil {
		account.SheetID = *in.SheetID
	}
	if in.AccountInfo != nil {
		account.AccountInfo = *in.AccountInfo
	}
	if in.Proxy != nil {
		account.Proxy = *in.Proxy
	}
	if in.ClientID != nil {
		account.ClientID = *in.ClientID
	}
	if in.ClientSecret != nil {
		account.ClientSecret = *in.ClientSecret
	}
	if in.TelegramID != nil {
		account.TelegramID = *in.TelegramID
	}
	if in.Status != nil {
		account.Status = *in.Status
	}
	account.UpdatedAt = now()
	if err := uc.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Sync marca la cuenta como sincronizada ahora (único escritor de lastSync).
func (uc *AccountUseCase) Sync(ctx context.Context, id string) (*dto.AccountResponse, error) {
	if err := uc.repo.TouchLastSync(ctx, id, now()); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina una cuenta por ID. No afecta pedidos ni tareas que la referencian.
func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:           a.ID,
		Marketplace:  a.Marketplace,
		AccName:      a.AccName,
		ProfileName:  a.ProfileName,
		SheetID:      a.SheetID,
		AccountInfo:  a.AccountInfo,
		Proxy:        a.Proxy,
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
		TelegramID:   a.TelegramID,
		Status:       a.Status,
		LastSync:     a.LastSync,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
