package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios: email único en minúsculas,
// password hasheado con bcrypt y permisos sin duplicados.
type UserUseCase struct {
	repo     repository.UserRepository
	hashCost int
}

// UserOption configura el UserUseCase.
type UserOption func(*UserUseCase)

// WithBcryptCost cambia el costo de bcrypt (los tests usan bcrypt.MinCost).
func WithBcryptCost(cost int) UserOption {
	return func(uc *UserUseCase) { uc.hashCost = cost }
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, opts ...UserOption) *UserUseCase {
	uc := &UserUseCase{repo: repo, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create crea un usuario. ErrDuplicate si el email ya existe.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("email")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	status := in.Status
	if status == "" {
		status = entity.UserStatusActive
	}
	ts := now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  entity.DedupePermissions(in.Permissions),
		Status:       status,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// List listado paginado; search busca en fullName y email sin distinguir mayúsculas.
func (uc *UserUseCase) List(ctx context.Context, q dto.UserQuery) (*dto.UserListResponse, error) {
	page := repository.Page{Page: q.Page, Limit: q.Limit}.Normalize()
	filter := repository.UserFilter{Search: strings.TrimSpace(q.Search), Role: q.Role}
	list, total, err := uc.repo.ListPaged(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Data: items,
		Meta: dto.PageMeta{Total: total, Page: page.Page, Limit: page.Limit, TotalPages: page.TotalPages(total)},
	}, nil
}

// Update aplica los campos presentes; si viene password se vuelve a hashear.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Email != nil {
		e := normalizeEmail(*in.Email)
		in.Email = &e
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.Duplicate("email")
		}
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.hashCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	setString(&user.Role, in.Role)
	setString(&user.Status, in.Status)
	if in.Permissions != nil {
		user.Permissions = entity.DedupePermissions(in.Permissions)
	}
	user.UpdatedAt = now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// EnsureAdmin crea el usuario admin inicial si no existe ninguno con ese email.
// Devuelve true si lo creó.
func (uc *UserUseCase) EnsureAdmin(ctx context.Context, fullName, email, password string) (bool, error) {
	existing, err := uc.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = uc.Create(ctx, dto.CreateUserRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToUserResponse convierte a DTO sin el hash del password.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	status := u.Status
	if status == "" {
		status = entity.UserStatusActive
	}
	return &dto.UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: perms,
		Status:      status,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
