package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-registration-api/internal/application/ports"
	"user-registration-api/internal/application/validation"
	domain "user-registration-api/internal/domain/user"
	"user-registration-api/internal/infrastructure/mq"
	"user-registration-api/internal/interface/api/rest/dto/user"
)

// UserService is the sole place the uniqueness invariants are
// enforced. The email duplicate is always checked before the national
// id one so error messages are deterministic; the store's unique
// constraints remain the backstop for concurrent submissions.
type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) CreateUser(ctx context.Context, req validation.CreateUserRequest) (*domain.User, error) {
	in, err := validation.CreateUser(req)
	if err != nil {
		return nil, err
	}

	byEmail, err := us.userRepository.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil {
		return nil, &domain.ConflictError{Field: "email"}
	}

	byNationalID, err := us.userRepository.FindByNationalID(ctx, in.NationalID)
	if err != nil {
		return nil, err
	}
	if byNationalID != nil {
		return nil, &domain.ConflictError{Field: "national id"}
	}

	uRet, err := us.userRepository.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	us.notify(http.MethodPost, uRet)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	u, err := us.userRepository.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &domain.NotFoundError{}
	}

	return u, nil
}

func (us *UserService) ListUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id string, req validation.UpdateUserRequest) (*domain.User, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	in, err := validation.UpdateUser(req)
	if err != nil {
		return nil, err
	}

	existing, err := us.userRepository.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &domain.NotFoundError{}
	}

	if in.Email != nil && *in.Email != existing.Email {
		byEmail, err := us.userRepository.FindByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if byEmail != nil {
			return nil, &domain.ConflictError{Field: "email"}
		}
	}

	uRet, err := us.userRepository.Update(ctx, uid, in)
	if err != nil {
		return nil, err
	}
	// Record vanished between the existence check and the update:
	// treated as not found, never retried.
	if uRet == nil {
		return nil, &domain.NotFoundError{}
	}

	us.notify(http.MethodPut, uRet)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id string) error {
	uid, err := parseUserID(id)
	if err != nil {
		return err
	}

	deleted, err := us.userRepository.Delete(ctx, uid)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{}
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Method: http.MethodDelete,
		UserID: uid.String(),
	}
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) notify(method string, u *domain.User) {
	if u == nil {
		return
	}
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  u.ID.String(),
		Payload: user.ToResponseUser(*u),
	}
}

// parseUserID rejects a missing id as a validation failure; a
// well-formed but never-issued id falls through to not-found on
// lookup, and a malformed one can never match a row, so it is
// reported the same way.
func parseUserID(id string) (domain.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, domain.NewValidationError("id", "id is required")
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &domain.NotFoundError{}
	}
	return uid, nil
}
