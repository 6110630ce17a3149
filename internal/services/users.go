package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rohits-web03/chainnotes/internal/models"
	"github.com/rohits-web03/chainnotes/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

// AvatarStore is the object storage used for avatar uploads.
type AvatarStore interface {
	PresignUpload(ctx context.Context, key string, expires time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AvatarUpload is a presigned PUT target for a new avatar.
type AvatarUpload struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

const avatarUploadTTL = 15 * time.Minute

type UserService struct {
	store   UserStore
	tokens  *TokenIssuer
	avatars AvatarStore
	now     func() time.Time
}

// NewUserService wires user accounts. avatars may be nil when object storage
// is not configured.
func NewUserService(store UserStore, tokens *TokenIssuer, avatars AvatarStore) *UserService {
	return &UserService{store: store, tokens: tokens, avatars: avatars, now: time.Now}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if err := check(in); err != nil {
		return nil, err
	}

	_, err := s.store.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, &ConflictError{Message: "user already exists with this email"}
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, &StorageError{Op: "find user", Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)

	user := &models.User{Email: in.Email, Name: in.Name, PasswordHash: &hashed}
	if err := s.create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) create(ctx context.Context, user *models.User) error {
	now := s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	err := s.store.Create(ctx, user)
	if errors.Is(err, repositories.ErrDuplicate) {
		return &ConflictError{Message: "user already exists with this email"}
	}
	if err != nil {
		return &StorageError{Op: "create user", Err: err}
	}
	return nil
}

// Login checks a password and issues an access token.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := check(in); err != nil {
		return nil, "", err
	}

	user, err := s.store.FindByEmail(ctx, in.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, "", unauthorized("invalid credentials")
	}
	if err != nil {
		return nil, "", &StorageError{Op: "find user", Err: err}
	}
	if user.PasswordHash == nil {
		return nil, "", unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginWithIdentity signs in an externally authenticated user. A first login
// creates the account; an existing password account with the same email is
// linked to the external id only when the provider verified that email.
func (s *UserService) LoginWithIdentity(ctx context.Context, id Identity) (*models.User, string, error) {
	user, err := s.store.FindByGoogleID(ctx, id.ExternalID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, "", &StorageError{Op: "find user", Err: err}
	}

	if user == nil {
		email := strings.ToLower(strings.TrimSpace(id.Email))
		user, err = s.store.FindByEmail(ctx, email)
		switch {
		case err == nil:
			if !id.EmailVerified {
				return nil, "", &ConflictError{Message: "an account with this email exists; sign in with your password"}
			}
			user.GoogleID = &id.ExternalID
			if user.AvatarURL == nil && id.AvatarURL != "" {
				user.AvatarURL = &id.AvatarURL
			}
			user.UpdatedAt = s.now()
			if err := s.store.Save(ctx, user); err != nil {
				return nil, "", &StorageError{Op: "link user", Err: err}
			}
		case errors.Is(err, repositories.ErrNotFound):
			user = &models.User{Email: email, Name: id.DisplayName, GoogleID: &id.ExternalID}
			if user.Name == "" {
				user.Name = email
			}
			if id.AvatarURL != "" {
				user.AvatarURL = &id.AvatarURL
			}
			if err := s.create(ctx, user); err != nil {
				return nil, "", err
			}
		default:
			return nil, "", &StorageError{Op: "find user", Err: err}
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to the caller's profile.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.UserProfile, error) {
	if token == "" {
		return nil, unauthorized("missing credentials")
	}
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.store.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, unauthorized("user no longer exists")
	}
	if err != nil {
		return nil, &StorageError{Op: "find user", Err: err}
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, storeErr("find user", "user", err)
	}
	return user, nil
}

func (s *UserService) PresignAvatar(ctx context.Context, userID int64) (*AvatarUpload, error) {
	if s.avatars == nil {
		return nil, &UnavailableError{Feature: "avatar storage"}
	}
	key := repositories.AvatarKey(userID)
	url, err := s.avatars.PresignUpload(ctx, key, avatarUploadTTL)
	if err != nil {
		return nil, &StorageError{Op: "presign avatar", Err: err}
	}
	return &AvatarUpload{UploadURL: url, Key: key, ExpiresIn: int(avatarUploadTTL.Seconds())}, nil
}

// SetAvatar points the user's avatar at an uploaded object.
func (s *UserService) SetAvatar(ctx context.Context, userID int64, key string) (*models.User, error) {
	if s.avatars == nil {
		return nil, &UnavailableError{Feature: "avatar storage"}
	}
	if !repositories.OwnsKey(userID, key) {
		return nil, invalid("key", "key is not an avatar upload of this user")
	}
	ok, err := s.avatars.Exists(ctx, key)
	if err != nil {
		return nil, &StorageError{Op: "check avatar", Err: err}
	}
	if !ok {
		return nil, invalid("key", "avatar has not been uploaded")
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	url := s.avatars.PublicURL(key)
	user.AvatarURL = &url
	user.UpdatedAt = s.now()
	if err := s.store.Save(ctx, user); err != nil {
		return nil, storeErr("save user", "user", err)
	}
	return user, nil
}
