package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rohits-web03/chainnotes/internal/models"
	"github.com/rohits-web03/chainnotes/internal/repositories/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvatars struct {
	uploaded map[string]bool
}

func (f *fakeAvatars) PresignUpload(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://r2.example.com/" + key + "?sig=abc", nil
}

func (f *fakeAvatars) Exists(_ context.Context, key string) (bool, error) {
	return f.uploaded[key], nil
}

func (f *fakeAvatars) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func newUserService(t *testing.T, avatars AvatarStore) *UserService {
	t.Helper()
	return NewUserService(memstore.New().Users(), NewTokenIssuer("test-secret", time.Hour), avatars)
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := newUserService(t, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: " Alice@Example.com ", Password: "correct horse", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse", *user.PasswordHash)

	_, err = svc.Register(ctx, RegisterInput{Email: "alice@example.com", Password: "another-pass", Name: "Alice 2"})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)

	got, token, err := svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong-password"})
	requireAuthStatus(t, err, http.StatusUnauthorized)

	_, _, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever1"})
	requireAuthStatus(t, err, http.StatusUnauthorized)
}

func TestUserService_RegisterValidation(t *testing.T) {
	svc := newUserService(t, nil)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "not-an-email", Password: "long-enough", Name: "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	_, err = svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "short", Name: "x"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}

func TestUserService_Authenticate(t *testing.T) {
	svc := newUserService(t, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: "bob@example.com", Password: "password123", Name: "Bob"})
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, LoginInput{Email: "bob@example.com", Password: "password123"})
	require.NoError(t, err)

	profile, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, models.UserProfile{ID: user.ID, Name: "Bob", Email: "bob@example.com"}, *profile)

	_, err = svc.Authenticate(ctx, "")
	requireAuthStatus(t, err, http.StatusUnauthorized)

	_, err = svc.Authenticate(ctx, token+"x")
	requireAuthStatus(t, err, http.StatusForbidden)

	ghost, err := svc.tokens.Issue(&models.User{ID: 9999, Name: "ghost"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, ghost)
	requireAuthStatus(t, err, http.StatusUnauthorized)
}

func TestUserService_LoginWithIdentity(t *testing.T) {
	svc := newUserService(t, nil)
	ctx := context.Background()

	created, token, err := svc.LoginWithIdentity(ctx, Identity{
		ExternalID:    "g-1",
		DisplayName:   "Carol",
		Email:         "carol@example.com",
		EmailVerified: true,
		AvatarURL:     "https://lh3.example.com/carol.png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, created.GoogleID)
	assert.Equal(t, "g-1", *created.GoogleID)
	assert.Nil(t, created.PasswordHash)

	again, _, err := svc.LoginWithIdentity(ctx, Identity{ExternalID: "g-1", Email: "carol@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	// An existing password account is linked rather than duplicated.
	pw, err := svc.Register(ctx, RegisterInput{Email: "dave@example.com", Password: "password123", Name: "Dave"})
	require.NoError(t, err)
	linked, _, err := svc.LoginWithIdentity(ctx, Identity{ExternalID: "g-2", DisplayName: "Dave G", Email: "Dave@example.com", EmailVerified: true})
	require.NoError(t, err)
	assert.Equal(t, pw.ID, linked.ID)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "g-2", *linked.GoogleID)
}

func TestUserService_Avatar(t *testing.T) {
	avatars := &fakeAvatars{uploaded: map[string]bool{}}
	svc := newUserService(t, avatars)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: "erin@example.com", Password: "password123", Name: "Erin"})
	require.NoError(t, err)

	upload, err := svc.PresignAvatar(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upload.Key, "avatars/"))
	assert.Contains(t, upload.UploadURL, upload.Key)

	_, err = svc.SetAvatar(ctx, user.ID, upload.Key)
	requireValidation(t, err)

	avatars.uploaded[upload.Key] = true
	updated, err := svc.SetAvatar(ctx, user.ID, upload.Key)
	require.NoError(t, err)
	require.NotNil(t, updated.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/"+upload.Key, *updated.AvatarURL)

	_, err = svc.SetAvatar(ctx, user.ID+1, upload.Key)
	requireValidation(t, err)
}

func TestUserService_AvatarUnavailable(t *testing.T) {
	svc := newUserService(t, nil)

	_, err := svc.PresignAvatar(context.Background(), 1)
	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
}

func TestUserService_LoginWithIdentityUnverifiedEmail(t *testing.T) {
	svc := newUserService(t, nil)
	ctx := context.Background()

	pw, err := svc.Register(ctx, RegisterInput{Email: "heidi@example.com", Password: "password123", Name: "Heidi"})
	require.NoError(t, err)

	_, _, err = svc.LoginWithIdentity(ctx, Identity{ExternalID: "g-3", Email: "heidi@example.com"})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)

	stored, err := svc.Get(ctx, pw.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.GoogleID)
}
