package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminLogin    = "admin"
	testAdminPassword = "correct horse battery staple"
	testSignKey       = "test-sign-key"
	testIssuer        = "go-blog-test"
)

func newTestAuthSvc(t *testing.T) AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(config.App{
		TokenSignKey:      testSignKey,
		TokenIssuer:       testIssuer,
		TokenDuration:     time.Hour,
		AdminLogin:        testAdminLogin,
		AdminPasswordHash: string(hash),
	}, validators.NewBlogValidator(), logger.Nop())
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthSvc(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		credentials models.Credentials
		wantErr     error
	}{
		{"valid", models.Credentials{Login: testAdminLogin, Password: testAdminPassword}, nil},
		{"wrong password", models.Credentials{Login: testAdminLogin, Password: "nope"}, ErrWrongCredentials},
		{"wrong login", models.Credentials{Login: "root", Password: testAdminPassword}, ErrWrongCredentials},
		{"empty login", models.Credentials{Password: testAdminPassword}, ErrInvalidDataProvided},
		{"empty password", models.Credentials{Login: testAdminLogin}, ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(ctx, tt.credentials)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token.SignedString)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.SignedString)
			assert.Equal(t, testAdminLogin, token.Subject)
		})
	}
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := newTestAuthSvc(t)
	ctx := context.Background()

	issued, err := svc.Login(ctx, models.Credentials{Login: testAdminLogin, Password: testAdminPassword})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testAdminLogin, parsed.Subject)

	otherSubject, err := utils.GenerateJWTToken(testIssuer, "intruder", time.Hour, testSignKey)
	require.NoError(t, err)

	otherKey, err := utils.GenerateJWTToken(testIssuer, testAdminLogin, time.Hour, "other-key")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":       "garbage",
		"empty":         "",
		"other subject": otherSubject.SignedString,
		"other key":     otherKey.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
