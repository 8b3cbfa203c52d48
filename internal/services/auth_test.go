package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-reading-list/internal/models"
	"github.com/sbilibin2017/gw-reading-list/internal/repositories"
	"github.com/sbilibin2017/gw-reading-list/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		emailUser    *models.UserDB
		emailErr     error
		usernameUser *models.UserDB
		usernameErr  error
		savedUser    *models.UserDB
		writerErr    error
		jwtErr       error
		wantErr      error
		wantToken    string
	}{
		{
			name:      "successful registration",
			username:  "alice",
			email:     "alice@example.com",
			password:  "password123",
			savedUser: &models.UserDB{ID: 1, Username: "alice", Email: "alice@example.com", IsActive: true},
			wantToken: "token123",
		},
		{
			name:      "email already registered",
			username:  "bob",
			email:     "bob@example.com",
			password:  "password123",
			emailUser: &models.UserDB{ID: 2, Email: "bob@example.com"},
			wantErr:   services.ErrEmailAlreadyRegistered,
		},
		{
			name:         "username already taken",
			username:     "carol",
			email:        "carol@example.com",
			password:     "password123",
			usernameUser: &models.UserDB{ID: 3, Username: "carol"},
			wantErr:      services.ErrUsernameAlreadyTaken,
		},
		{
			name:      "concurrent duplicate registration",
			username:  "dave",
			email:     "dave@example.com",
			password:  "password123",
			writerErr: repositories.ErrUniqueViolation,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:     "email reader error",
			username: "eve",
			email:    "eve@example.com",
			password: "password123",
			emailErr: errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
		{
			name:        "username reader error",
			username:    "frank",
			email:       "frank@example.com",
			password:    "password123",
			usernameErr: errors.New("db error"),
			wantErr:     errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "grace",
			email:     "grace@example.com",
			password:  "password123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:      "JWT generation error",
			username:  "heidi",
			email:     "heidi@example.com",
			password:  "password123",
			savedUser: &models.UserDB{ID: 4, Username: "heidi", Email: "heidi@example.com", IsActive: true},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.emailUser, tt.emailErr)

			if tt.emailUser == nil && tt.emailErr == nil {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.username).
					Return(tt.usernameUser, tt.usernameErr)
			}

			if tt.emailUser == nil && tt.emailErr == nil && tt.usernameUser == nil && tt.usernameErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(tt.savedUser, tt.writerErr)
			}

			if tt.savedUser != nil && tt.writerErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.savedUser.ID, tt.savedUser.Username).
					Return(tt.wantToken, tt.jwtErr)
			}

			user, token, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.savedUser, user)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "plaintext-secret"

	mockReader.EXPECT().GetByEmail(gomock.Any(), "ivan@example.com").Return(nil, nil)
	mockReader.EXPECT().GetByUsername(gomock.Any(), "ivan").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "ivan", "ivan@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, username, email, passwordHash string) (*models.UserDB, error) {
			assert.NotEqual(t, password, passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)))
			return &models.UserDB{ID: 10, Username: username, Email: email, IsActive: true}, nil
		})
	mockJWT.EXPECT().Generate(gomock.Any(), int64(10), "ivan").Return("token", nil)

	user, token, err := svc.Register(context.Background(), "ivan", "ivan@example.com", password)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "token", token)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed), IsActive: true},
			wantToken: "token123",
		},
		{
			name:      "user does not exist",
			username:  "bob",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "invalid password",
			username:  "carol",
			loginPass: "wrongpass",
			user:      &models.UserDB{ID: 2, Username: "carol", PasswordHash: string(hashed), IsActive: true},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "inactive user",
			username:  "dave",
			loginPass: password,
			user:      &models.UserDB{ID: 3, Username: "dave", PasswordHash: string(hashed), IsActive: false},
			wantErr:   services.ErrInactiveUser,
		},
		{
			name:      "reader error",
			username:  "eve",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "JWT generation error",
			username:  "frank",
			loginPass: password,
			user:      &models.UserDB{ID: 4, Username: "frank", PasswordHash: string(hashed), IsActive: true},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password && tt.user.IsActive {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID, tt.user.Username).
					Return(tt.wantToken, tt.jwtErr)
			}

			user, token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
