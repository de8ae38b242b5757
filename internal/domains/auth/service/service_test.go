package service_test

import (
	"context"
	"errors"
	"marketplace/infras/jwt"
	jwtMocks "marketplace/infras/jwt/mocks"
	"marketplace/infras/otel/mocks"
	accountMocks "marketplace/internal/domains/account/mocks"
	accountModel "marketplace/internal/domains/account/model"
	accountRepo "marketplace/internal/domains/account/repository"
	"marketplace/internal/domains/auth/model/dto"
	"marketplace/internal/domains/auth/service"
	otpModel "marketplace/internal/domains/otp/model"
	otpDto "marketplace/internal/domains/otp/model/dto"
	otpMocks "marketplace/internal/domains/otp/service/mocks"
	"marketplace/shared/clock"
	"marketplace/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testPhone = "+6281234567890"

var now = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

type deps struct {
	otp      *otpMocks.MockOTP
	accounts *accountMocks.MockAccount
	jwt      *jwtMocks.MockJWT
}

func newService(t *testing.T) (service.Auth, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		otp:      otpMocks.NewMockOTP(ctrl),
		accounts: accountMocks.NewMockAccount(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}

	return service.New(d.otp, d.accounts, d.jwt, clock.Fake(now), mocks.NewOtel()), d
}

func activeAccount(accountType string) accountModel.Account {
	return accountModel.Account{
		ID:     "acc-1",
		Phone:  testPhone,
		Name:   "Rina",
		Type:   accountType,
		Role:   accountType,
		Active: true,
		Status: accountModel.StatusActive,
	}
}

func TestAuthService_CheckPhone(t *testing.T) {
	svc, d := newService(t)

	d.otp.EXPECT().Normalize("0812-3456-7890").Return(testPhone, nil)
	d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(activeAccount(accountModel.TypeProvider), nil)

	res, err := svc.CheckPhone(context.Background(), "0812-3456-7890")

	assert.NoError(t, err)
	assert.Equal(t, dto.CheckPhoneResponse{Exists: true, AccountType: accountModel.TypeProvider, Active: true}, res)
}

func TestAuthService_RequestRegistrationCode(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "sends a registration code to a new phone",
			setupMock: func(d deps) {
				d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
				d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(accountModel.Account{}, nil)
				d.otp.EXPECT().Request(gomock.Any(), testPhone, otpModel.PurposeRegistration).Return(otpDto.RequestResult{ChallengeID: "c-1"}, nil)
			},
		},
		{
			name: "phone already registered",
			setupMock: func(d deps) {
				d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
				d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(activeAccount(accountModel.TypeClient), nil)
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.RequestCode(context.Background(), dto.CodeRequest{Phone: testPhone, Purpose: otpModel.PurposeRegistration})

			if tt.wantErr {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "c-1", res.ChallengeID)
		})
	}
}

func TestAuthService_RequestLoginCode(t *testing.T) {
	suspended := activeAccount(accountModel.TypeClient)
	suspended.Status = accountModel.StatusSuspended

	deactivated := activeAccount(accountModel.TypeClient)
	deactivated.Active = false

	tests := []struct {
		name        string
		appType     string
		account     accountModel.Account
		expectSend  bool
		wantReason  string
		wantCode    int
		wantMessage string
	}{
		{
			name:       "active client signs in to the client app",
			appType:    accountModel.TypeClient,
			account:    activeAccount(accountModel.TypeClient),
			expectSend: true,
		},
		{
			name:        "provider on the client app",
			appType:     accountModel.TypeClient,
			account:     activeAccount(accountModel.TypeProvider),
			wantReason:  failure.ReasonAppTypeMismatch,
			wantCode:    http.StatusForbidden,
			wantMessage: "please sign in through the Provider app instead of the Client app",
		},
		{
			name:        "suspended account",
			appType:     accountModel.TypeClient,
			account:     suspended,
			wantReason:  failure.ReasonAccountInactive,
			wantCode:    http.StatusForbidden,
			wantMessage: "suspended",
		},
		{
			name:        "deactivated account",
			appType:     accountModel.TypeClient,
			account:     deactivated,
			wantReason:  failure.ReasonAccountInactive,
			wantCode:    http.StatusForbidden,
			wantMessage: "deactivated",
		},
		{
			name:     "unknown phone",
			appType:  accountModel.TypeClient,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "missing app type",
			account:  activeAccount(accountModel.TypeClient),
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
			d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(tt.account, nil)

			if tt.expectSend {
				d.otp.EXPECT().Request(gomock.Any(), testPhone, otpModel.PurposeLogin).Return(otpDto.RequestResult{ChallengeID: "c-1"}, nil)
			}

			_, err := svc.RequestCode(context.Background(), dto.CodeRequest{Phone: testPhone, Purpose: otpModel.PurposeLogin, AppType: tt.appType})

			if tt.expectSend {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantReason, failure.GetReason(err))
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	verifiedAt := now.Add(-time.Minute)
	challenge := otpModel.Challenge{ID: "c-1", Phone: testPhone, Purpose: otpModel.PurposeRegistration, Verified: true, VerifiedAt: &verifiedAt}
	req := dto.RegisterRequest{VerificationToken: "verification", Name: " Rina ", Type: accountModel.TypeProvider, PushToken: "device"}

	tests := []struct {
		name       string
		req        dto.RegisterRequest
		setupMock  func(d deps)
		wantReason string
		wantCode   int
		wantErr    bool
	}{
		{
			name: "creates the account and issues a session",
			req:  req,
			setupMock: func(d deps) {
				d.otp.EXPECT().Consume(gomock.Any(), "verification", otpModel.PurposeRegistration).Return(challenge, nil)
				d.accounts.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, account accountModel.Account) error {
						assert.Equal(t, testPhone, account.Phone)
						assert.Equal(t, "Rina", account.Name)
						assert.Equal(t, accountModel.TypeProvider, account.Type)
						assert.Equal(t, accountModel.TypeProvider, account.Role)
						assert.Equal(t, "device", *account.PushToken)
						assert.True(t, account.CanSignIn())

						return nil
					})
				d.otp.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
				d.jwt.EXPECT().
					GenerateSession(gomock.Any()).
					DoAndReturn(func(subject jwt.SessionSubject) (jwt.Token, error) {
						assert.Equal(t, testPhone, subject.Phone)
						assert.Equal(t, accountModel.TypeProvider, subject.Role)

						return jwt.Token{Value: "session", ExpiresAt: now.Add(30 * 24 * time.Hour)}, nil
					})
			},
		},
		{
			name: "verification missing or for another purpose",
			req:  req,
			setupMock: func(d deps) {
				d.otp.EXPECT().
					Consume(gomock.Any(), "verification", otpModel.PurposeRegistration).
					Return(otpModel.Challenge{}, failure.New(http.StatusUnauthorized, failure.ReasonInvalidVerification, "verification_token", "invalid"))
			},
			wantReason: failure.ReasonInvalidVerification,
			wantCode:   http.StatusUnauthorized,
			wantErr:    true,
		},
		{
			name: "lost the race to a concurrent registration",
			req:  req,
			setupMock: func(d deps) {
				d.otp.EXPECT().Consume(gomock.Any(), "verification", otpModel.PurposeRegistration).Return(challenge, nil)
				d.accounts.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(accountRepo.ErrPhoneTaken)
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
		{
			name: "admin accounts cannot self register",
			req:  dto.RegisterRequest{VerificationToken: "verification", Name: "Ops", Type: accountModel.TypeAdmin},
			setupMock: func(deps) {
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "session", res.Token)
			assert.Equal(t, "Rina", res.Account.Name)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	req := dto.LoginRequest{Phone: testPhone, Code: "123456", AppType: accountModel.TypeClient}

	suspended := activeAccount(accountModel.TypeClient)
	suspended.Status = accountModel.StatusSuspended

	tests := []struct {
		name       string
		setupMock  func(d deps)
		wantReason string
		wantCode   int
		wantErr    bool
	}{
		{
			name: "issues a session after a valid code",
			setupMock: func(d deps) {
				d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
				d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(activeAccount(accountModel.TypeClient), nil)
				d.otp.EXPECT().Verify(gomock.Any(), testPhone, "123456", otpModel.PurposeLogin).Return(otpDto.VerificationToken{}, nil)
				d.accounts.EXPECT().Get(gomock.Any(), "acc-1").Return(activeAccount(accountModel.TypeClient), nil)
				d.accounts.EXPECT().TouchLastLogin(gomock.Any(), "acc-1", now).Return(nil)
				d.jwt.EXPECT().GenerateSession(gomock.Any()).Return(jwt.Token{Value: "session"}, nil)
			},
		},
		{
			name: "app type mismatch is refused before the code is checked",
			setupMock: func(d deps) {
				d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
				d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(activeAccount(accountModel.TypeProvider), nil)
			},
			wantReason: failure.ReasonAppTypeMismatch,
			wantCode:   http.StatusForbidden,
			wantErr:    true,
		},
		{
			name: "wrong code",
			setupMock: func(d deps) {
				d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
				d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(activeAccount(accountModel.TypeClient), nil)
				d.otp.EXPECT().
					Verify(gomock.Any(), testPhone, "123456", otpModel.PurposeLogin).
					Return(otpDto.VerificationToken{}, failure.New(http.StatusBadRequest, failure.ReasonInvalidOrExpired, "code", "invalid"))
			},
			wantReason: failure.ReasonInvalidOrExpired,
			wantCode:   http.StatusBadRequest,
			wantErr:    true,
		},
		{
			name: "account suspended while the code was pending",
			setupMock: func(d deps) {
				d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
				d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(activeAccount(accountModel.TypeClient), nil)
				d.otp.EXPECT().Verify(gomock.Any(), testPhone, "123456", otpModel.PurposeLogin).Return(otpDto.VerificationToken{}, nil)
				d.accounts.EXPECT().Get(gomock.Any(), "acc-1").Return(suspended, nil)
			},
			wantReason: failure.ReasonAccountInactive,
			wantCode:   http.StatusForbidden,
			wantErr:    true,
		},
		{
			name: "last login failure does not block the session",
			setupMock: func(d deps) {
				d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
				d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(activeAccount(accountModel.TypeClient), nil)
				d.otp.EXPECT().Verify(gomock.Any(), testPhone, "123456", otpModel.PurposeLogin).Return(otpDto.VerificationToken{}, nil)
				d.accounts.EXPECT().Get(gomock.Any(), "acc-1").Return(activeAccount(accountModel.TypeClient), nil)
				d.accounts.EXPECT().TouchLastLogin(gomock.Any(), "acc-1", now).Return(errors.New("database error"))
				d.jwt.EXPECT().GenerateSession(gomock.Any()).Return(jwt.Token{Value: "session"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.Login(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "session", res.Token)
			assert.Equal(t, "acc-1", res.Account.ID)
		})
	}
}

func TestAuthService_ResendCode(t *testing.T) {
	svc, d := newService(t)

	d.otp.EXPECT().Normalize(testPhone).Return(testPhone, nil)
	d.accounts.EXPECT().GetByPhone(gomock.Any(), testPhone).Return(activeAccount(accountModel.TypeClient), nil)
	d.otp.EXPECT().Resend(gomock.Any(), testPhone, otpModel.PurposeLogin).Return(otpDto.RequestResult{ChallengeID: "c-2"}, nil)

	res, err := svc.ResendCode(context.Background(), dto.CodeRequest{Phone: testPhone, Purpose: otpModel.PurposeLogin, AppType: accountModel.TypeClient})

	assert.NoError(t, err)
	assert.Equal(t, "c-2", res.ChallengeID)
}
