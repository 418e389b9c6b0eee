package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walletboard/internal/dto"
	"walletboard/internal/models"
	"walletboard/internal/services"
	"walletboard/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestProfileHandler(t *testing.T) {
	suite.Run(t, new(ProfileHandlerSuite))
}

type ProfileHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	profileService *service_mocks.MockProfileServiceInterface
	auditService   *service_mocks.MockAuditServiceInterface
	handler        *ProfileHandler
	e              *echo.Echo
	account        *models.Account
}

func (s *ProfileHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.profileService = service_mocks.NewMockProfileServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewProfileHandler(s.profileService, s.auditService)
	s.e = echo.New()
	s.e.Validator = NewValidator()

	s.account = models.NewWalletAccount("0x5290f1a4e2b1c3d4e5f60718293a4b5c6d7e8f90")
	s.account.ID = uuid.New()
	s.account.PortfolioValue = decimal.RequireFromString("1520.75")
	s.account.CreatedAt = time.Now()
}

func (s *ProfileHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProfileHandlerSuite) authenticated(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(AccountIDContextKey, s.account.ID)
	return c, rec
}

func (s *ProfileHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *ProfileHandlerSuite) TestGetProfile() {
	newRequest := func(username string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/profiles/"+username, nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		c.SetParamNames("username")
		c.SetParamValues(username)
		return c, rec
	}

	s.Run("public profile with holdings", func() {
		view := &models.ProfileView{
			Account: s.account,
			Holdings: []models.TokenHolding{{
				ContractAddress: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
				RawBalance:      "0x5f5e100",
				Quantity:        decimal.RequireFromString("0.0000000001"),
			}},
			BalancesAvailable: true,
			NFTs:              []models.NFT{{ContractAddress: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", TokenID: "0x01", Title: "Ape #1", Balance: "1"}},
			NFTsAvailable:     true,
			SnsLinks:          []models.SnsLink{{Platform: models.SnsPlatformGitHub, URL: "https://github.com/example"}},
			Addresses:         []models.LinkedAddress{{Address: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", CurrencyType: models.CurrencyBTC, IsPublic: true}},
		}
		s.profileService.EXPECT().
			GetProfile(gomock.Any(), s.account.Username, (*uuid.UUID)(nil)).
			Return(view, nil)

		c, rec := newRequest(s.account.Username)
		s.Require().NoError(s.handler.GetProfile(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.ProfileResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(s.account.Username, response.Username)
		s.Len(response.Holdings, 1)
		s.True(response.BalancesAvailable)
		s.False(response.IsOwner)
		s.True(response.PortfolioValue.Equal(decimal.RequireFromString("1520.75")))
		s.Require().Len(response.NFTs, 1)
		s.Equal("Ape #1", response.NFTs[0].Title)
		s.True(response.NFTsAvailable)
		s.Require().Len(response.SnsLinks, 1)
		s.Equal("https://github.com/example", response.SnsLinks[0].URL)
		s.Require().Len(response.Addresses, 1)
		s.Equal(models.CurrencyBTC, response.Addresses[0].CurrencyType)
	})

	s.Run("provider outage keeps the page", func() {
		s.profileService.EXPECT().
			GetProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.ProfileView{Account: s.account}, nil)

		c, rec := newRequest(s.account.Username)
		s.Require().NoError(s.handler.GetProfile(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"holdings":[]`)
		s.Contains(rec.Body.String(), `"balances_available":false`)
		s.Contains(rec.Body.String(), `"nfts":[]`)
		s.Contains(rec.Body.String(), `"nfts_available":false`)
		s.Contains(rec.Body.String(), `"sns_links":[]`)
		s.Contains(rec.Body.String(), `"addresses":[]`)
	})

	s.Run("private profile", func() {
		s.profileService.EXPECT().
			GetProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrProfilePrivate)

		c, rec := newRequest("someone")
		s.Require().NoError(s.handler.GetProfile(c))
		s.Equal(http.StatusForbidden, rec.Code)
		s.Equal("PROFILE_002", s.errorCode(rec))
	})

	s.Run("unknown profile", func() {
		s.profileService.EXPECT().
			GetProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrProfileNotFound)

		c, rec := newRequest("nobody")
		s.Require().NoError(s.handler.GetProfile(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("PROFILE_001", s.errorCode(rec))
	})
}

func (s *ProfileHandlerSuite) TestGetMe() {
	s.Run("returns the caller", func() {
		s.profileService.EXPECT().GetAccount(s.account.ID).Return(s.account, nil)

		c, rec := s.authenticated(httptest.NewRequest(http.MethodGet, "/profiles/me", nil))
		s.Require().NoError(s.handler.GetMe(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.AccountResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(s.account.ID, response.ID)
		s.Equal(models.ThemeDefault, response.ThemeColor)
	})

	s.Run("unauthenticated", func() {
		req := httptest.NewRequest(http.MethodGet, "/profiles/me", nil)
		rec := httptest.NewRecorder()
		s.Require().NoError(s.handler.GetMe(s.e.NewContext(req, rec)))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *ProfileHandlerSuite) TestUpdateMe() {
	newRequest := func(body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPatch, "/profiles/me", bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return s.authenticated(req)
	}

	s.Run("updates the profile", func() {
		updated := *s.account
		nickname := "satoshi"
		updated.Nickname = &nickname
		updated.IsPublic = false
		updated.SetThemeColor(models.ThemeOcean)

		s.profileService.EXPECT().
			UpdateProfile(s.account.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *dto.UpdateProfileRequest, _, _ string) (*models.Account, error) {
				s.Require().NotNil(req.Nickname)
				s.Equal("satoshi", *req.Nickname)
				s.Require().NotNil(req.IsPublic)
				s.False(*req.IsPublic)
				s.Nil(req.Bio)
				return &updated, nil
			})

		c, rec := newRequest(`{"nickname":"satoshi","is_public":false,"theme_color":"Ocean"}`)
		s.Require().NoError(s.handler.UpdateMe(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.AccountResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("satoshi", response.Nickname)
		s.False(response.IsPublic)
		s.Equal(models.ThemeOcean, response.ThemeColor)
	})

	s.Run("unknown theme fails validation", func() {
		c, _ := newRequest(`{"theme_color":"purple"}`)
		err := s.handler.UpdateMe(c)
		s.Require().Error(err)

		var validationErrors validator.ValidationErrors
		s.Require().True(errors.As(err, &validationErrors))
		s.Equal("theme_color", validationErrors[0].Tag())
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"empty update", services.ErrEmptyUpdate, http.StatusBadRequest, "VALIDATION_002"},
		{"invalid theme", services.ErrInvalidThemeColor, http.StatusBadRequest, "VALIDATION_006"},
		{"nickname taken", services.ErrNicknameTaken, http.StatusConflict, "PROFILE_003"},
		{"nickname reserved", services.ErrNicknameReserved, http.StatusConflict, "PROFILE_003"},
		{"account gone", services.ErrProfileNotFound, http.StatusNotFound, "PROFILE_001"},
		{"database failure", errors.New("deadlock"), http.StatusInternalServerError, "SYSTEM_001"},
	}
	for _, tc := range errorCases {
		s.Run(tc.name, func() {
			s.profileService.EXPECT().
				UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			c, rec := newRequest(`{"bio":"hodl"}`)
			s.Require().NoError(s.handler.UpdateMe(c))
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, s.errorCode(rec))
		})
	}
}

func (s *ProfileHandlerSuite) TestGetMyActivity() {
	s.Run("second page", func() {
		logs := []*models.AuditLog{{ID: uuid.New(), AccountID: &s.account.ID, Action: models.AuditActionWalletLogin}}
		s.auditService.EXPECT().
			GetAccountActivity(s.account.ID, 20, 20).
			Return(logs, int64(21), nil)

		c, rec := s.authenticated(httptest.NewRequest(http.MethodGet, "/profiles/me/activity?page=2", nil))
		s.Require().NoError(s.handler.GetMyActivity(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.AuditLogsListResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Len(response.Logs, 1)
		s.Equal(2, response.Pagination.Page)
		s.Equal(int64(21), response.Pagination.Total)
		s.False(response.Pagination.HasMore)
	})

	s.Run("repository failure", func() {
		s.auditService.EXPECT().
			GetAccountActivity(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, int64(0), errors.New("timeout"))

		c, rec := s.authenticated(httptest.NewRequest(http.MethodGet, "/profiles/me/activity", nil))
		s.Require().NoError(s.handler.GetMyActivity(c))
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *ProfileHandlerSuite) TestGetRanking() {
	s.Run("ranks continue across pages", func() {
		first := *s.account
		second := *models.NewWalletAccount("0x00000000000000000000000000000000000000aa")
		second.PortfolioValue = decimal.NewFromInt(10)

		s.profileService.EXPECT().
			GetRanking(services.RankingPerPage, services.RankingPerPage).
			Return([]models.Account{first, second}, int64(52), nil)

		req := httptest.NewRequest(http.MethodGet, "/ranking?page=2", nil)
		rec := httptest.NewRecorder()
		s.Require().NoError(s.handler.GetRanking(s.e.NewContext(req, rec)))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.RankingResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Require().Len(response.Accounts, 2)
		s.Equal(51, response.Accounts[0].Rank)
		s.Equal(52, response.Accounts[1].Rank)
		s.False(response.Pagination.HasMore)
	})

	s.Run("service failure", func() {
		s.profileService.EXPECT().GetRanking(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/ranking", nil)
		rec := httptest.NewRecorder()
		s.Require().NoError(s.handler.GetRanking(s.e.NewContext(req, rec)))
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
