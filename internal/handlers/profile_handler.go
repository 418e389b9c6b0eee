package handlers

import (
	stderrors "errors"
	"net/http"

	"walletboard/internal/dto"
	"walletboard/internal/errors"
	"walletboard/internal/services"

	"github.com/labstack/echo/v4"
)

const activityPerPage = 20

// ProfileHandler serves profile pages, profile editing and the portfolio ranking
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
	auditService   services.AuditServiceInterface
}

func NewProfileHandler(profileService services.ProfileServiceInterface, auditService services.AuditServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		auditService:   auditService,
	}
}

// GetProfile shows a profile with its live token holdings
// GET /profiles/:username
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	view, err := h.profileService.GetProfile(c.Request().Context(), c.Param("username"), viewerID(c))
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrProfileNotFound):
			return SendError(c, errors.ProfileNotFound)
		case stderrors.Is(err, services.ErrProfilePrivate):
			return SendError(c, errors.ProfilePrivate)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewProfileResponse(view))
}

// GetMe returns the authenticated account
// GET /profiles/me
func (h *ProfileHandler) GetMe(c echo.Context) error {
	accountID, ok := currentAccount(c)
	if !ok {
		return SendError(c, errors.AuthMissingToken)
	}

	account, err := h.profileService.GetAccount(accountID)
	if err != nil {
		if stderrors.Is(err, services.ErrProfileNotFound) {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// UpdateMe edits the authenticated account's profile
// PATCH /profiles/me
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	accountID, ok := currentAccount(c)
	if !ok {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.profileService.UpdateProfile(accountID, &req, ClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrEmptyUpdate):
			return SendError(c, errors.ValidationRequiredField, errors.WithDetails("At least one profile field is required"))
		case stderrors.Is(err, services.ErrInvalidThemeColor):
			return SendError(c, errors.ValidationInvalidThemeColor)
		case stderrors.Is(err, services.ErrNicknameTaken), stderrors.Is(err, services.ErrNicknameReserved):
			return SendError(c, errors.ProfileNicknameTaken)
		case stderrors.Is(err, services.ErrProfileNotFound):
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// GetMyActivity lists the authenticated account's own audit trail, newest first
// GET /profiles/me/activity?page=n
func (h *ProfileHandler) GetMyActivity(c echo.Context) error {
	accountID, ok := currentAccount(c)
	if !ok {
		return SendError(c, errors.AuthMissingToken)
	}

	page := pageParam(c)
	logs, total, err := h.auditService.GetAccountActivity(accountID, pageOffset(page, activityPerPage), activityPerPage)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuditLogsListResponse{
		Logs:       logs,
		Pagination: dto.NewPaginationMeta(page, activityPerPage, total),
	})
}

// GetRanking lists public accounts by portfolio value
// GET /ranking?page=n
func (h *ProfileHandler) GetRanking(c echo.Context) error {
	page := pageParam(c)

	accounts, total, err := h.profileService.GetRanking(pageOffset(page, services.RankingPerPage), services.RankingPerPage)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRankingResponse(accounts, page, services.RankingPerPage, total))
}
