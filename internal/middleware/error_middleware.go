package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/philip98/obsidian-server/internal/app/models/dto"
	"github.com/philip98/obsidian-server/internal/pkg/apperrors"
	"github.com/philip98/obsidian-server/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers
// funnel every service error through here.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingBorrower):
		respond(c, http.StatusBadRequest, dto.ErrorCodeMissingBorrower, err)
	case errors.Is(err, apperrors.ErrNoBooksSelected):
		respond(c, http.StatusBadRequest, dto.ErrorCodeNoBooksSelected, err)
	case errors.Is(err, apperrors.ErrTeacherSwap):
		respond(c, http.StatusBadRequest, dto.ErrorCodeTeacherSwap, err)
	case errors.Is(err, apperrors.ErrDuplicateSwap):
		respond(c, http.StatusConflict, dto.ErrorCodeDuplicateSwap, err)
	case errors.Is(err, apperrors.ErrBookNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeBookNotFound, err)

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrTeacherNotFound,
		apperrors.ErrAliasNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err)

	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrStudentExists,
		apperrors.ErrTeacherExists,
		apperrors.ErrBookExists,
		apperrors.ErrAliasExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err)

	case apperrors.Is(err, apperrors.ErrBookInUse, apperrors.ErrBorrowerInUse):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceInUse, err)

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrUnknownEntity):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, err error) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, err.Error())))
}
