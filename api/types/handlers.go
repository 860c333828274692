package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

// User-facing messages for failures the caller cannot fix
const (
	MsgSearchUnavailable   = "搜尋服務暫時無法使用"
	MsgAISearchUnavailable = "AI 搜尋服務暫時無法使用"
	MsgBadResultFormat     = "搜尋結果格式異常"
	MsgTooManyRequests     = "搜尋請求過於頻繁，請稍後再試"
	MsgQuotaExhausted      = "AI 額度已用完，請至設定頁面加值"
	MsgInvalidBody         = "Invalid request body"
	MsgInternal            = "Internal server error"
)

// UserMessage maps an error to the text shown to the client. Validation
// and lookup errors keep their own message; upstream failures get a fixed
// localized one so no internal detail leaks.
func UserMessage(err error) string {
	appErr, ok := apperrors.As(err)
	if !ok {
		return MsgInternal
	}
	switch appErr.Code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeMissingField, apperrors.ErrCodeNotFound:
		return appErr.Message
	case apperrors.ErrCodeUpstreamTransport:
		if appErr.Details["service"] == "ai" {
			return MsgAISearchUnavailable
		}
		return MsgSearchUnavailable
	case apperrors.ErrCodeUpstreamFormat:
		return MsgBadResultFormat
	case apperrors.ErrCodeAPIRateLimit:
		return MsgTooManyRequests
	case apperrors.ErrCodeQuotaExhausted:
		return MsgQuotaExhausted
	default:
		return MsgInternal
	}
}

// SendError writes the failure envelope for err and logs server-side
// failures with their full cause.
func SendError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperrors.GetHTTPCode(err)
	if status >= http.StatusInternalServerError {
		logging.OrNop(logger).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", string(apperrors.GetCode(err))),
			zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Success: false, Error: UserMessage(err)})
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: message})
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		SendBadRequest(c, MsgInvalidBody)
		return false
	}
	return true
}

// QueryInt reads an integer query parameter, falling back to def when it
// is missing. A malformed value sends a 400 and returns false.
func QueryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		SendBadRequest(c, "Invalid "+name)
		return 0, false
	}
	return v, true
}
