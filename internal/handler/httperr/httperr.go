package httperr

import (
	"log/slog"
	"net/http"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const kindUnauthenticated = "UNAUTHENTICATED"

type Body struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

// QuotaDetail is attached to quota rejections so callers can size a retry.
type QuotaDetail struct {
	Current   int64 `json:"current"`
	Requested int64 `json:"requested"`
	Ceiling   int64 `json:"ceiling"`
	Remaining int64 `json:"remaining"`
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindFailedPrecondition:
		return http.StatusConflict
	case errs.KindPermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, kind string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: Body{Kind: kind, Message: msg}, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithKind derives status and message from the error's kind. Internal
// errors never leak their message; the stack goes to the log instead.
func AbortWithKind(c *gin.Context, err error, msg string) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)

	if kind == errs.KindInternal {
		slog.Error("internal error",
			"request_id", c.GetString("request_id"),
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8))
		msg = "Internal server error"
	} else if msg == "" {
		msg = err.Error()
	}

	var detail any
	var quota *sequence.QuotaExceededError
	if errs.As(err, &quota) {
		detail = QuotaDetail{
			Current:   quota.Current,
			Requested: quota.Requested,
			Ceiling:   quota.Ceiling,
			Remaining: quota.Remaining(),
		}
	}

	AbortWithError(c, status, string(kind), err, msg, detail)
}

func AbortUnauthorized(c *gin.Context, err error) {
	AbortWithError(c, http.StatusUnauthorized, kindUnauthenticated, err, err.Error(), nil)
}

func AbortBadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, string(errs.KindInvalidArgument), err, msg, nil)
}
