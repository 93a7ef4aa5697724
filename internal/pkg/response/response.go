package response

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/util"
	"Folio/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	NotFound            = 404
	UnprocessableEntity = 422
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	FailWithData(c, businessCode, message, nil)
}

// FailWithData 失败返回封装，附带错误详情
func FailWithData(c *gin.Context, businessCode int, message string, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    data,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var fieldErr *service.ValidationError
	if errors.As(err, &fieldErr) {
		FailWithData(c, UnprocessableEntity, service.ErrValidationFailed.Error(), fieldErr.Errors)
		return
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		FailWithData(c, UnprocessableEntity, service.ErrValidationFailed.Error(), util.TranslateValidationErrors(ve))
		return
	}

	if isJSONError(err) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	var numError *strconv.NumError
	if errors.As(err, &numError) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	for target, code := range service.ErrorMap {
		if errors.Is(err, target) {
			Fail(c, code, target.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "Error", "err", err)
	Fail(c, InternalServerError, service.UnExpectedError.Error())
}

// isJSONError 请求体解析失败，兼容 gin 的两种 JSON 实现
func isJSONError(err error) bool {
	var unmarshalTypeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	var stdUnmarshalTypeError *stdjson.UnmarshalTypeError
	var stdSyntaxError *stdjson.SyntaxError
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.As(err, &unmarshalTypeError) ||
		errors.As(err, &syntaxError) ||
		errors.As(err, &stdUnmarshalTypeError) ||
		errors.As(err, &stdSyntaxError)
}
