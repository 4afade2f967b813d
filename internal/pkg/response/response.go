package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"newsfeed/internal/api/dto"
	"newsfeed/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	NotFound            = 404
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
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "Invalid parameter")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Invalid JSON")
		return
	}

	code := service.StatusOf(err)
	if code == InternalServerError && !errors.Is(err, service.UnExpectedError) {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		err = service.UnExpectedError
	}
	Fail(c, code, err.Error())
}
