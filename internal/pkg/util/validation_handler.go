package util

import (
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("utf16max", utf16Max)
}

// ValidateVar checks a single value against validator tags such as "required,notblank".
func ValidateVar(value any, tag string) error {
	return validate.Var(value, tag)
}

// UTF16Len 按 UTF-16 码元计数，与浏览器端 string.length 一致
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// utf16Max 校验字符串的 UTF-16 长度不超过参数
func utf16Max(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return UTF16Len(fl.Field().String()) <= limit
}
