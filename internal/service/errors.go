package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid = errors.New("invalid parameter")
	ErrPostNotFound = errors.New("post not found")
	UnExpectedError = errors.New("internal error")
)

var ErrorMap = map[error]int{
	ErrParamInvalid: BadRequest,
	ErrPostNotFound: NotFound,
	UnExpectedError: InternalServerError,
}

// StatusOf 返回 err 对应的状态码，未知错误按 500 处理
func StatusOf(err error) int {
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return InternalServerError
}

// ValidationError 参数校验失败，Field 为出错字段
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrParamInvalid }

// PostNotFoundError 指定 ID 的帖子不存在
type PostNotFoundError struct {
	ID string
}

func (e *PostNotFoundError) Error() string {
	return fmt.Sprintf("Post with ID %s not found", e.ID)
}

func (e *PostNotFoundError) Unwrap() error { return ErrPostNotFound }

// OperationError 屏蔽底层原因后的通用错误
type OperationError struct {
	Message string
}

func (e *OperationError) Error() string { return e.Message }

func (e *OperationError) Unwrap() error { return UnExpectedError }
