package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	UnprocessableEntity = 422
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrPostNotFound     = errors.New("文章不存在")
	ErrCategoryNotFound = errors.New("分类不存在")
	ErrResourceNotFound = errors.New("资源不存在")
	ErrColumnNotAllowed = errors.New("该列不支持排序或搜索")
	ErrFileNotSupported = errors.New("不支持的文件类型")
	ErrFileTooLarge     = errors.New("文件过大")
	ErrFileNotExist     = errors.New("文件不存在")
	ErrValidationFailed = errors.New("数据校验失败")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrPostNotFound:     NotFound,
	ErrCategoryNotFound: NotFound,
	ErrResourceNotFound: NotFound,
	ErrColumnNotAllowed: BadRequest,
	ErrFileNotSupported: BadRequest,
	ErrFileTooLarge:     BadRequest,
	ErrFileNotExist:     NotFound,
	ErrValidationFailed: UnprocessableEntity,
	UnExpectedError:     InternalServerError,
}
