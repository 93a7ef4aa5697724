package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/util"
	"Folio/internal/repository"
	"errors"
	"fmt"
	"strings"
)

// ValidationError 一次提交的全部字段错误，存在时不落库
type ValidationError struct {
	Errors []dto.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+":"+fe.Kind)
	}
	return ErrValidationFailed.Error() + " [" + strings.Join(parts, ", ") + "]"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add 追加字段错误
func (e *ValidationError) Add(field, kind, message string) {
	e.Errors = append(e.Errors, dto.FieldError{Field: field, Kind: kind, Message: message})
}

// Has 是否包含指定字段的错误
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// OrNil 无错误时返回 nil
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// NewValidationError 单字段错误
func NewValidationError(field, kind, message string) *ValidationError {
	ve := &ValidationError{}
	ve.Add(field, kind, message)
	return ve
}

// duplicateSlugError 存储层唯一约束冲突
func duplicateSlugError() *ValidationError {
	return NewValidationError("slug", util.KindDuplicate, "字段 [slug] 已被使用")
}

// validateStruct 执行结构体标签规则
func validateStruct(v any) (*ValidationError, error) {
	fieldErrors, err := util.ValidateDTO(v)
	if err != nil {
		return nil, err
	}
	return &ValidationError{Errors: fieldErrors}, nil
}

// addReferenceError 将引用缺失转换为字段错误，其他错误原样返回
func addReferenceError(ve *ValidationError, err error) error {
	var refErr *repository.ReferenceError
	if errors.As(err, &refErr) {
		ve.Add(refErr.Field, util.KindMissingReference, fmt.Sprintf("字段 [%s] 引用的记录不存在: %v", refErr.Field, refErr.IDs))
		return nil
	}
	return err
}
