package util

import (
	"Folio/internal/api/dto"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 校验错误类型
const (
	KindRequired         = "required"
	KindMinLength        = "min_length"
	KindMaxLength        = "max_length"
	KindInvalidFormat    = "invalid_format"
	KindDuplicate        = "duplicate"
	KindMissingReference = "missing_reference"
	KindEmptySelection   = "empty_selection"
	KindInvalidImage     = "invalid_image"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = validate.RegisterValidation("notempty", notEmpty)
	_ = validate.RegisterValidation("selected", selected)
}

// notEmpty 字符串去除空白后非空，集合至少一项
func notEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	default:
		return !field.IsZero()
	}
}

// selected 多选至少选择一项
func selected(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	default:
		return !field.IsZero()
	}
}

// ValidateDTO 校验结构体并返回全部字段错误，无错误时返回 nil
func ValidateDTO(dto any) ([]dto.FieldError, error) {
	err := validate.Struct(dto)
	if err == nil {
		return nil, nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil, err
	}
	return TranslateValidationErrors(vErrs), nil
}

// TranslateValidationErrors 将 validator 错误转换为字段错误列表
func TranslateValidationErrors(vErrs validator.ValidationErrors) []dto.FieldError {
	fieldErrors := make([]dto.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		kind := KindOf(fe.Tag())
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field:   fe.Field(),
			Kind:    kind,
			Message: messageOf(fe, kind),
		})
	}
	return fieldErrors
}

// KindOf 校验标签对应的错误类型
func KindOf(tag string) string {
	switch tag {
	case "required", "notempty":
		return KindRequired
	case "min":
		return KindMinLength
	case "max":
		return KindMaxLength
	case "selected":
		return KindEmptySelection
	default:
		return KindInvalidFormat
	}
}

func messageOf(fe validator.FieldError, kind string) string {
	isCollection := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map || fe.Kind() == reflect.Array
	switch kind {
	case KindRequired:
		return fmt.Sprintf("字段 [%s] 不能为空", fe.Field())
	case KindMinLength:
		if isCollection {
			return fmt.Sprintf("字段 [%s] 至少包含 %s 项", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("字段 [%s] 长度不能少于 %s", fe.Field(), fe.Param())
	case KindMaxLength:
		if isCollection {
			return fmt.Sprintf("字段 [%s] 最多包含 %s 项", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("字段 [%s] 长度不能超过 %s", fe.Field(), fe.Param())
	case KindEmptySelection:
		return fmt.Sprintf("字段 [%s] 至少选择一项", fe.Field())
	default:
		return fmt.Sprintf("字段 [%s] 格式错误，规则 [%s]", fe.Field(), fe.Tag())
	}
}
