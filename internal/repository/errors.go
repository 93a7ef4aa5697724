package repository

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrDuplicateKey 唯一约束冲突
var ErrDuplicateKey = errors.New("duplicate key")

// ErrUnknownColumn 排序或搜索的列不受支持
var ErrUnknownColumn = errors.New("unknown column")

// ReferenceError 引用的记录不存在
type ReferenceError struct {
	Field string
	IDs   []uint64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("missing reference %s: %v", e.Field, e.IDs)
}

// translateError 唯一约束冲突统一为 ErrDuplicateKey，其余错误附加上下文
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return ErrDuplicateKey
	}
	return errors.Wrap(err, op)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
