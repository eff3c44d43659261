package converter

import (
	"errors"
	"fmt"
)

// ErrInvalidInput 表示传入的待转换值不是文本
var ErrInvalidInput = errors.New("text must be a string")

// InvalidInputError 记录被拒绝的值
type InvalidInputError struct {
	Value any
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v, got %T", ErrInvalidInput, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
