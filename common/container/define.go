package container

import (
	"errors"
	"fmt"
	"reflect"
)

type None struct{}

var (
	// ErrEmptyContainer 容器为空时取元素
	ErrEmptyContainer = errors.New("container is empty")
	// ErrTypeConstraintViolation 写入元素类型与容器声明类型不一致
	ErrTypeConstraintViolation = errors.New("type constraint violation")
)

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}

// TypeConstraintError 类型约束错误 记录期望类型与实际类型
type TypeConstraintError struct {
	Expected reflect.Type // 容器声明的元素类型
	Actual   reflect.Type // 实际写入的类型 nil 表示写入的是 nil
}

func (e *TypeConstraintError) Error() string {
	return fmt.Sprintf("%v: expected %s, got %s", ErrTypeConstraintViolation, typeName(e.Expected), typeName(e.Actual))
}

// Is 匹配 ErrTypeConstraintViolation
func (e *TypeConstraintError) Is(target error) bool {
	return target == ErrTypeConstraintViolation
}

// typeName nil 安全的类型名
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// typeOf 获取泛型参数的反射类型 接口类型也能拿到
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
