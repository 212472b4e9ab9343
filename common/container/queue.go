package container

import (
	"iter"
	"reflect"
)

const (
	// 初始化容量
	initCapacity = 8
)

var (
	// 断言 检查实现 Container
	_ Container[int] = (*Queue[int])(nil)
)

// Queue 先进先出队列 线程不安全
// 元素类型由泛型参数在编译期约束 Pop 只会返回以同一类型写入的元素
type Queue[T any] struct {
	// 队列数据 采用slice
	// 对比 list.List 结构更简单，维护成本低
	// 缺点是如果元素过大 slice 频繁拷贝会耗费更多性能
	data     []T
	begin    int
	end      int
	capacity int
}

// NewQueue 创建队列
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		data:     make([]T, initCapacity),
		capacity: initCapacity,
	}
}

// NewQueueFrom 以给定元素创建队列 values[0] 为队首
func NewQueueFrom[T any](values ...T) *Queue[T] {
	q := NewQueue[T]()
	for _, val := range values {
		q.Push(val)
	}
	return q
}

// Empty 判断队列是否为空
func (q *Queue[T]) Empty() bool {
	return q.Size() <= 0
}

// Size 获取队列长度
func (q *Queue[T]) Size() int {
	return q.end - q.begin
}

// Clear 清空队列
func (q *Queue[T]) Clear() {
	q.begin = 0
	q.end = 0
	q.data = make([]T, initCapacity)
	q.capacity = initCapacity
}

// Value 获取队列数据 按出队顺序 返回副本
func (q *Queue[T]) Value() []T {
	values := make([]T, q.Size())
	copy(values, q.data[q.begin:q.end])
	return values
}

// Iter 按出队顺序遍历 不移除元素
func (q *Queue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := q.begin; i < q.end; i++ {
			if !yield(q.data[i]) {
				return
			}
		}
	}
}

// Push 入队
func (q *Queue[T]) Push(val T) {
	if q.end >= q.capacity {
		q.expand()
	}
	q.data[q.end] = val
	q.end++
}

// PushAny 入队 运行期检查类型
// 用于值来源于 any 的场景 类型不匹配返回 *TypeConstraintError 且不入队
func (q *Queue[T]) PushAny(item any) error {
	val, err := assertElem[T](item)
	if err != nil {
		return err
	}
	q.Push(val)
	return nil
}

// Peek 查看队首元素 不出队
func (q *Queue[T]) Peek() (val T, err error) {
	if q.Empty() {
		return val, ErrEmptyContainer
	}
	return q.data[q.begin], nil
}

// Pop 出队 队列为空返回 ErrEmptyContainer
func (q *Queue[T]) Pop() (val T, err error) {
	if q.Empty() {
		return val, ErrEmptyContainer
	}
	var zero T
	val = q.data[q.begin]
	q.data[q.begin] = zero // 释放引用
	q.begin++

	if q.Empty() {
		// 队列已空 游标归零复用空间
		q.begin = 0
		q.end = 0
	}
	// 缩容
	if q.begin >= q.capacity/2 {
		q.shrink()
	}
	return val, nil
}

// expand 扩容
func (q *Queue[T]) expand() {
	// 队首空闲超过一半 移动元素到首部 否则直接扩容 避免每次入队都整体拷贝
	if q.begin >= q.capacity/2 {
		length := q.Size()
		copy(q.data, q.data[q.begin:q.end])
		clear(q.data[length:q.end])
		q.begin = 0
		q.end = length
		return
	}
	newCapacity := q.capacity * 2
	if q.capacity >= 1024 {
		newCapacity = q.capacity/4 + q.capacity
	}
	newData := make([]T, newCapacity)
	length := copy(newData, q.data[q.begin:q.end])
	q.begin = 0
	q.end = length
	q.data = newData
	q.capacity = newCapacity
}

// shrink 缩容
func (q *Queue[T]) shrink() {
	length := q.Size()
	if length > q.capacity/4 || q.capacity <= initCapacity {
		return
	}
	newCapacity := max(q.capacity/2, initCapacity)
	newData := make([]T, newCapacity)
	copy(newData, q.data[q.begin:q.end])
	q.begin = 0
	q.end = length
	q.data = newData
	q.capacity = newCapacity
}

// assertElem 运行期类型断言
// nil 只允许写入可为 nil 的类型 (接口 指针 切片 映射 通道 函数)
func assertElem[T any](item any) (val T, err error) {
	if item == nil {
		expected := typeOf[T]()
		if !nilable(expected) {
			return val, &TypeConstraintError{Expected: expected}
		}
		return val, nil
	}
	val, ok := item.(T)
	if !ok {
		return val, &TypeConstraintError{Expected: typeOf[T](), Actual: reflect.TypeOf(item)}
	}
	return val, nil
}

// nilable 判断类型的零值是否为 nil
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}
