package container

import (
	"reflect"
)

var (
	_ Container[any] = (*AnyQueue)(nil)
)

// AnyQueue 运行期类型约束的先进先出队列 线程不安全
// 元素类型在构造时指定 或者由第一次成功入队的元素确定 之后不可更改
type AnyQueue struct {
	elemType reflect.Type
	queue    *Queue[any]
}

// NewAnyQueue 创建队列
// elemType 为 nil 时由第一次入队的元素绑定类型
func NewAnyQueue(elemType reflect.Type) *AnyQueue {
	return &AnyQueue{
		elemType: elemType,
		queue:    NewQueue[any](),
	}
}

// NewAnyQueueOf 创建元素类型为 T 的队列
func NewAnyQueueOf[T any]() *AnyQueue {
	return NewAnyQueue(typeOf[T]())
}

// ElemType 获取绑定的元素类型 未绑定返回 nil
func (q *AnyQueue) ElemType() reflect.Type {
	return q.elemType
}

// Empty 判断队列是否为空
func (q *AnyQueue) Empty() bool {
	return q.queue.Empty()
}

// Size 获取队列长度
func (q *AnyQueue) Size() int {
	return q.queue.Size()
}

// Clear 清空队列 已绑定的类型保留
func (q *AnyQueue) Clear() {
	q.queue.Clear()
}

// Value 获取队列数据
func (q *AnyQueue) Value() []any {
	return q.queue.Value()
}

// Push 入队 类型不匹配返回 *TypeConstraintError
func (q *AnyQueue) Push(item any) error {
	if q.elemType == nil {
		if item == nil {
			// 无法从 nil 推断类型
			return &TypeConstraintError{}
		}
		q.elemType = reflect.TypeOf(item)
		q.queue.Push(item)
		return nil
	}

	if item == nil {
		if !nilable(q.elemType) {
			return &TypeConstraintError{Expected: q.elemType}
		}
		q.queue.Push(reflect.Zero(q.elemType).Interface())
		return nil
	}
	actual := reflect.TypeOf(item)
	if !actual.AssignableTo(q.elemType) {
		return &TypeConstraintError{Expected: q.elemType, Actual: actual}
	}
	q.queue.Push(item)
	return nil
}

// Peek 查看队首元素
func (q *AnyQueue) Peek() (any, error) {
	return q.queue.Peek()
}

// Pop 出队 队列为空返回 ErrEmptyContainer
func (q *AnyQueue) Pop() (any, error) {
	return q.queue.Pop()
}
