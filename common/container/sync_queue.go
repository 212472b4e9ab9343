package container

import (
	"sync"
)

var (
	_ Container[int] = (*SyncQueue[int])(nil)
)

// SyncQueue 线程安全的先进先出队列
// 加锁约定: 所有方法持有同一把互斥锁 锁内不回调外部函数
type SyncQueue[T any] struct {
	queue *Queue[T]
	lock  sync.Mutex
}

// NewSyncQueue 创建线程安全队列
func NewSyncQueue[T any]() *SyncQueue[T] {
	return &SyncQueue[T]{
		queue: NewQueue[T](),
	}
}

// Empty 判断队列是否为空
func (q *SyncQueue[T]) Empty() bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.Empty()
}

// Size 获取队列长度
func (q *SyncQueue[T]) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.Size()
}

// Clear 清空队列
func (q *SyncQueue[T]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.queue.Clear()
}

// Value 获取队列数据快照
func (q *SyncQueue[T]) Value() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.Value()
}

// Push 入队
func (q *SyncQueue[T]) Push(val T) {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.queue.Push(val)
}

// PushAny 入队 运行期检查类型
func (q *SyncQueue[T]) PushAny(item any) error {
	// 断言不需要持锁
	val, err := assertElem[T](item)
	if err != nil {
		return err
	}
	q.Push(val)
	return nil
}

// Peek 查看队首元素
func (q *SyncQueue[T]) Peek() (T, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.Peek()
}

// Pop 出队
func (q *SyncQueue[T]) Pop() (T, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.queue.Pop()
}
