package slice_utils

import (
	"iter"
)

// Reverse 返回逆序后的新切片 不修改入参
// 返回值与入参类型一致 命名切片类型同样保留
func Reverse[S ~[]E, E any](items S) S {
	if items == nil {
		return nil
	}
	length := len(items)
	reversed := make(S, length)
	for i, item := range items {
		reversed[length-1-i] = item
	}
	return reversed
}

// ReverseSeq 逆序迭代有限序列
// 首次迭代时才会读取整个序列
func ReverseSeq[E any](seq iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		var buffer []E
		for item := range seq {
			buffer = append(buffer, item)
		}
		for i := len(buffer) - 1; i >= 0; i-- {
			if !yield(buffer[i]) {
				return
			}
		}
	}
}
