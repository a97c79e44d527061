package view

import (
	"io"
	"iter"
	"strings"
	"unsafe"
)

// Clone 返回单元的拷贝，这是除 String 外唯一会分配内存的地方
func (v View[T]) Clone() []T {
	if len(v.data) == 0 {
		return nil
	}
	c := make([]T, len(v.data))
	copy(c, v.data)
	return c
}

// ToString 生成一份拥有所有权的字符串
func ToString(v View[byte]) string {
	return string(v.data)
}

// String 单字节单元按原始字节拷贝，更宽的单元每个按一个码点输出，不做编码转换
func (v View[T]) String() string {
	if len(v.data) == 0 {
		return ""
	}
	var zero T
	if unsafe.Sizeof(zero) == 1 {
		return string(unsafe.Slice((*byte)(v.base()), len(v.data)))
	}

	var b strings.Builder
	b.Grow(len(v.data))
	for _, c := range v.data {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// WriteTo 把 String 的结果写入 w
func (v View[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}

// All 按位置顺序遍历
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range v.data {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward 从最后一个单元开始反向遍历
func (v View[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
