// Package view 提供对一段连续字符单元的只读、非拥有视图（string_view），以及在视图上随机访问的迭代器。
//
// View 不会分配、拷贝或释放它引用的内存，底层缓冲区的生命周期由调用方保证。
package view

import (
	"math"
	"unsafe"
)

// Npos 表示“未找到”或“直到视图末尾”
const Npos = math.MaxInt

// Unit 为定宽字符单元：char、char16、char32 以及 rune
type Unit interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// View 只读视图，只保存首单元位置和长度（通过切片表示），零值为空视图
type View[T Unit] struct {
	data []T
}

// New 绑定 buf 的全部单元
func New[T Unit](buf []T) View[T] {
	if len(buf) == 0 {
		return View[T]{}
	}
	return View[T]{data: buf[:len(buf):len(buf)]}
}

// NewN 绑定 buf 的前 count 个单元，count 超出 buf 时截断
func NewN[T Unit](buf []T, count int) View[T] {
	if count < 0 || count > len(buf) {
		count = len(buf)
	}
	return New(buf[:count])
}

// FromTerminated 扫描到第一个零单元为止，没有终止符则视图覆盖整个 buf
func FromTerminated[T Unit](buf []T) View[T] {
	for i, c := range buf {
		if c == 0 {
			return New(buf[:i])
		}
	}
	return New(buf)
}

// Index 不做边界检查的快速路径，i 必须小于 Len
func (v View[T]) Index(i int) T {
	return v.data[i]
}

// At 带边界检查，i 越界返回 *RangeError
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, outOfRange("at", i, len(v.data))
	}
	return v.data[i], nil
}

// Front 视图为空时 panic
func (v View[T]) Front() T {
	return v.data[0]
}

// Back 视图为空时 panic
func (v View[T]) Back() T {
	return v.data[len(v.data)-1]
}

// Data 返回底层单元，只在视图为空时为 nil。调用方不得修改返回的切片。
func (v View[T]) Data() []T {
	return v.data
}

func (v View[T]) Len() int {
	return len(v.data)
}

func (v View[T]) Size() int {
	return len(v.data)
}

func (v View[T]) MaxSize() int {
	return len(v.data)
}

func (v View[T]) Empty() bool {
	return v.data == nil || len(v.data) == 0
}

// RemovePrefix 从头部收缩 n 个单元，n 超过 Len 时 panic(*RangeError)
func (v *View[T]) RemovePrefix(n int) {
	if n < 0 || n > len(v.data) {
		panic(outOfRange("remove_prefix", n, len(v.data)))
	}
	v.data = trim(v.data[n:])
}

// RemoveSuffix 从尾部收缩 n 个单元，n 超过 Len 时 panic(*RangeError)
func (v *View[T]) RemoveSuffix(n int) {
	if n < 0 || n > len(v.data) {
		panic(outOfRange("remove_suffix", n, len(v.data)))
	}
	v.data = trim(v.data[:len(v.data)-n])
}

func (v *View[T]) Swap(other *View[T]) {
	v.data, other.data = other.data, v.data
}

// trim 空窗口统一为 nil
func trim[T Unit](d []T) []T {
	if len(d) == 0 {
		return nil
	}
	return d
}

// Copy 从 pos 开始最多拷贝 count 个单元到 dest，返回实际拷贝数。
// pos >= Len 返回 *RangeError；count 为负或 Npos 表示拷贝到末尾，结果同时受 len(dest) 限制。
func (v View[T]) Copy(dest []T, count, pos int) (int, error) {
	if pos < 0 || pos >= len(v.data) {
		return 0, outOfRange("copy", pos, len(v.data))
	}
	n := clampCount(count, len(v.data)-pos)
	return copy(dest, v.data[pos:pos+n]), nil
}

// Substr 返回 [pos, pos+count) 与原窗口的交集，count 为 Npos 表示剩余全部。
// pos > Len 时 panic(*RangeError)。
func (v View[T]) Substr(pos, count int) View[T] {
	if pos < 0 || pos > len(v.data) {
		panic(outOfRange("substr", pos, len(v.data)))
	}
	n := clampCount(count, len(v.data)-pos)
	return View[T]{data: trim(v.data[pos : pos+n : pos+n])}
}

func clampCount(count, rest int) int {
	if count < 0 || count > rest {
		return rest
	}
	return count
}

// base 返回首单元地址，用于判断两个视图是否是同一个窗口
func (v View[T]) base() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(v.data))
}

func (v View[T]) same(other View[T]) bool {
	return v.base() == other.base() && len(v.data) == len(other.data)
}
