package view

import "math"

// Iterator 随机访问迭代器：被绑定视图的指针加位置。
// 零值未绑定，Pos 返回 Npos；Begin、End 返回绑定的迭代器，位置为 0 或 Len。
// 迭代器不延长视图的生命周期，也不拷贝视图：之后对该 View 的 RemovePrefix 等操作对迭代器可见。
// 只有绑定到同一个 View 变量（同一指针）的迭代器才可比较顺序，View 的拷贝是另一个视图。
type Iterator[T Unit] struct {
	view *View[T]
	pos  int
}

func (v *View[T]) Begin() Iterator[T] {
	return Iterator[T]{view: v, pos: 0}
}

func (v *View[T]) End() Iterator[T] {
	return Iterator[T]{view: v, pos: len(v.data)}
}

func (it Iterator[T]) Bound() bool {
	return it.view != nil
}

func (it Iterator[T]) Pos() int {
	if it.view == nil {
		return Npos
	}
	return it.pos
}

// Value 解引用。未绑定或位于末尾时 panic，这是调用方的前置条件。
func (it Iterator[T]) Value() T {
	return it.At(0)
}

// At 读取 Pos()+n 处的单元
func (it Iterator[T]) At(n int) T {
	if it.view == nil {
		panic(ErrUnbound)
	}
	i := it.pos + n
	if n > 0 && i < it.pos {
		i = Npos
	}
	if i < 0 || i >= len(it.view.data) {
		panic(outOfRange("iterator", i, len(it.view.data)))
	}
	return it.view.data[i]
}

// View 返回迭代器绑定的视图，未绑定时返回空视图
func (it Iterator[T]) View() View[T] {
	if it.view == nil {
		return View[T]{}
	}
	return *it.view
}

// Inc 前置 ++，停在 End
func (it *Iterator[T]) Inc() *Iterator[T] {
	return it.Advance(1)
}

// PostInc 后置 ++，返回移动前的拷贝
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.Inc()
	return old
}

// Dec 前置 --，停在 Begin
func (it *Iterator[T]) Dec() *Iterator[T] {
	return it.Retreat(1)
}

func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.Dec()
	return old
}

// Advance 即 +=，结果截断到 [0, Len]，n 为负时等价于 Retreat(-n)
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	if it.view == nil {
		return it
	}
	if n < 0 {
		if n == math.MinInt {
			it.pos = 0
			return it
		}
		return it.Retreat(-n)
	}
	if rest := len(it.view.data) - it.pos; n > rest {
		n = rest
	}
	it.pos += n
	return it
}

// Retreat 即 -=，向下越界时停在 0 而不是回绕
func (it *Iterator[T]) Retreat(n int) *Iterator[T] {
	if it.view == nil {
		return it
	}
	if n < 0 {
		if n == math.MinInt {
			it.pos = len(it.view.data)
			return it
		}
		return it.Advance(-n)
	}
	if n > it.pos {
		n = it.pos
	}
	it.pos -= n
	return it
}

func (it Iterator[T]) Add(n int) Iterator[T] {
	return *it.Advance(n)
}

func (it Iterator[T]) Sub(n int) Iterator[T] {
	return *it.Retreat(n)
}

// Diff 即 it - other，只对同一视图上的迭代器有意义
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.pos - other.pos
}

// Equal 同一个实例，或者绑定同一视图且位置相同
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it == other || (it.view == other.view && it.Pos() == other.Pos())
}

func (it *Iterator[T]) NotEqual(other *Iterator[T]) bool {
	return !it.Equal(other)
}

// Less 不同视图之间一律为 false
func (it *Iterator[T]) Less(other *Iterator[T]) bool {
	return it != other && it.view == other.view && it.Pos() < other.Pos()
}

func (it *Iterator[T]) Greater(other *Iterator[T]) bool {
	return it != other && it.view == other.view && it.Pos() > other.Pos()
}

func (it *Iterator[T]) LessOrEqual(other *Iterator[T]) bool {
	return !it.Greater(other)
}

func (it *Iterator[T]) GreaterOrEqual(other *Iterator[T]) bool {
	return !it.Less(other)
}
