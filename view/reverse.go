package view

// ReverseIterator 包装一个正向迭代器，解引用 base 的前一个位置
type ReverseIterator[T Unit] struct {
	base Iterator[T]
}

func Reverse[T Unit](it Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: it}
}

func (v *View[T]) RBegin() ReverseIterator[T] {
	return Reverse(v.End())
}

func (v *View[T]) REnd() ReverseIterator[T] {
	return Reverse(v.Begin())
}

func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

func (r ReverseIterator[T]) Value() T {
	return r.base.At(-1)
}

func (r ReverseIterator[T]) At(n int) T {
	return r.base.At(-n - 1)
}

func (r *ReverseIterator[T]) Inc() *ReverseIterator[T] {
	r.base.Dec()
	return r
}

func (r *ReverseIterator[T]) PostInc() ReverseIterator[T] {
	old := *r
	r.Inc()
	return old
}

func (r *ReverseIterator[T]) Dec() *ReverseIterator[T] {
	r.base.Inc()
	return r
}

func (r *ReverseIterator[T]) PostDec() ReverseIterator[T] {
	old := *r
	r.Dec()
	return old
}

func (r *ReverseIterator[T]) Advance(n int) *ReverseIterator[T] {
	r.base.Retreat(n)
	return r
}

func (r *ReverseIterator[T]) Retreat(n int) *ReverseIterator[T] {
	r.base.Advance(n)
	return r
}

func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return *r.Advance(n)
}

func (r ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	return *r.Retreat(n)
}

func (r ReverseIterator[T]) Diff(other ReverseIterator[T]) int {
	return other.base.Diff(r.base)
}

func (r *ReverseIterator[T]) Equal(other *ReverseIterator[T]) bool {
	return r.base.Equal(&other.base)
}

func (r *ReverseIterator[T]) NotEqual(other *ReverseIterator[T]) bool {
	return !r.Equal(other)
}

func (r *ReverseIterator[T]) Less(other *ReverseIterator[T]) bool {
	return r.base.Greater(&other.base)
}

func (r *ReverseIterator[T]) Greater(other *ReverseIterator[T]) bool {
	return r.base.Less(&other.base)
}

func (r *ReverseIterator[T]) LessOrEqual(other *ReverseIterator[T]) bool {
	return !r.Greater(other)
}

func (r *ReverseIterator[T]) GreaterOrEqual(other *ReverseIterator[T]) bool {
	return !r.Less(other)
}
