package view

import (
	"errors"
	"math"
	"testing"
)

func TestIteratorDefault(t *testing.T) {
	var i Iterator[byte]
	if i.Bound() || i.Pos() != Npos {
		t.Fatalf("zero iterator should be unbound")
	}

	var j Iterator[byte]
	if !i.Equal(&j) {
		t.Errorf("unbound iterators compare equal")
	}

	// 未绑定时移动不生效
	i.Inc()
	i.Advance(3)
	if i.Pos() != Npos {
		t.Errorf("unbound iterator should not move")
	}

	defer func() {
		if r := recover(); r == nil || !errors.Is(r.(error), ErrUnbound) {
			t.Errorf("expect ErrUnbound panic, got %v", r)
		}
	}()
	i.Value()
}

func TestIteratorAssignment(t *testing.T) {
	v := of(hello)
	j := v.Begin()
	var i Iterator[byte]
	i = j
	if !i.Equal(&j) || i.Value() != 'H' {
		t.Errorf("assigned iterator should equal the source")
	}
	if i.View().Len() != 11 {
		t.Errorf("accept 11, but %d", i.View().Len())
	}
}

func TestIteratorEqual(t *testing.T) {
	v := of(hello)
	i := v.Begin()
	j := v.Begin()
	if !i.Equal(&j) || i.NotEqual(&j) {
		t.Errorf("i == j")
	}

	j.Inc()
	if i.Equal(&j) {
		t.Errorf("i != j")
	}

	w := of(hello)
	k := w.Begin()
	if i.Equal(&k) {
		t.Errorf("iterators of different buffers are not equal")
	}
}

func TestIteratorDereference(t *testing.T) {
	v := of(hello)
	i := v.Begin()
	if i.Value() != 'H' {
		t.Errorf("accept H, but %c", i.Value())
	}
	for n, c := range []byte("Hello") {
		if i.At(n) != c {
			t.Errorf("i[%d] = %c, want %c", n, i.At(n), c)
		}
	}

	end := v.End()
	defer func() {
		if r := recover(); r == nil || !errors.Is(r.(error), ErrOutOfRange) {
			t.Errorf("dereferencing End should panic with ErrOutOfRange, got %v", r)
		}
	}()
	end.Value()
}

func TestIteratorIncrement(t *testing.T) {
	v := of("Hello")
	i := v.Begin()
	for _, c := range []byte("Hello") {
		if i.Value() != c {
			t.Fatalf("accept %c, but %c", c, i.Value())
		}
		i.Inc()
	}
	end := v.End()
	if !i.Equal(&end) {
		t.Fatalf("should reach End")
	}
	i.Inc()
	if !i.Equal(&end) || i.Pos() != 5 {
		t.Errorf("Inc should stop at End, pos %d", i.Pos())
	}

	j := v.Begin()
	old := j.PostInc()
	if old.Value() != 'H' || j.Value() != 'e' {
		t.Errorf("PostInc should return the previous position")
	}
}

func TestIteratorDecrement(t *testing.T) {
	v := of("Hello")
	i := v.End()
	for _, c := range []byte("olleH") {
		i.Dec()
		if i.Value() != c {
			t.Fatalf("accept %c, but %c", c, i.Value())
		}
	}
	i.Dec()
	if i.Value() != 'H' || i.Pos() != 0 {
		t.Errorf("Dec should stop at Begin")
	}

	j := v.End()
	j.Dec()
	old := j.PostDec()
	if old.Value() != 'o' || j.Value() != 'l' {
		t.Errorf("PostDec should return the previous position")
	}
}

func TestIteratorAdvanceRetreat(t *testing.T) {
	v := of("Hello")
	i := v.Begin()
	i.Advance(1)
	if i.Value() != 'e' {
		t.Errorf("accept e, but %c", i.Value())
	}
	i.Advance(3)
	if i.Value() != 'o' {
		t.Errorf("accept o, but %c", i.Value())
	}
	i.Advance(1)
	if i.Pos() != 5 {
		t.Errorf("accept 5, but %d", i.Pos())
	}
	i.Advance(5)
	if i.Pos() != 5 {
		t.Errorf("Advance should clamp at End, got %d", i.Pos())
	}

	i.Retreat(1)
	if i.Value() != 'o' {
		t.Errorf("accept o, but %c", i.Value())
	}
	i.Retreat(2)
	if i.Value() != 'l' {
		t.Errorf("accept l, but %c", i.Value())
	}
	i.Retreat(2)
	if i.Value() != 'H' {
		t.Errorf("accept H, but %c", i.Value())
	}
	i.Retreat(1)
	if i.Pos() != 0 {
		t.Errorf("Retreat should clamp at Begin, got %d", i.Pos())
	}

	i.Advance(-1)
	if i.Pos() != 0 {
		t.Errorf("negative Advance should retreat and clamp, got %d", i.Pos())
	}
	if k := v.Begin().Add(3); k.Value() != 'l' {
		t.Errorf("accept l, but %c", k.Value())
	}
	if k := v.End().Sub(10); k.Pos() != 0 {
		t.Errorf("Sub should clamp at 0, got %d", k.Pos())
	}
}

func TestIteratorExtremeOffsets(t *testing.T) {
	v := of("abc")

	i := v.End()
	i.Advance(math.MinInt)
	if i.Pos() != 0 {
		t.Errorf("Advance(MinInt) should clamp at Begin, got %d", i.Pos())
	}
	i.Retreat(math.MinInt)
	if i.Pos() != 3 {
		t.Errorf("Retreat(MinInt) should clamp at End, got %d", i.Pos())
	}
	i.Retreat(math.MaxInt)
	if i.Pos() != 0 {
		t.Errorf("Retreat(MaxInt) should clamp at Begin, got %d", i.Pos())
	}
	i.Advance(math.MaxInt)
	if i.Pos() != 3 {
		t.Errorf("Advance(MaxInt) should clamp at End, got %d", i.Pos())
	}
	if k := v.Begin().Sub(math.MinInt); k.Pos() != 3 {
		t.Errorf("Sub(MinInt) should clamp at End, got %d", k.Pos())
	}
	if k := v.End().Add(-math.MaxInt); k.Pos() != 0 {
		t.Errorf("Add(-MaxInt) should clamp at Begin, got %d", k.Pos())
	}

	r := v.RBegin()
	r.Retreat(math.MinInt)
	if r.Base().Pos() != 0 {
		t.Errorf("reverse Retreat(MinInt) should clamp at REnd, got %d", r.Base().Pos())
	}
	r.Advance(math.MinInt)
	if r.Base().Pos() != 3 {
		t.Errorf("reverse Advance(MinInt) should clamp at RBegin, got %d", r.Base().Pos())
	}

	b := v.Begin()
	for _, n := range []int{math.MaxInt, math.MinInt, 3, -1} {
		expectRangePanic(t, "iterator", func() {
			b.At(n)
		})
	}
}

func TestIteratorOrdering(t *testing.T) {
	v := of(hello)
	i := v.Begin()
	j := v.Begin()
	begin, end := v.Begin(), v.End()

	if i.Less(&j) {
		t.Errorf("!(i < j)")
	}
	j.Inc()
	if !i.Less(&j) || !i.Less(&end) || !j.Less(&end) {
		t.Errorf("i < j < end")
	}
	if begin.Less(&begin) || !begin.Less(&end) || end.Less(&end) {
		t.Errorf("unexpected Less on begin/end")
	}

	i = v.Begin()
	j = v.Begin()
	if i.Greater(&j) {
		t.Errorf("!(i > j)")
	}
	i.Inc()
	if !i.Greater(&j) || i.Greater(&end) || j.Greater(&end) {
		t.Errorf("unexpected Greater")
	}
	if begin.Greater(&begin) || begin.Greater(&end) || end.Greater(&end) {
		t.Errorf("unexpected Greater on begin/end")
	}
	if !begin.LessOrEqual(&end) || !end.GreaterOrEqual(&begin) || !begin.LessOrEqual(&begin) {
		t.Errorf("unexpected LessOrEqual/GreaterOrEqual")
	}
}

func TestIteratorCrossView(t *testing.T) {
	a := of(hello)
	b := of(hello)
	i := a.Begin()
	j := b.End()

	if i.Equal(&j) || i.Less(&j) || i.Greater(&j) || j.Less(&i) || j.Greater(&i) {
		t.Errorf("iterators of different views are neither equal nor ordered")
	}
	// <= 和 >= 是 > 和 < 的取反
	if !i.LessOrEqual(&j) || !i.GreaterOrEqual(&j) {
		t.Errorf("LessOrEqual and GreaterOrEqual negate Greater and Less")
	}
}

func TestIteratorViewIdentity(t *testing.T) {
	a := of(hello)
	d := a
	i := a.Begin()
	j := d.End()
	if i.Less(&j) || j.Greater(&i) || i.Equal(&j) {
		t.Errorf("a copy of a view is a different view")
	}

	// 迭代器看得到绑定视图之后的收缩
	k := a.Begin()
	a.RemoveSuffix(6)
	if k.View().Len() != 5 {
		t.Errorf("iterator should see the shrunk view, len %d", k.View().Len())
	}
	end := a.End()
	end.Dec()
	if end.Pos() != 4 || end.Value() != 'o' {
		t.Errorf("accept o at 4, but %c at %d", end.Value(), end.Pos())
	}
	if d.Len() != len(hello) {
		t.Errorf("the copy keeps its own window")
	}
}

func TestIteratorDiff(t *testing.T) {
	v := of(hello)
	if d := v.End().Diff(v.Begin()); d != 11 {
		t.Errorf("accept 11, but %d", d)
	}
	if d := v.Begin().Diff(v.End()); d != -11 {
		t.Errorf("accept -11, but %d", d)
	}

	i := v.Begin()
	j := v.Begin().Add(3)
	if j.Diff(i) != 3 || i.Diff(j) != -3 {
		t.Errorf("accept 3 and -3, but %d %d", j.Diff(i), i.Diff(j))
	}
}

func TestReverseIterator(t *testing.T) {
	s := hello
	v := of(s)

	n := 0
	rend := v.REnd()
	for r := v.RBegin(); r.NotEqual(&rend); r.Inc() {
		if want := s[len(s)-1-n]; r.Value() != want {
			t.Fatalf("accept %c, but %c", want, r.Value())
		}
		n++
	}
	if n != len(s) {
		t.Errorf("accept %d steps, but %d", len(s), n)
	}

	r := v.RBegin()
	if r.At(1) != 'l' || r.Add(2).Value() != 'r' {
		t.Errorf("unexpected reverse offset access")
	}
	rb := v.RBegin()
	if rend.Diff(rb) != 11 || !rb.Less(&rend) || rend.Greater(&rend) {
		t.Errorf("unexpected reverse ordering")
	}
	r.Inc()
	r.Dec()
	if !r.Equal(&rb) || r.Base().Pos() != v.Len() {
		t.Errorf("Inc then Dec should come back to RBegin")
	}
	back := v.REnd()
	back.Retreat(1)
	if back.Value() != 'H' || back.Sub(0).Value() != 'H' {
		t.Errorf("accept H, but %c", back.Value())
	}
	back.Advance(1)
	if !back.Equal(&rend) {
		t.Errorf("should be back at REnd")
	}

	p := v.RBegin()
	old := p.PostInc()
	if old.Value() != 'd' || p.Value() != 'l' {
		t.Errorf("reverse PostInc should return the previous position")
	}
	old = p.PostDec()
	if old.Value() != 'l' || p.Value() != 'd' {
		t.Errorf("reverse PostDec should return the previous position")
	}
	if !rb.LessOrEqual(&rend) || rb.GreaterOrEqual(&rend) || !rend.GreaterOrEqual(&rb) || !rb.LessOrEqual(&rb) {
		t.Errorf("unexpected reverse LessOrEqual/GreaterOrEqual")
	}
}

func TestViewSequences(t *testing.T) {
	v := of("abc")
	var got []byte
	for i, c := range v.All() {
		if v.Index(i) != c {
			t.Errorf("All yields wrong index %d", i)
		}
		got = append(got, c)
	}
	if string(got) != "abc" {
		t.Errorf("accept abc, but %q", got)
	}

	got = got[:0]
	for _, c := range v.Backward() {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	if string(got) != "cb" {
		t.Errorf("accept cb, but %q", got)
	}
}
