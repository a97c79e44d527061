package view

// 所有查找都不会失败：找不到返回 Npos。pos 为负时按 Npos 处理。
//
// 正向查找从 pos 开始，pos >= Len 一定返回 Npos。
// 反向查找（RFind、FindLastOf、FindLastNotOf）在 pos < Len 时只检查 pos 之前的单元，
// 即窗口 [0, pos)；pos >= Len（包括默认的 Npos）时检查整个视图。

func normalize(pos int) int {
	if pos < 0 {
		return Npos
	}
	return pos
}

// limit 反向查找的右边界（不含）
func (v View[T]) limit(pos int) int {
	pos = normalize(pos)
	if pos >= len(v.data) {
		return len(v.data)
	}
	return pos
}

// Find 查找子串 needle 首次出现的位置。空 needle 匹配 pos 本身。
func (v View[T]) Find(needle View[T], pos int) int {
	pos = normalize(pos)
	n, m := len(v.data), len(needle.data)
	if pos >= n {
		return Npos
	}
	for i := pos; i+m <= n; i++ {
		if v.matchAt(i, needle) {
			return i
		}
	}
	return Npos
}

func (v View[T]) FindUnit(c T, pos int) int {
	pos = normalize(pos)
	for i := pos; i < len(v.data); i++ {
		if v.data[i] == c {
			return i
		}
	}
	return Npos
}

// RFind 查找完整落在 [0, pos) 内的最后一次出现
func (v View[T]) RFind(needle View[T], pos int) int {
	limit, m := v.limit(pos), len(needle.data)
	if m == 0 {
		if limit == 0 {
			return Npos
		}
		return limit
	}
	for i := limit - m; i >= 0; i-- {
		if v.matchAt(i, needle) {
			return i
		}
	}
	return Npos
}

func (v View[T]) RFindUnit(c T, pos int) int {
	return v.RFind(View[T]{data: []T{c}}, pos)
}

// FindFirstOf 查找第一个属于集合 set 的单元，空集合永远不匹配
func (v View[T]) FindFirstOf(set View[T], pos int) int {
	return v.scanForward(pos, set, true)
}

func (v View[T]) FindFirstOfUnit(c T, pos int) int {
	return v.FindUnit(c, pos)
}

func (v View[T]) FindLastOf(set View[T], pos int) int {
	return v.scanBackward(pos, set, true)
}

func (v View[T]) FindLastOfUnit(c T, pos int) int {
	return v.FindLastOf(View[T]{data: []T{c}}, pos)
}

// FindFirstNotOf 查找第一个不属于集合 set 的单元
func (v View[T]) FindFirstNotOf(set View[T], pos int) int {
	return v.scanForward(pos, set, false)
}

func (v View[T]) FindFirstNotOfUnit(c T, pos int) int {
	return v.FindFirstNotOf(View[T]{data: []T{c}}, pos)
}

func (v View[T]) FindLastNotOf(set View[T], pos int) int {
	return v.scanBackward(pos, set, false)
}

func (v View[T]) FindLastNotOfUnit(c T, pos int) int {
	return v.FindLastNotOf(View[T]{data: []T{c}}, pos)
}

func (v View[T]) matchAt(i int, needle View[T]) bool {
	for j, c := range needle.data {
		if v.data[i+j] != c {
			return false
		}
	}
	return true
}

func (v View[T]) contains(c T) bool {
	for _, x := range v.data {
		if x == c {
			return true
		}
	}
	return false
}

// scanForward want 为 true 找集合内的单元，为 false 找集合外的单元
func (v View[T]) scanForward(pos int, set View[T], want bool) int {
	pos = normalize(pos)
	for i := pos; i < len(v.data); i++ {
		if set.contains(v.data[i]) == want {
			return i
		}
	}
	return Npos
}

func (v View[T]) scanBackward(pos int, set View[T], want bool) int {
	for i := v.limit(pos) - 1; i >= 0; i-- {
		if set.contains(v.data[i]) == want {
			return i
		}
	}
	return Npos
}
