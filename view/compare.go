package view

// Compare 三路字典序比较：逐单元比较公共前缀，前缀相同时较短者更小。
// 同一窗口（首地址和长度都相同）直接返回 0。
func (v View[T]) Compare(other View[T]) int {
	if v.same(other) {
		return 0
	}

	n := len(v.data)
	if len(other.data) < n {
		n = len(other.data)
	}
	for i := 0; i < n; i++ {
		switch {
		case v.data[i] < other.data[i]:
			return -1
		case v.data[i] > other.data[i]:
			return +1
		}
	}

	switch {
	case len(v.data) < len(other.data):
		return -1
	case len(v.data) > len(other.data):
		return +1
	}
	return 0
}

// CompareRange 等价于 v.Substr(pos1, count1).Compare(other)
func (v View[T]) CompareRange(pos1, count1 int, other View[T]) int {
	return v.Substr(pos1, count1).Compare(other)
}

// CompareRanges 等价于 v.Substr(pos1, count1).Compare(other.Substr(pos2, count2))
func (v View[T]) CompareRanges(pos1, count1 int, other View[T], pos2, count2 int) int {
	return v.Substr(pos1, count1).Compare(other.Substr(pos2, count2))
}

// CompareTerminated 与以零单元结尾的缓冲区比较
func (v View[T]) CompareTerminated(buf []T) int {
	return v.Compare(FromTerminated(buf))
}

func (v View[T]) Equal(other View[T]) bool {
	return v.Compare(other) == 0
}

func (v View[T]) NotEqual(other View[T]) bool {
	return v.Compare(other) != 0
}

func (v View[T]) Less(other View[T]) bool {
	return v.Compare(other) < 0
}

func (v View[T]) Greater(other View[T]) bool {
	return v.Compare(other) > 0
}

func (v View[T]) LessOrEqual(other View[T]) bool {
	return !v.Greater(other)
}

func (v View[T]) GreaterOrEqual(other View[T]) bool {
	return !v.Less(other)
}
