// Package stringview 是 string_view 的 Go 实现：对连续字符单元的只读、非拥有视图。
//
// 泛型实现在 view 包中，这里提供常用字符宽度的实例化和从 Go 字符串零拷贝构造的入口。
package stringview

import (
	"unsafe"

	"github.com/ayanghuang/stringview/view"
)

type (
	StringView = view.View[byte]
	U16View    = view.View[uint16]
	U32View    = view.View[uint32]
	RuneView   = view.View[rune]
)

const Npos = view.Npos

// Of 直接引用 s 的内存，不拷贝。Go 字符串不可变，不能通过 Data() 修改返回视图的内容。
func Of(s string) StringView {
	if len(s) == 0 {
		return StringView{}
	}
	return view.New(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// FromBytes 引用 b 的内存，b 之后的修改对视图可见
func FromBytes(b []byte) StringView {
	return view.New(b)
}

// FromTerminated 以第一个 0 字节为结尾
func FromTerminated(b []byte) StringView {
	return view.FromTerminated(b)
}

func ToString(v StringView) string {
	return view.ToString(v)
}
