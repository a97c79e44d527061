package view

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Hash 对单元的原始字节做 xxhash，内容相同的视图哈希相同，可以作为 map 的键使用。
// 结果依赖单元宽度和机器字节序，不能用作持久化哈希。
func (v View[T]) Hash() uint64 {
	return xxhash.Sum64(v.rawBytes())
}

func (v View[T]) rawBytes() []byte {
	if len(v.data) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(v.base()), len(v.data)*int(unsafe.Sizeof(zero)))
}
