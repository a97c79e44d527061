// Package codec 把字节视图写入流或从流中读出，是视图零拷贝约定之外显式的序列化入口
package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/ayanghuang/stringview/view"
)

type NewCodecFunc func(io.ReadWriter) Codec

const (
	ProtobufType = "protobuf"
	JsonType     = "json"
)

var (
	ErrFrameTooLarge = errors.New("codec: frame too large")
	ErrUnknownCodec  = errors.New("codec: unknown codec type")
)

var codecMap = map[string]NewCodecFunc{
	ProtobufType: NewProtobufCodec,
	JsonType:     NewJsonCodec,
}

// Codec 每次写入或读出一个视图，读出的视图引用新分配的缓冲区
type Codec interface {
	WriteView(v view.View[byte]) error
	ReadView() (view.View[byte], error)
}

// New 按名称选择编码格式
func New(codecType string, rw io.ReadWriter) (Codec, error) {
	fn, ok := codecMap[codecType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecType)
	}
	return fn(rw), nil
}
