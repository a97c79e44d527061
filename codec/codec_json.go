package codec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ayanghuang/stringview/view"
)

type JsonCodec struct {
	// 不需要 readBuf，json.Decoder 内部自带缓冲
	writeBuf *bufio.Writer
	dec      *json.Decoder
	enc      *json.Encoder
}

func NewJsonCodec(conn io.ReadWriter) Codec {
	buf := bufio.NewWriter(conn)
	return &JsonCodec{
		writeBuf: buf,
		dec:      json.NewDecoder(conn),
		// 编码后写入 bufio，再调用 Flush 写入 conn
		enc: json.NewEncoder(buf),
	}
}

func (codec *JsonCodec) WriteView(v view.View[byte]) error {
	if err := codec.enc.Encode(frame{Value: v.Data()}); err != nil {
		return fmt.Errorf("codec: encode json: %w", err)
	}
	return codec.writeBuf.Flush()
}

func (codec *JsonCodec) ReadView() (view.View[byte], error) {
	var body frame
	if err := codec.dec.Decode(&body); err != nil {
		return view.View[byte]{}, fmt.Errorf("codec: decode json: %w", err)
	}
	return view.New(body.Value), nil
}
