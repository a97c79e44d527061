package codec

import (
	"bufio"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/ayanghuang/stringview/view"
)

type ProtobufCodec struct {
	readBuf *bufio.Reader
	// 先写入 buf，满了自动写入 conn，或调用 Flush 主动写入
	writeBuf *bufio.Writer
}

func NewProtobufCodec(conn io.ReadWriter) Codec {
	return &ProtobufCodec{
		readBuf:  bufio.NewReader(conn),
		writeBuf: bufio.NewWriter(conn),
	}
}

// readFrameLen 读 2 个 Byte 的长度
func (c *ProtobufCodec) readFrameLen() (uint16, error) {
	lenBytes := make([]byte, frameLength)
	if _, err := io.ReadFull(c.readBuf, lenBytes); err != nil {
		return 0, err
	}
	return bytesToUint16(lenBytes), nil
}

func (c *ProtobufCodec) ReadView() (view.View[byte], error) {
	length, err := c.readFrameLen()
	if err != nil {
		return view.View[byte]{}, err
	}

	data := make([]byte, length)
	if _, err = io.ReadFull(c.readBuf, data); err != nil {
		return view.View[byte]{}, fmt.Errorf("codec: read body: %w", err)
	}

	message := new(wrapperspb.BytesValue)
	if err = proto.Unmarshal(data, message); err != nil {
		return view.View[byte]{}, fmt.Errorf("codec: decode protobuf: %w", err)
	}
	return view.New(message.GetValue()), nil
}

func (c *ProtobufCodec) WriteView(v view.View[byte]) error {
	bytes, err := proto.Marshal(wrapperspb.Bytes(v.Data()))
	if err != nil {
		return fmt.Errorf("codec: encode protobuf: %w", err)
	}
	// 长度只有 16 bit
	if len(bytes) > maxFrame {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(bytes))
	}

	if _, err = c.writeBuf.Write(uint16ToBytes(uint16(len(bytes)))); err != nil {
		return err
	}
	if _, err = c.writeBuf.Write(bytes); err != nil {
		return err
	}
	return c.writeBuf.Flush()
}
