package codec

// frame json 编码时的消息体
type frame struct {
	Value []byte `json:"value"`
}

const (
	// 采用 protobuf 编码的话，前 2 个字节为 body 长度，后面则为采用 protobuf 编码后的 body
	frameLength = 2
	maxFrame    = 1<<16 - 1
)

func bytesToUint16(bytes []byte) uint16 {
	// 第一个字节表示高位，第二个字节表示低位
	return uint16(bytes[0])<<8 | uint16(bytes[1])
}

func uint16ToBytes(num uint16) []byte {
	return []byte{byte(num >> 8), byte(num & 0xff)}
}
