package ads1119

import "sync"

var (
	twoBytes = &sync.Pool{New: func() interface{} { return make([]byte, 2) }}
	oneByte  = &sync.Pool{New: func() interface{} { return make([]byte, 1) }}
)

func get2Bytes() []byte {
	return twoBytes.Get().([]byte)
}

func put2Bytes(b []byte) {
	b[0], b[1] = 0, 0
	twoBytes.Put(b)
}

func get1Byte() []byte {
	return oneByte.Get().([]byte)
}

func put1Byte(b []byte) {
	b[0] = 0
	oneByte.Put(b)
}
