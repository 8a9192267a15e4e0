// Package audio 解码 Sun/NeXT 音频（.au）文件
//
// 输出统一为 Ebitengine 音频播放器需要的格式：
// 16 位有符号、小端、双声道交错 PCM。单声道输入会复制到左右声道。
// 采样率保持原值，由调用方按需重采样。
package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// 文件头固定部分的长度与字段
const (
	headerSize = 24

	magic = 0x2e736e64 // ".snd"

	// EncodingMuLaw 8 位 μ-law
	EncodingMuLaw = 1
	// EncodingPCM16 16 位大端线性 PCM
	EncodingPCM16 = 3

	// unknownDataSize 头部未给出数据长度时的取值，表示读到文件末尾
	unknownDataSize = 0xffffffff
)

// ErrNotAU 输入不是 .au 文件
var ErrNotAU = errors.New("not a Sun audio file")

// Header .au 文件头
type Header struct {
	DataOffset uint32
	DataSize   uint32
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

// Stream 解码后的双声道 16 位 PCM 流，实现 io.ReadSeeker
type Stream struct {
	header Header
	pcm    []byte
	pos    int64
}

// mulawTable μ-law 字节到 16 位 PCM 的查找表
var mulawTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// Decode 读取并解码整个 .au 文件
func Decode(r io.Reader) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read au data: %w", err)
	}
	if len(data) < headerSize || binary.BigEndian.Uint32(data) != magic {
		return nil, ErrNotAU
	}

	h := Header{
		DataOffset: binary.BigEndian.Uint32(data[4:]),
		DataSize:   binary.BigEndian.Uint32(data[8:]),
		Encoding:   binary.BigEndian.Uint32(data[12:]),
		SampleRate: binary.BigEndian.Uint32(data[16:]),
		Channels:   binary.BigEndian.Uint32(data[20:]),
	}
	if h.Channels != 1 && h.Channels != 2 {
		return nil, fmt.Errorf("unsupported au channel count %d", h.Channels)
	}
	if h.SampleRate == 0 {
		return nil, fmt.Errorf("invalid au sample rate 0")
	}
	if h.DataOffset < headerSize || int(h.DataOffset) > len(data) {
		return nil, fmt.Errorf("invalid au data offset %d (file size %d)", h.DataOffset, len(data))
	}

	body := data[h.DataOffset:]
	if h.DataSize != unknownDataSize && int64(h.DataSize) < int64(len(body)) {
		body = body[:h.DataSize]
	}

	var samples []int16
	switch h.Encoding {
	case EncodingMuLaw:
		samples = make([]int16, len(body))
		for i, b := range body {
			samples[i] = mulawTable[b]
		}
	case EncodingPCM16:
		samples = make([]int16, len(body)/2)
		for i := range samples {
			samples[i] = int16(binary.BigEndian.Uint16(body[i*2:]))
		}
	default:
		return nil, fmt.Errorf("unsupported au encoding %d", h.Encoding)
	}

	return &Stream{header: h, pcm: interleaveStereo(samples, int(h.Channels))}, nil
}

// interleaveStereo 转为小端双声道字节流
func interleaveStereo(samples []int16, channels int) []byte {
	frames := len(samples) / channels
	out := make([]byte, frames*4)
	for f := 0; f < frames; f++ {
		left := samples[f*channels]
		right := left
		if channels == 2 {
			right = samples[f*channels+1]
		}
		binary.LittleEndian.PutUint16(out[f*4:], uint16(left))
		binary.LittleEndian.PutUint16(out[f*4+2:], uint16(right))
	}
	return out
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.pos >= int64(len(s.pcm)) {
		return 0, io.EOF
	}
	n := copy(p, s.pcm[s.pos:])
	s.pos += int64(n)
	return n, nil
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = s.pos + offset
	case io.SeekEnd:
		pos = int64(len(s.pcm)) + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative seek position %d", pos)
	}
	s.pos = pos
	return pos, nil
}

// Length 解码后的字节数
func (s *Stream) Length() int64 {
	return int64(len(s.pcm))
}

// SampleRate 原始采样率
func (s *Stream) SampleRate() int {
	return int(s.header.SampleRate)
}

// Header 返回文件头
func (s *Stream) Header() Header {
	return s.header
}
