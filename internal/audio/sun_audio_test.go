package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// buildAU 构造一个 .au 文件
func buildAU(encoding, rate, channels, dataSize uint32, body []byte) []byte {
	buf := make([]byte, headerSize)
	binary.BigEndian.PutUint32(buf[0:], magic)
	binary.BigEndian.PutUint32(buf[4:], headerSize)
	binary.BigEndian.PutUint32(buf[8:], dataSize)
	binary.BigEndian.PutUint32(buf[12:], encoding)
	binary.BigEndian.PutUint32(buf[16:], rate)
	binary.BigEndian.PutUint32(buf[20:], channels)
	return append(buf, body...)
}

// TestDecode_MuLawMono 测试 μ-law 单声道解码为双声道
func TestDecode_MuLawMono(t *testing.T) {
	data := buildAU(EncodingMuLaw, 8000, 1, unknownDataSize, []byte{0xFF, 0x00})

	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := []byte{0, 0, 0, 0, 0x84, 0x82, 0x84, 0x82}
	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("PCM = %x, want %x", got, want)
	}
	if s.Length() != int64(len(want)) {
		t.Errorf("Length() = %d, want %d", s.Length(), len(want))
	}
	if s.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", s.SampleRate())
	}
}

// TestDecode_PCM16Stereo 测试 16 位大端双声道转为小端
func TestDecode_PCM16Stereo(t *testing.T) {
	data := buildAU(EncodingPCM16, 22050, 2, 4, []byte{0x01, 0x00, 0xFF, 0xFF, 0x12, 0x34})

	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// 头部声明的长度为 4 字节，多余的数据被忽略
	want := []byte{0x00, 0x01, 0xFF, 0xFF}
	got, _ := io.ReadAll(s)
	if !bytes.Equal(got, want) {
		t.Errorf("PCM = %x, want %x", got, want)
	}
}

// TestDecode_Errors 测试非法输入
func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"太短", []byte{0x2e, 0x73}},
		{"错误的魔数", append([]byte("RIFF"), make([]byte, 40)...)},
		{"不支持的编码", buildAU(2, 8000, 1, unknownDataSize, []byte{1, 2})},
		{"声道数", buildAU(EncodingMuLaw, 8000, 6, unknownDataSize, []byte{1, 2})},
		{"采样率为0", buildAU(EncodingMuLaw, 0, 1, unknownDataSize, []byte{1, 2})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := Decode(bytes.NewReader([]byte("not audio at all, definitely not"))); !errors.Is(err, ErrNotAU) {
		t.Errorf("expected ErrNotAU, got %v", err)
	}
}

// TestStream_Seek 测试重绕与定位
func TestStream_Seek(t *testing.T) {
	s, err := Decode(bytes.NewReader(buildAU(EncodingMuLaw, 8000, 1, unknownDataSize, []byte{0xFF, 0x00})))
	if err != nil {
		t.Fatal(err)
	}
	io.ReadAll(s)

	if pos, err := s.Seek(0, io.SeekStart); err != nil || pos != 0 {
		t.Fatalf("Seek(0, start) = %d, %v", pos, err)
	}
	if pos, _ := s.Seek(-4, io.SeekEnd); pos != 4 {
		t.Errorf("Seek(-4, end) = %d, want 4", pos)
	}
	if _, err := s.Seek(-100, io.SeekCurrent); err == nil {
		t.Error("expected error for negative position")
	}
}
