// SPDX-License-Identifier: EPL-2.0

package next

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sndfile"
)

// writePCM drives the full write lifecycle: header with a hint, samples,
// then the final header fixup.
func writePCM(t *testing.T, path string, rate, channels, bps int, big bool, hint int64, data []byte) {
	t.Helper()

	handle, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}

	f := sndfile.New()
	f.SampleRate = rate
	f.Channels = channels
	f.BytesPerSample = bps
	f.BytesPerFrame = channels * bps
	f.BigEndian = big

	if err := f.Open(handle, New()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := f.WriteHeader(hint); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	if len(data) > 0 {
		if _, err := f.WriteSamples(data); err != nil {
			t.Fatalf("WriteSamples() error = %v", err)
		}
	}
	frames := int64(len(data)) / int64(channels*bps)
	if err := f.UpdateHeader(frames); err != nil {
		t.Fatalf("UpdateHeader() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func openPCM(t *testing.T, path string) *sndfile.File {
	t.Helper()

	handle, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}

	f := sndfile.New()
	if err := f.Open(handle, New()); err != nil {
		handle.Close()
		t.Fatalf("Open() error = %v", err)
	}
	if err := f.ReadHeader(); err != nil {
		f.Close()
		t.Fatalf("ReadHeader() error = %v", err)
	}
	t.Cleanup(func() { f.Close() })

	return f
}

// buildHeader assembles a raw fixed header block, optionally followed by an
// annotation, for hand-crafted fixture files.
func buildHeader(big bool, onset, length, format, rate, channels uint32, note string) []byte {
	order := binary.ByteOrder(binary.BigEndian)
	magic := ".snd"
	if !big {
		order = binary.LittleEndian
		magic = "dns."
	}

	buf := new(bytes.Buffer)
	buf.WriteString(magic)
	binary.Write(buf, order, onset)
	binary.Write(buf, order, length)
	binary.Write(buf, order, format)
	binary.Write(buf, order, rate)
	binary.Write(buf, order, channels)
	buf.WriteString(note)
	for buf.Len() < int(onset) {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

func TestWriteThenRead_EndToEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		big  bool
	}{
		{"BigEndian", true},
		{"LittleEndian", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.snd")
			data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

			// 4 stereo frames, written with an unknown length hint
			writePCM(t, path, 44100, 2, 2, tt.big, 0, data)

			f := openPCM(t, path)
			if f.SampleRate != 44100 {
				t.Errorf("SampleRate = %d, want 44100", f.SampleRate)
			}
			if f.Channels != 2 {
				t.Errorf("Channels = %d, want 2", f.Channels)
			}
			if f.BytesPerSample != 2 {
				t.Errorf("BytesPerSample = %d, want 2", f.BytesPerSample)
			}
			if f.BigEndian != tt.big {
				t.Errorf("BigEndian = %v, want %v", f.BigEndian, tt.big)
			}
			if f.HeaderSize != canonicalHeader {
				t.Errorf("HeaderSize = %d, want %d", f.HeaderSize, canonicalHeader)
			}
			if f.ByteLimit != 16 {
				t.Errorf("ByteLimit = %d, want 16", f.ByteLimit)
			}

			got := make([]byte, 32)
			n, err := f.ReadSamples(got)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 16 || !bytes.Equal(got[:n], data) {
				t.Errorf("read %d bytes differing from written samples", n)
			}
		})
	}
}

// A header written with a zero frame-count hint and then fixed up must be
// byte-identical to one written with the correct count up front.
func TestUpdateHeader_MatchesDirectWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := make([]byte, 24) // 8 mono 24-bit frames

	twoPhase := filepath.Join(dir, "two-phase.snd")
	writePCM(t, twoPhase, 8000, 1, 3, true, 0, data)

	direct := filepath.Join(dir, "direct.snd")
	writePCM(t, direct, 8000, 1, 3, true, 8, data)

	a, err := os.ReadFile(twoPhase)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(direct)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two-phase header differs from direct header")
	}
}

// A header may declare its data size unknown; the byte limit then comes
// from the file size.
func TestReadHeader_UnknownLength(t *testing.T) {
	t.Parallel()

	head := buildHeader(true, canonicalHeader, unknownLength, formatLinear16, 22050, 1, "")
	pcm := []byte{1, 2, 3, 4, 5, 6}

	path := filepath.Join(t.TempDir(), "pipe.snd")
	if err := os.WriteFile(path, append(head, pcm...), 0o644); err != nil {
		t.Fatal(err)
	}

	f := openPCM(t, path)
	if f.ByteLimit != int64(len(pcm)) {
		t.Errorf("ByteLimit = %d, want %d", f.ByteLimit, len(pcm))
	}

	got := make([]byte, 16)
	n, err := f.ReadSamples(got)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != int64(len(pcm)) || !bytes.Equal(got[:n], pcm) {
		t.Errorf("read %d bytes differing from file data", n)
	}
}

func TestReadMeta_Annotation(t *testing.T) {
	t.Parallel()

	head := buildHeader(true, 40, 8, formatLinear16, 8000, 2, "take 7\x00")
	path := filepath.Join(t.TempDir(), "note.snd")
	if err := os.WriteFile(path, append(head, make([]byte, 8)...), 0o644); err != nil {
		t.Fatal(err)
	}

	f := openPCM(t, path)
	if f.HeaderSize != 40 {
		t.Fatalf("HeaderSize = %d, want 40", f.HeaderSize)
	}

	var sink metaRecorder
	if err := f.ReadMeta(&sink); err != nil {
		t.Fatalf("ReadMeta() error = %v", err)
	}
	if len(sink.msgs) != 1 {
		t.Fatalf("ReadMeta() emitted %d messages, want 1", len(sink.msgs))
	}
	if sink.msgs[0].selector != "comment" || sink.msgs[0].args[0] != "take 7" {
		t.Errorf("ReadMeta() emitted %q %v", sink.msgs[0].selector, sink.msgs[0].args)
	}
}

// A canonical header has no annotation and must emit nothing.
func TestReadMeta_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plain.snd")
	writePCM(t, path, 8000, 1, 2, true, 0, []byte{1, 2})

	f := openPCM(t, path)
	var sink metaRecorder
	if err := f.ReadMeta(&sink); err != nil {
		t.Fatalf("ReadMeta() error = %v", err)
	}
	if len(sink.msgs) != 0 {
		t.Errorf("ReadMeta() emitted %d messages, want 0", len(sink.msgs))
	}
}

type metaRecorder struct {
	msgs []struct {
		selector string
		args     []any
	}
}

func (r *metaRecorder) Send(selector string, args ...any) {
	r.msgs = append(r.msgs, struct {
		selector string
		args     []any
	}{selector, args})
}

func TestSeekToFrame_MatchesSequentialRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seek.snd")
	data := make([]byte, 80) // 20 stereo frames
	for i := range data {
		data[i] = byte(i * 3)
	}
	writePCM(t, path, 22050, 2, 2, true, 0, data)

	sequential := openPCM(t, path)
	all := make([]byte, 80)
	if n, err := sequential.ReadSamples(all); err != nil || n != 80 {
		t.Fatalf("sequential read n = %d, err = %v", n, err)
	}

	seeked := openPCM(t, path)
	if err := seeked.SeekToFrame(7); err != nil {
		t.Fatalf("SeekToFrame() error = %v", err)
	}
	got := make([]byte, 12)
	n, err := seeked.ReadSamples(got)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 12 {
		t.Fatalf("ReadSamples() n = %d, want 12", n)
	}
	if !bytes.Equal(got, all[7*4:7*4+12]) {
		t.Error("seeked read differs from sequential content at frame 7")
	}
}

func TestReadHeader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func() []byte
		wantErr error
	}{
		{
			"NotNext",
			func() []byte { return []byte("FORMxxxxAIFFplenty of padding here") },
			ErrNotNext,
		},
		{
			"BadOnset",
			func() []byte { return buildHeader(true, 12, 0, formatLinear16, 8000, 1, "")[:24] },
			ErrMalformed,
		},
		{
			"UnsupportedFormat",
			func() []byte { return buildHeader(true, canonicalHeader, 0, 27, 8000, 1, "") },
			ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "bad.snd")
			if err := os.WriteFile(path, tt.build(), 0o644); err != nil {
				t.Fatal(err)
			}
			handle, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}

			f := sndfile.New()
			if err := f.Open(handle, New()); err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer f.Close()

			if err := f.ReadHeader(); !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadHeader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsHeader(t *testing.T) {
	t.Parallel()

	c := New()

	tests := []struct {
		name string
		buf  []byte
		want bool
	}{
		{"Native", []byte(".snd\x00\x00\x00\x1c"), true},
		{"Swapped", []byte("dns.\x1c\x00\x00\x00"), true},
		{"Wrong", []byte("RIFF\x24\x00\x00\x00"), false},
		{"Short", []byte(".sn"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := c.IsHeader(tt.buf); got != tt.want {
				t.Errorf("IsHeader(%q) = %v, want %v", tt.buf, got, tt.want)
			}
		})
	}
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	c := New()

	if !c.HasExtension("voice.snd") || !c.HasExtension("VOICE.AU") {
		t.Error("HasExtension() rejected a NeXT/Sun filename")
	}
	if c.HasExtension("voice.wav") {
		t.Error("HasExtension() accepted a wav filename")
	}
	if got := c.AddExtension("take1"); got != "take1.snd" {
		t.Errorf("AddExtension() = %q, want %q", got, "take1.snd")
	}
	if got := c.AddExtension("take1.au"); got != "take1.au" {
		t.Errorf("AddExtension() = %q, want unchanged", got)
	}
}

func TestEndianness(t *testing.T) {
	t.Parallel()

	c := New()
	if got := c.Endianness(sndfile.EndianLittle); got != sndfile.EndianLittle {
		t.Errorf("Endianness(little) = %d, want little", got)
	}
	if got := c.Endianness(sndfile.EndianBig); got != sndfile.EndianBig {
		t.Errorf("Endianness(big) = %d, want big", got)
	}
	if got := c.Endianness(sndfile.EndianUnspecified); got != sndfile.EndianBig {
		t.Errorf("Endianness(unspecified) = %d, want big", got)
	}
}

func TestStrerror(t *testing.T) {
	t.Parallel()

	c := New()
	if got := c.Strerror(errCodeFormat); got != ErrFormat.Msg {
		t.Errorf("Strerror(%d) = %q, want %q", errCodeFormat, got, ErrFormat.Msg)
	}
}
