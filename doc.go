// SPDX-License-Identifier: EPL-2.0

// Package sndfile is a pluggable audio-file I/O layer.
//
// Independent codec implementations, one per on-disk audio format, register
// themselves in a Registry and are driven uniformly through a File: detect,
// open, parse the header, stream samples in or out, and close. The package
// centralizes endianness handling (byteorder), positioned file I/O (fileio)
// and the numeric error taxonomy shared by all formats.
//
// # Supported Formats
//
// Codec plugins live under formats/:
//   - WAV/RIFF (read and write, including big-endian RIFX reading) via formats/wav
//   - AIFF (read and write) via formats/aiff
//   - NeXT/Sun .snd/.au (read and write) via formats/next
//   - MP3 (read only) via formats/mp3
//   - Ogg Vorbis (read only) via formats/vorbis
//
// # Quick Start
//
// Register the codecs you need once at startup, then open files through the
// registry:
//
//	reg := sndfile.NewRegistry()
//	reg.Register(wav.New())
//	reg.Register(aiff.New())
//	reg.Register(next.New())
//
//	f, err := sndfile.Open(reg, "drums.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer f.Close()
//
//	buf := make([]byte, 4096)
//	for {
//	    n, err := f.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    // n bytes of interleaved PCM in buf, a whole number of frames
//	}
//
// # Writing Files
//
// Writing drives the same lifecycle explicitly. When the final length is
// unknown up front, write a header with a zero frame-count hint and fix it
// up afterwards:
//
//	f := sndfile.New()
//	f.SampleRate = 44100
//	f.Channels = 2
//	f.BytesPerSample = 2
//	f.BytesPerFrame = 4
//	f.BigEndian = codec.Endianness(sndfile.EndianUnspecified) == sndfile.EndianBig
//
//	f.Open(handle, codec)
//	f.WriteHeader(0)
//	f.WriteSamples(pcm)
//	f.UpdateHeader(frames)
//	f.Close()
//
// # Format Detection
//
// Resolution walks codecs in registration order, so register formats with
// restrictive header checks before generic fallbacks. DetectFormat answers
// with the first codec whose header predicate matches, ErrInsufficientData
// when the sniff buffer is too short to trust a no-match, or
// ErrUnknownFormat when nothing claims the bytes.
//
// # Error Codes
//
// Besides ordinary Go errors, the package preserves a numeric error
// contract for hosts that speak it: generic codes occupy GenericErrOffset
// (-1000) and below, codec-specific descriptive codes occupy -1 down to
// -999, and positive codes are system error numbers. Strerror describes any
// code, delegating codec-range codes to the resolved codec; Code recovers
// the numeric code from an error chain.
//
// # Concurrency
//
// The layer introduces no goroutines and no locks. A host typically drives
// each open File from one dedicated worker goroutine, kept off the realtime
// audio path so that path never blocks on disk I/O. The Registry is the
// only state shared across Files: populate it during initialization, then
// treat it as read-only; lookups are then safe from any goroutine. A single
// File must be serialized by its caller.
//
// # Writing A Codec
//
// A format implements the Codec interface; formats whose sample body is
// plain interleaved PCM embed RawPCM and implement only header handling.
// Optional capabilities are separate interfaces: MetaReader and MetaWriter
// for header metadata, ErrorStringer for descriptive error codes. See
// formats/next for a compact complete example.
package sndfile
