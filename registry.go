// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// MaxCodecs is the fixed registry capacity. Registration beyond it
	// fails cleanly without touching existing entries.
	MaxCodecs = 8

	// HeaderBufSize is the sniff buffer size, large enough for every
	// format's minimum header size.
	HeaderBufSize = 128
)

// Registry is a bounded, insertion-ordered collection of codecs.
//
// Registration is a single-phase lifecycle: register everything during
// initialization, then treat the registry as read-only. Lookups perform no
// locking and are safe to call concurrently, including from background
// threads, once registration is done.
type Registry struct {
	codecs [MaxCodecs]Codec
	n      int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends c to the registry. Registration order is lookup order:
// formats with more restrictive header detection should register before
// generic fallbacks. Duplicate names are not rejected; the first registered
// wins on name lookups.
func (r *Registry) Register(c Codec) error {
	if c == nil {
		return fmt.Errorf("%w: nil codec", ErrInvalidCodec)
	}
	name := c.Name()
	if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: bad name %q", ErrInvalidCodec, name)
	}
	if min := c.MinHeaderSize(); min <= 0 || min > HeaderBufSize {
		return fmt.Errorf("%w: %s: bad min header size %d", ErrInvalidCodec, name, min)
	}
	if r.n == MaxCodecs {
		return ErrTooManyCodecs
	}
	r.codecs[r.n] = c
	r.n++
	return nil
}

// Len returns the number of registered codecs.
func (r *Registry) Len() int { return r.n }

// Codecs returns the registered codecs in registration order. The returned
// slice must not be appended to.
func (r *Registry) Codecs() []Codec {
	return r.codecs[:r.n:r.n]
}

// DetectFormat sniffs buf against every registered codec in registration
// order and returns the first match. It returns ErrInsufficientData when
// buf is shorter than some codec's minimum header size and nothing else
// matched, and ErrUnknownFormat when no codec claims the bytes.
func (r *Registry) DetectFormat(buf []byte) (Codec, error) {
	short := false
	for _, c := range r.codecs[:r.n] {
		if len(buf) < c.MinHeaderSize() {
			short = true
			continue
		}
		if c.IsHeader(buf) {
			return c, nil
		}
	}
	if short {
		return nil, ErrInsufficientData
	}
	return nil, ErrUnknownFormat
}

// FindByExtension returns the first registered codec claiming the
// filename's extension.
func (r *Registry) FindByExtension(filename string) (Codec, bool) {
	for _, c := range r.codecs[:r.n] {
		if c.HasExtension(filename) {
			return c, true
		}
	}
	return nil, false
}

// FindByName returns the first registered codec with the given name.
func (r *Registry) FindByName(name string) (Codec, bool) {
	for _, c := range r.codecs[:r.n] {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
