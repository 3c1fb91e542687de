// This file is part of mpltweaker.
//
// mpltweaker is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mpltweaker is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mpltweaker.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
)

// CompareWriter is an implementation of io.Writer. It should be used to
// capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte
}

// Write implements io.Writer
func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
}

// Compare buffered output with predefined/example string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it.
type RingWriter struct {
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, size),
	}, nil
}

func (r *RingWriter) String() string {
	if r.wrapped {
		return string(r.buffer[r.cursor:]) + string(r.buffer[:r.cursor])
	}
	return string(r.buffer[:r.cursor])
}

// Reset empties the ring writer's buffer
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.wrapped = false
}

// Write implements io.Writer
func (r *RingWriter) Write(p []byte) (n int, err error) {
	n = len(p)

	// only the tail of an over-long write can be kept
	if len(p) >= len(r.buffer) {
		copy(r.buffer, p[len(p)-len(r.buffer):])
		r.cursor = 0
		r.wrapped = true
		return n, nil
	}

	c := copy(r.buffer[r.cursor:], p)
	if c < len(p) {
		copy(r.buffer, p[c:])
		r.wrapped = true
	}
	r.cursor = (r.cursor + len(p)) % len(r.buffer)
	if r.cursor == 0 && len(p) > 0 {
		r.wrapped = true
	}

	return n, nil
}

// CappedWriter is an implementation of io.Writer that stops buffering once a
// predefined size is reached.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buffer)
}

// Reset empties the capped writer's buffer
func (c *CappedWriter) Reset() {
	c.buffer = c.buffer[:0]
}

// Write implements io.Writer. Bytes beyond the capacity of the writer are
// silently dropped.
func (c *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := c.size - len(c.buffer)
	if remaining <= 0 {
		return 0, nil
	}
	if len(p) > remaining {
		p = p[:remaining]
	}
	c.buffer = append(c.buffer, p...)
	return len(p), nil
}
