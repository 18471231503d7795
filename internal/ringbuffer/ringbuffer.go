// Package ringbuffer provides a concurrent-safe producer/consumer ring
// buffer used by the CLI harness to decouple the goroutine reading raw I/Q
// bytes from the goroutine driving the decoder host.
package ringbuffer

import "sync"

// RingBuffer is a blocking ring buffer over any element type, generalized
// from a byte-specific original; cmd/sdrdecode uses it for raw I/Q bytes.
type RingBuffer[T any] struct {
	buf        []T
	size       int
	readIndex  int
	writeIndex int
	closed     bool
	mu         sync.Mutex
	cond       *sync.Cond
}

// New creates a new RingBuffer of the given capacity.
func New[T any](size int) *RingBuffer[T] {
	rb := &RingBuffer[T]{
		buf:  make([]T, size),
		size: size,
	}
	rb.cond = sync.NewCond(&rb.mu)
	return rb
}

// AvailableWrite returns the number of elements that can be written without
// blocking.
func (rb *RingBuffer[T]) AvailableWrite() int {
	if rb.writeIndex >= rb.readIndex {
		return rb.size - (rb.writeIndex - rb.readIndex) - 1
	}
	return rb.readIndex - rb.writeIndex - 1
}

// AvailableRead returns the number of elements available for reading.
func (rb *RingBuffer[T]) AvailableRead() int {
	if rb.writeIndex >= rb.readIndex {
		return rb.writeIndex - rb.readIndex
	}
	return rb.size - rb.readIndex + rb.writeIndex
}

// Close marks the buffer as closed, indicating no more writes will occur.
// It wakes any readers blocked waiting for data.
func (rb *RingBuffer[T]) Close() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.closed = true
	rb.cond.Broadcast()
}

// Write adds data to the buffer, blocking until space is available.
// Writing to a closed buffer panics: it indicates a programming error in
// the caller, which owns the producer/consumer lifecycle.
func (rb *RingBuffer[T]) Write(data []T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.closed {
		panic("write to closed ring buffer")
	}

	n := len(data)
	for i := 0; i < n; {
		for rb.AvailableWrite() == 0 {
			rb.cond.Wait()
		}

		if rb.writeIndex >= rb.readIndex {
			end := rb.size
			if rb.readIndex == 0 {
				end = rb.size - 1
			}
			written := copy(rb.buf[rb.writeIndex:end], data[i:])
			rb.writeIndex = (rb.writeIndex + written) % rb.size
			i += written
		} else {
			written := copy(rb.buf[rb.writeIndex:rb.readIndex-1], data[i:])
			rb.writeIndex += written
			i += written
		}
		rb.cond.Broadcast()
	}
}

// Read retrieves n elements, blocking until n are available. Once the
// buffer is closed it returns whatever remains (up to n) without waiting,
// and nil once the buffer is closed and drained.
func (rb *RingBuffer[T]) Read(n int) []T {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for !rb.closed && rb.AvailableRead() < n {
		rb.cond.Wait()
	}

	if rb.closed && rb.AvailableRead() == 0 {
		return nil
	}

	readSize := n
	if avail := rb.AvailableRead(); avail < readSize {
		readSize = avail
	}
	if readSize == 0 {
		return nil
	}

	data := make([]T, readSize)
	if rb.readIndex+readSize <= rb.size {
		copy(data, rb.buf[rb.readIndex:rb.readIndex+readSize])
	} else {
		part1 := rb.size - rb.readIndex
		copy(data, rb.buf[rb.readIndex:])
		copy(data[part1:], rb.buf[0:readSize-part1])
	}
	rb.readIndex = (rb.readIndex + readSize) % rb.size
	rb.cond.Broadcast()
	return data
}
