package ringbuffer

import (
	"sync"
	"testing"
)

func TestRingBuffer_ConcurrentReadWrite(t *testing.T) {
	// Use a large number of samples to ensure goroutines have to wait for
	// each other, forcing the wait conditions in Read and Write to be
	// exercised.
	const totalSamples = 200000
	const bufferSize = 8192
	const writeChunkSize = 256
	const readChunkSize = 192 // non-aligned vs writeChunkSize on purpose

	rb := New[byte](bufferSize)

	sourceData := make([]byte, totalSamples)
	for i := range sourceData {
		sourceData[i] = byte(i)
	}

	destData := make([]byte, 0, totalSamples)
	var destMutex sync.Mutex

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		written := 0
		for written < totalSamples {
			end := written + writeChunkSize
			if end > totalSamples {
				end = totalSamples
			}
			rb.Write(sourceData[written:end])
			written = end
		}
		rb.Close()
	}()

	go func() {
		defer wg.Done()
		read := 0
		for read < totalSamples {
			chunk := rb.Read(readChunkSize)
			if chunk == nil {
				break
			}
			destMutex.Lock()
			destData = append(destData, chunk...)
			destMutex.Unlock()
			read += len(chunk)
		}
	}()

	wg.Wait()

	if len(destData) != totalSamples {
		t.Fatalf("data loss: expected %d samples, got %d", totalSamples, len(destData))
	}
	for i := range sourceData {
		if sourceData[i] != destData[i] {
			t.Fatalf("data corruption at index %d: expected %d, got %d", i, sourceData[i], destData[i])
		}
	}
}

func TestRingBuffer_ReadAfterCloseDrainsRemainder(t *testing.T) {
	rb := New[int16](16)
	rb.Write([]int16{1, 2, 3})
	rb.Close()

	got := rb.Read(10)
	if len(got) != 3 {
		t.Fatalf("expected 3 leftover samples, got %d", len(got))
	}

	if rb.Read(1) != nil {
		t.Fatal("expected nil after buffer is closed and drained")
	}
}

func TestRingBuffer_WriteAfterClosePanics(t *testing.T) {
	rb := New[byte](4)
	rb.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when writing to a closed ring buffer")
		}
	}()
	rb.Write([]byte{1})
}
