package ringbuffer_test

import (
	"errors"
	"fmt"

	"github.com/c360/ringkit/ringbuffer"
)

// ExampleRingBuffer demonstrates basic FIFO cycling
func ExampleRingBuffer() {
	buf, _ := ringbuffer.New[string](4)

	_ = buf.Push("alpha")
	_ = buf.Push("beta")
	_ = buf.Push("gamma")

	fmt.Printf("Buffered: %d of %d\n", buf.Len(), buf.Capacity())

	for !buf.IsEmpty() {
		value, _ := buf.Pop()
		fmt.Println(value)
	}

	// Output:
	// Buffered: 3 of 4
	// alpha
	// beta
	// gamma
}

// ExampleRingBuffer_Write demonstrates bulk insertion with truncation
func ExampleRingBuffer_Write() {
	buf, _ := ringbuffer.New[int](4)

	// Only the leading elements fit; the rest are refused
	n, err := buf.Write([]int{1, 2, 3, 4, 5, 6})
	fmt.Printf("Inserted: %d\n", n)
	fmt.Printf("Error: %v\n", err)
	fmt.Printf("Length: %d\n", buf.Len())

	// Output:
	// Inserted: 4
	// Error: ring buffer full
	// Length: 4
}

// ExampleRingBuffer_Read demonstrates bulk extraction into a caller slice
func ExampleRingBuffer_Read() {
	buf, _ := ringbuffer.New[int](8)
	_, _ = buf.Write([]int{10, 20, 30})

	// The destination is larger than the contents, so only 3 slots fill
	out := make([]int, 5)
	n := buf.Read(out)
	fmt.Printf("Read: %d\n", n)
	fmt.Println(out[:n])

	// Output:
	// Read: 3
	// [10 20 30]
}

// ExampleRingBuffer_Peek demonstrates the peek-process-discard pattern
func ExampleRingBuffer_Peek() {
	buf, _ := ringbuffer.New[byte](16)
	_, _ = buf.Write([]byte("hello world"))

	// Inspect the frame without consuming it
	view, _ := buf.Peek(5)
	fmt.Printf("Frame: %s\n", view)
	fmt.Printf("Still buffered: %d\n", buf.Len())

	// Consume it once processed
	_, _ = buf.Discard(5)
	fmt.Printf("After discard: %d\n", buf.Len())

	// Output:
	// Frame: hello
	// Still buffered: 11
	// After discard: 6
}

// ExampleRingBuffer_Discard demonstrates all-or-nothing bulk drops
func ExampleRingBuffer_Discard() {
	buf, _ := ringbuffer.New[int](8)
	_, _ = buf.Write([]int{1, 2, 3, 4, 5})

	// Drop the two oldest elements in one step
	free, _ := buf.Discard(2)
	fmt.Printf("Free slots: %d\n", free)

	// Asking for more than is buffered drops nothing
	_, err := buf.Discard(10)
	fmt.Printf("Out of range: %v\n", errors.Is(err, ringbuffer.ErrOutOfRange))
	fmt.Printf("Length: %d\n", buf.Len())

	// Output:
	// Free slots: 5
	// Out of range: true
	// Length: 3
}

// ExampleRingBuffer_Slices demonstrates viewing wrapped contents
func ExampleRingBuffer_Slices() {
	buf, _ := ringbuffer.New[int](4)

	// Fill, drain two, refill: the live window now wraps storage
	_, _ = buf.Write([]int{1, 2, 3, 4})
	_, _ = buf.Discard(2)
	_, _ = buf.Write([]int{5, 6})

	// A single contiguous view cannot span the wrap point
	_, err := buf.Peek(4)
	fmt.Printf("Wrapped: %v\n", errors.Is(err, ringbuffer.ErrNonContiguous))

	// Slices returns both physical spans in arrival order
	first, rest := buf.Slices()
	fmt.Println(first, rest)

	// Output:
	// Wrapped: true
	// [3 4] [5 6]
}

// ExampleRingBuffer_Stats demonstrates the built-in operation counters
func ExampleRingBuffer_Stats() {
	buf, _ := ringbuffer.New[int](2)

	_ = buf.Push(1)
	_ = buf.Push(2)
	_ = buf.Push(3) // refused: the buffer is full
	buf.Pop()

	stats := buf.Stats()
	fmt.Printf("Pushes: %d\n", stats.Pushes())
	fmt.Printf("Rejects: %d\n", stats.Rejects())
	fmt.Printf("Max length: %d\n", stats.MaxLength())

	// Output:
	// Pushes: 2
	// Rejects: 1
	// Max length: 2
}
