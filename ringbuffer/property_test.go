package ringbuffer

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

// TestBufferMatchesModel drives a buffer and a plain slice model through
// random operation sequences and checks that they never disagree.
func TestBufferMatchesModel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 64).Draw(rt, "capacity")
		buf, err := New[int](capacity)
		if err != nil {
			rt.Fatalf("failed to create buffer: %v", err)
		}

		var model []int
		next := 0

		steps := rapid.IntRange(1, 200).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.SampledFrom([]string{
				"push", "pop", "write", "read", "discard", "peek", "slices", "clear",
			}).Draw(rt, "op")

			switch op {
			case "push":
				err := buf.Push(next)
				if len(model) == capacity {
					if !errors.Is(err, ErrFull) {
						rt.Fatalf("push on full buffer: expected ErrFull, got %v", err)
					}
				} else {
					if err != nil {
						rt.Fatalf("push failed: %v", err)
					}
					model = append(model, next)
				}
				next++

			case "pop":
				value, ok := buf.Pop()
				if len(model) == 0 {
					if ok {
						rt.Fatalf("pop on empty buffer returned %d", value)
					}
				} else {
					if !ok {
						rt.Fatalf("pop on non-empty buffer failed")
					}
					if value != model[0] {
						rt.Fatalf("pop: expected %d, got %d", model[0], value)
					}
					model = model[1:]
				}

			case "write":
				count := rapid.IntRange(0, capacity+2).Draw(rt, "write-count")
				data := make([]int, count)
				for j := range data {
					data[j] = next
					next++
				}

				free := capacity - len(model)
				n, err := buf.Write(data)
				if count <= free {
					if n != count || err != nil {
						rt.Fatalf("write: expected (%d, nil), got (%d, %v)", count, n, err)
					}
				} else {
					if n != free || !errors.Is(err, ErrFull) {
						rt.Fatalf("write: expected (%d, ErrFull), got (%d, %v)", free, n, err)
					}
				}
				model = append(model, data[:n]...)

			case "read":
				count := rapid.IntRange(0, capacity+2).Draw(rt, "read-count")
				out := make([]int, count)
				n := buf.Read(out)

				expected := count
				if expected > len(model) {
					expected = len(model)
				}
				if n != expected {
					rt.Fatalf("read: expected %d, got %d", expected, n)
				}
				for j := 0; j < n; j++ {
					if out[j] != model[j] {
						rt.Fatalf("read[%d]: expected %d, got %d", j, model[j], out[j])
					}
				}
				model = model[n:]

			case "discard":
				count := rapid.IntRange(0, capacity+2).Draw(rt, "discard-count")
				free, err := buf.Discard(count)
				if count > len(model) {
					if !errors.Is(err, ErrOutOfRange) {
						rt.Fatalf("discard: expected ErrOutOfRange, got %v", err)
					}
					// All-or-nothing: model unchanged
				} else {
					if err != nil {
						rt.Fatalf("discard failed: %v", err)
					}
					model = model[count:]
					if free != capacity-len(model) {
						rt.Fatalf("discard: expected %d free, got %d", capacity-len(model), free)
					}
				}

			case "peek":
				count := rapid.IntRange(0, capacity+2).Draw(rt, "peek-count")
				view, err := buf.Peek(count)
				switch {
				case count > len(model):
					if !errors.Is(err, ErrOutOfRange) {
						rt.Fatalf("peek: expected ErrOutOfRange, got %v", err)
					}
				case err != nil:
					if !errors.Is(err, ErrNonContiguous) {
						rt.Fatalf("peek: unexpected error %v", err)
					}
					// Refusal is only legitimate when the window outgrows the
					// contiguous first span
					first, _ := buf.Slices()
					if count <= len(first) {
						rt.Fatalf("peek: contiguous span of %d refused for %d", len(first), count)
					}
				default:
					for j := 0; j < count; j++ {
						if view[j] != model[j] {
							rt.Fatalf("peek[%d]: expected %d, got %d", j, model[j], view[j])
						}
					}
				}

			case "slices":
				first, rest := buf.Slices()
				combined := append(append([]int(nil), first...), rest...)
				if len(combined) != len(model) {
					rt.Fatalf("slices: expected %d elements, got %d", len(model), len(combined))
				}
				for j, value := range combined {
					if value != model[j] {
						rt.Fatalf("slices[%d]: expected %d, got %d", j, model[j], value)
					}
				}

			case "clear":
				buf.Clear()
				model = model[:0]
			}

			// Size accessors always agree with the model
			if buf.Len() != len(model) {
				rt.Fatalf("length: expected %d, got %d", len(model), buf.Len())
			}
			if buf.Available() != capacity-len(model) {
				rt.Fatalf("available: expected %d, got %d", capacity-len(model), buf.Available())
			}
			if buf.IsEmpty() != (len(model) == 0) {
				rt.Fatalf("empty: expected %v, got %v", len(model) == 0, buf.IsEmpty())
			}
			if buf.IsFull() != (len(model) == capacity) {
				rt.Fatalf("full: expected %v, got %v", len(model) == capacity, buf.IsFull())
			}
		}
	})
}

// TestFIFOOrderPreserved fills a buffer at a random cursor offset and confirms
// both drain paths return elements in arrival order.
func TestFIFOOrderPreserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 128).Draw(rt, "capacity")
		count := rapid.IntRange(0, capacity).Draw(rt, "count")

		buf, err := New[int](capacity)
		if err != nil {
			rt.Fatalf("failed to create buffer: %v", err)
		}

		// Shift the cursors to a random offset so wraparound is exercised
		offset := rapid.IntRange(0, capacity).Draw(rt, "offset")
		for i := 0; i < offset; i++ {
			_ = buf.Push(-1)
			buf.Pop()
		}

		values := make([]int, count)
		for i := range values {
			values[i] = rapid.IntRange(-1000, 1000).Draw(rt, "value")
		}

		n, err := buf.Write(values)
		if n != count || err != nil {
			rt.Fatalf("write: expected (%d, nil), got (%d, %v)", count, n, err)
		}

		first, rest := buf.Slices()
		combined := append(append([]int(nil), first...), rest...)
		for i, value := range combined {
			if value != values[i] {
				rt.Fatalf("slices[%d]: expected %d, got %d", i, values[i], value)
			}
		}

		out := make([]int, count)
		if n := buf.Read(out); n != count {
			rt.Fatalf("read: expected %d, got %d", count, n)
		}
		for i, value := range out {
			if value != values[i] {
				rt.Fatalf("read[%d]: expected %d, got %d", i, values[i], value)
			}
		}
		if !buf.IsEmpty() {
			rt.Fatalf("expected buffer to drain completely")
		}
	})
}
