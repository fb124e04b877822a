package input

import "sync"

// Queue is a scripted Source backed by a byte slice. Used for replays and tests.
type Queue struct {
	mu  sync.Mutex
	buf []byte
}

// NewQueue returns a queue preloaded with bytes
func NewQueue(b ...byte) *Queue {
	return &Queue{buf: append([]byte(nil), b...)}
}

// Push appends bytes to the end of the queue
func (q *Queue) Push(b ...byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = append(q.buf, b...)
}

// PushString appends the bytes of s
func (q *Queue) PushString(s string) {
	q.Push([]byte(s)...)
}

// Len returns the number of unread bytes
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

func (q *Queue) PollByte() (byte, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buf) == 0 {
		return 0, false
	}
	b := q.buf[0]
	q.buf = q.buf[1:]
	return b, true
}

// WaitByte panics when the script runs dry, since nothing could ever refill it
func (q *Queue) WaitByte() byte {
	b, ok := q.PollByte()
	if !ok {
		panic("input: wait on exhausted queue")
	}
	return b
}
