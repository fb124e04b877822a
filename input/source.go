// Package input turns raw keyboard bytes into game commands.
package input

// Source is the keyboard capability. Bytes arrive exactly as a raw-mode terminal would send them,
// so arrow keys are three-byte ESC sequences.
type Source interface {
	// PollByte returns the next byte if one is available, without waiting
	PollByte() (byte, bool)

	// WaitByte blocks until a byte is available
	WaitByte() byte
}
