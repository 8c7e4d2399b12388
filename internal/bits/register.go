// Package bits implements the receiver's front end: the 80-bit sample
// register and the template correlator that scores it against the three
// WWVB symbol waveforms.
package bits

// Register is an 80-bit FIFO of recently sampled input bits, one bit per
// tick. It is the SampleRegister of the receiver pipeline.
//
// Bit ordering: LSB of Bytes[0] is the most recent sample, MSB of
// Bytes[9] is the oldest (roughly 1.33s old at 60Hz). Shift carries bits
// from low bytes to high bytes, discarding whatever falls off Bytes[9].
type Register struct {
	Bytes [10]byte
}

// Shift appends bit as the newest sample, evicting the oldest one.
func (r *Register) Shift(bit byte) {
	carry := bit & 1
	for i := 0; i < len(r.Bytes); i++ {
		next := r.Bytes[i] >> 7
		r.Bytes[i] = (r.Bytes[i] << 1) | carry
		carry = next
	}
}

// AsBits returns the register's raw byte view for correlation.
func (r *Register) AsBits() *[10]byte {
	return &r.Bytes
}
