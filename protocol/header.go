package protocol

// headerSize is the size in bytes of CommandHeader on the wire.
const headerSize = 4

// Magic is the fixed sentinel byte every outbound command header carries.
const Magic uint8 = 0xAA

// CommandHeader is the 4-byte prefix of every control report: an id
// identifying the command, a status byte (always 0 on transmit), the
// fixed magic byte and the payload length.
type CommandHeader struct {
	ID     uint8
	Status uint8
	Magic  uint8
	Length uint8
}

// Bytes returns the 4 header bytes in field order.
func (h CommandHeader) Bytes() []byte {
	return []byte{h.ID, h.Status, h.Magic, h.Length}
}

// Frame is a header paired with its payload, ready to be laid out on the
// wire as a single fixed-size report.
type Frame struct {
	Header  CommandHeader
	Payload []byte
}

// Encode lays the frame out as exactly FrameSize bytes: header, then
// payload, then zero padding. It panics if the payload does not fit,
// which would indicate a bug in a Command implementation rather than a
// runtime condition callers need to recover from.
func (f Frame) Encode() [FrameSize]byte {
	if len(f.Payload) > maxPayload {
		panic("protocol: payload exceeds maximum frame capacity")
	}

	var out [FrameSize]byte
	copy(out[:headerSize], f.Header.Bytes())
	copy(out[headerSize:], f.Payload)
	return out
}

// NewFrame builds a Frame for a command id and payload, filling in the
// fixed magic byte and a zero status.
func NewFrame(id uint8, payload []byte) Frame {
	return Frame{
		Header: CommandHeader{
			ID:     id,
			Status: 0,
			Magic:  Magic,
			Length: uint8(len(payload)),
		},
		Payload: payload,
	}
}
