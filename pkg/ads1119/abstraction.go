package ads1119

// write sends cmd followed by any payload bytes in one addressed write.
func (s *Sequencer) write(cmd Command, payload ...byte) error {
	w := make([]byte, 0, 1+len(payload))
	w = append(w, cmd.Byte())
	w = append(w, payload...)
	if err := s.bus.Tx(s.address, w, nil); err != nil {
		return &TransportError{Op: cmd, Err: err}
	}
	return nil
}

// writeRead sends cmd and reads len(r) bytes back with a repeated start.
func (s *Sequencer) writeRead(cmd Command, r []byte) error {
	if err := s.bus.Tx(s.address, []byte{cmd.Byte()}, r); err != nil {
		return &TransportError{Op: cmd, Err: err}
	}
	return nil
}

// readRegister reads a single register with RREG.
func (s *Sequencer) readRegister(reg Register) (byte, error) {
	buf := get1Byte()
	defer put1Byte(buf)
	if err := s.writeRead(readCommand(reg), buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}
