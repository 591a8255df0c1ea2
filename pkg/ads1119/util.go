package ads1119

// DecodeData interprets the two RDATA bytes, MSB first, as a 16-bit two's
// complement code.
func DecodeData(hi, lo byte) int16 {
	return int16(uint16(hi)<<8 | uint16(lo))
}

// ScaleVoltage converts a single-ended code to volts against the internal
// 2.048V reference. Negative codes are noise around zero and clamp to 0.
func ScaleVoltage(code int16) float64 {
	if code < 0 {
		code = 0
	}
	return float64(code) / MaxCode * FullScaleVolts
}
