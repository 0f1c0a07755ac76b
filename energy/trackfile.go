package energy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/x448/float16"
)

// trackMagic opens every serialized track (.vet) file.
var trackMagic = [4]byte{'V', 'E', 'T', '1'}

const trackHeaderSize = 4 + 8 + 4 // magic, duration bits, sample count

// WriteFile saves the track to path in the .vet format: the VET1 magic,
// the duration as IEEE 754 bits, the sample count, then one half-precision
// bit pattern per sample, all little-endian. Half precision keeps files
// small; the envelope is in [0,1] where float16 carries ~3 decimal digits,
// more than the animation can show.
func (tr *Track) WriteFile(path string) error {
	n := len(tr.Samples)
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("energy: track too long to serialize: %d samples", n)
	}
	buf := make([]byte, 0, trackHeaderSize+2*n)
	buf = append(buf, trackMagic[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(tr.Duration))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
	for _, s := range tr.Samples {
		buf = binary.LittleEndian.AppendUint16(buf, float16.Fromfloat32(float32(s)).Bits())
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("energy: write track file: %w", err)
	}
	return nil
}

// ReadFile loads a .vet track written by WriteFile.
func ReadFile(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("energy: read track file: %w", err)
	}
	if len(data) < trackHeaderSize || !bytes.Equal(data[:4], trackMagic[:]) {
		return nil, fmt.Errorf("energy: %s is not a track file", path)
	}
	duration := math.Float64frombits(binary.LittleEndian.Uint64(data[4:12]))
	count := int(binary.LittleEndian.Uint32(data[12:16]))
	if len(data) != trackHeaderSize+2*count {
		return nil, fmt.Errorf("energy: track file %s is truncated: header says %d samples", path, count)
	}
	samples := make([]float64, count)
	for i := range samples {
		bits := binary.LittleEndian.Uint16(data[trackHeaderSize+2*i:])
		samples[i] = float64(float16.Frombits(bits).Float32())
	}
	return &Track{Samples: samples, Duration: duration}, nil
}
