package imageio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

const ppmMaxValue = 255

// maxPPMPixels bounds the raster ReadPPM will allocate
const maxPPMPixels = 1 << 28

// Quantize maps a linear channel to a byte: clamp(round(256*c), 0, 255)
func Quantize(c float64) uint8 {
	v := math.Round(256 * c)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > ppmMaxValue {
		return ppmMaxValue
	}
	return uint8(v)
}

// dequantize is the inverse used by ReadPPM; Quantize(dequantize(b)) == b for every byte
func dequantize(b uint8) float64 {
	return float64(b) / 256
}

// WritePPM writes img as a binary (P6) portable pixmap
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", img.width, img.height, ppmMaxValue); err != nil {
		return errors.Wrap(err, "write ppm header")
	}

	row := make([]byte, 3*img.width)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.pixels[y*img.width+x]
			row[3*x] = Quantize(c.X)
			row[3*x+1] = Quantize(c.Y)
			row[3*x+2] = Quantize(c.Z)
		}
		if _, err := bw.Write(row); err != nil {
			return errors.Wrapf(err, "write ppm row %d", y)
		}
	}

	return errors.Wrap(bw.Flush(), "flush ppm")
}

// ReadPPM reads a binary (P6) portable pixmap with a maximum value of 255
func ReadPPM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxValue int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxValue); err != nil {
		return nil, errors.Wrap(err, "read ppm header")
	}
	if magic != "P6" {
		return nil, errors.Errorf("unsupported ppm magic %q", magic)
	}
	if width < 0 || height < 0 {
		return nil, errors.Errorf("invalid ppm size %dx%d", width, height)
	}
	if width > maxPPMPixels || (width > 0 && height > maxPPMPixels/width) {
		return nil, errors.Errorf("ppm size %dx%d exceeds %d pixels", width, height, maxPPMPixels)
	}
	if maxValue != ppmMaxValue {
		return nil, errors.Errorf("unsupported ppm max value %d", maxValue)
	}
	// Exactly one whitespace byte separates the header from the raster
	if _, err := br.ReadByte(); err != nil {
		return nil, errors.Wrap(err, "read ppm header")
	}

	img := NewImage(width, height)
	row := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, errors.Wrapf(err, "read ppm row %d", y)
		}
		for x := 0; x < width; x++ {
			img.pixels[y*width+x] = core.NewColor(
				dequantize(row[3*x]),
				dequantize(row[3*x+1]),
				dequantize(row[3*x+2]),
			)
		}
	}

	return img, nil
}

// SavePPM writes img to filename
func SavePPM(filename string, img *Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create ppm file")
	}
	if err := WritePPM(file, img); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close ppm file")
}

// LoadPPM reads a portable pixmap from filename
func LoadPPM(filename string) (*Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open ppm file")
	}
	defer file.Close()

	img, err := ReadPPM(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return img, nil
}
