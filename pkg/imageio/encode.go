package imageio

import (
	"bufio"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format names an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported output format
var Formats = []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF}

// ParseFormat accepts a format name or a file extension, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", errors.Errorf("unknown image format %q", name)
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(filename string) (Format, error) {
	return ParseFormat(filepath.Ext(filename))
}

// Encode writes img in the given format
func Encode(w io.Writer, img *Image, format Format) error {
	var err error
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		err = png.Encode(w, img.ToRGBA())
	case FormatBMP:
		err = bmp.Encode(w, img.ToRGBA())
	case FormatTIFF:
		err = tiff.Encode(w, img.ToRGBA(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Errorf("unknown image format %q", format)
	}
	return errors.Wrapf(err, "encode %s", format)
}

// Save writes img to filename in the given format
func Save(filename string, img *Image, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create image file")
	}
	if err := Encode(file, img, format); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close image file")
}

// Load reads a PPM, PNG, JPEG, BMP or TIFF image, recognising the format from its content
func Load(filename string) (*Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open image file")
	}
	defer file.Close()

	br := bufio.NewReader(file)
	if magic, err := br.Peek(2); err == nil && string(magic) == "P6" {
		img, err := ReadPPM(br)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", filename)
		}
		return img, nil
	}

	// bmp and tiff register their decoders with image on import
	src, _, err := image.Decode(br)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", filename)
	}
	return FromImage(src), nil
}
