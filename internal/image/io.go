package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder (first frame only)
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the content is not an image
	// format imgview can decode.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")

	// ErrDecode is returned when the content looks like a supported image
	// but the decoder rejects it.
	ErrDecode = errors.New("image: decode failed")
)

// decodable lists the sniffed extensions that have a registered decoder.
var decodable = map[string]bool{
	"png":  true,
	"jpg":  true,
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"webp": true,
}

// Load reads the file at path once and decodes it.
// A leading ~ is expanded to the user's home directory.
// Read failures wrap the underlying *fs.PathError.
func Load(path string) (*Buf, string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, "", fmt.Errorf("image: expand path: %w", err)
	}
	data, err := os.ReadFile(expanded) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, "", fmt.Errorf("image: read file: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes sniffs the content type of data and decodes it.
func DecodeBytes(data []byte) (*Buf, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, "", fmt.Errorf("image: sniff content: %w", err)
	}
	if kind == filetype.Unknown {
		return nil, "", ErrUnsupportedFormat
	}
	if !decodable[kind.Extension] {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}

	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r with whichever registered decoder
// matches, returning the buffer and the format name.
func Decode(r io.Reader) (*Buf, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	buf, err := FromStdImage(img)
	if err != nil {
		return nil, "", err
	}
	return buf, format, nil
}

// FromStdImage converts any image.Image to a non-premultiplied RGBA8 Buf.
func FromStdImage(img image.Image) (*Buf, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf, err := NewBuf(width, height)
	if err != nil {
		return nil, err
	}

	// Fast path: NRGBA already has the exact byte layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[start:start+width*4])
		}
		return buf, nil
	}

	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return buf, nil
}

// ToStdImage returns an *image.NRGBA sharing no memory with b.
func (b *Buf) ToStdImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}
