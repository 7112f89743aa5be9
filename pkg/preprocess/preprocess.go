package preprocess

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// InputSize is the fixed square edge the pretrained model was trained on.
	InputSize = 224
	// Channels is the RGB channel count expected by the model.
	Channels = 3
)

// Tensor is a single preprocessed image ready for inference: a flat float32
// buffer in NHWC layout with a leading batch dimension of 1 and all values
// scaled to [0,1].
type Tensor struct {
	Data []float32
}

// Shape returns the tensor dimensions (1, InputSize, InputSize, Channels).
func (t *Tensor) Shape() []int64 {
	return []int64{1, InputSize, InputSize, Channels}
}

// ImageTensor decodes raw JPEG/PNG/BMP bytes, converts to RGB, resizes to
// the model's fixed square input with Lanczos resampling, and normalizes
// pixel values to [0,1]. Unreadable input returns a decode error; there are
// no side effects.
func ImageTensor(data []byte) (*Tensor, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("preprocess: decode image: %w", err)
	}

	resized := imaging.Resize(img, InputSize, InputSize, imaging.Lanczos)

	buf := make([]float32, InputSize*InputSize*Channels)
	for y := 0; y < InputSize; y++ {
		for x := 0; x < InputSize; x++ {
			// NRGBA pixel layout, 4 bytes per pixel; alpha dropped.
			off := resized.PixOffset(x, y)
			base := (y*InputSize + x) * Channels
			buf[base] = float32(resized.Pix[off]) / 255.0
			buf[base+1] = float32(resized.Pix[off+1]) / 255.0
			buf[base+2] = float32(resized.Pix[off+2]) / 255.0
		}
	}

	return &Tensor{Data: buf}, nil
}

// ReportJPEG downscales the uploaded image to fit a maxSize square (aspect
// ratio preserved) and re-encodes it as JPEG for PDF embedding.
func ReportJPEG(data []byte, maxSize int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("preprocess: decode image: %w", err)
	}

	fitted := imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)

	var out bytes.Buffer
	if err := imaging.Encode(&out, fitted, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("preprocess: encode report image: %w", err)
	}
	return out.Bytes(), nil
}
