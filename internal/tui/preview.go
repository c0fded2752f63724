package tui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/nfnt/resize"
)

// detectKittySupport checks if the terminal supports Kitty graphics protocol
func detectKittySupport() bool {
	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	kittyWindowID := os.Getenv("KITTY_WINDOW_ID")

	if kittyWindowID != "" {
		return true
	}
	if strings.Contains(term, "kitty") {
		return true
	}
	if termProgram == "kitty" {
		return true
	}

	// Try using go-termimg's detection
	protocol := termimg.DetectProtocol()
	return protocol == termimg.Kitty
}

// RenderClipPreview renders a clip frame inline with the Kitty graphics
// protocol, scaled to roughly widthCells terminal cells. Returns an error
// when the terminal has no image support or the data cannot be decoded.
func RenderClipPreview(data []byte, widthCells int) (string, error) {
	if !detectKittySupport() {
		return "", fmt.Errorf("terminal does not support inline images")
	}
	if widthCells < 10 {
		widthCells = 10
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode preview frame: %w", err)
	}

	bounds := img.Bounds()
	aspectRatio := float64(bounds.Dx()) / float64(bounds.Dy())

	// Terminal cells are roughly 2:1 (height:width in pixels)
	heightCells := int(float64(widthCells) / aspectRatio / 2.0)
	if heightCells < 1 {
		heightCells = 1
	}

	pixelWidth := uint(widthCells * 8)
	pixelHeight := uint(float64(pixelWidth) / aspectRatio)
	resized := resize.Resize(pixelWidth, pixelHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return "", err
	}

	ti, err := termimg.From(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return "", err
	}

	ti.Protocol(termimg.Kitty).
		Width(widthCells).
		Height(heightCells).
		Scale(termimg.ScaleFit)

	return ti.Render()
}
