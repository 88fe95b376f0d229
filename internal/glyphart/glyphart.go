// Package glyphart renders IPA glyphs as large half-block art so that
// small combining diacritics are visible in the terminal.
package glyphart

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var loadedFace font.Face

func init() {
	// Try to load a font with broad IPA coverage from common system
	// locations.
	fontPaths := []string{
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
		"/usr/share/fonts/opentype/charis/CharisSIL-Regular.ttf",
		"/usr/share/fonts/truetype/doulos/DoulosSIL-Regular.ttf",
		// macOS
		"/Library/Fonts/Arial Unicode.ttf",
		"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\seguisym.ttf",
	}

	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fnt, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size: 64,
			DPI:  72,
		})
		if err != nil {
			continue
		}
		loadedFace = face
		return
	}
}

// Available reports whether a usable font was found.
func Available() bool {
	return loadedFace != nil
}

// RenderBlock renders a glyph cluster (a base character and any
// combining marks) using half-block characters. cols and rows give the
// output size in terminal cells. Returns "" when no font is available.
func RenderBlock(cluster string, cols, rows int) string {
	if cluster == "" || loadedFace == nil {
		return ""
	}

	bounds, _ := font.BoundString(loadedFace, cluster)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 6
	srcWidth := glyphWidth + padding*2
	srcHeight := glyphHeight + padding*2
	if srcWidth < 48 {
		srcWidth = 48
	}
	if srcHeight < 64 {
		srcHeight = 64
	}

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	// Center horizontally, place the baseline so ascenders and
	// combining marks above fit inside the canvas.
	x := (srcWidth-glyphWidth)/2 - bounds.Min.X.Ceil()
	y := padding - bounds.Min.Y.Ceil()

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(cluster)

	scaled := scaleDown(srcImg, cols, rows*2)
	return toHalfBlocks(scaled, cols, rows)
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := int(float64(dx+1) * xRatio)
			sy2 := int(float64(dy+1) * yRatio)
			if sx2 > srcWidth {
				sx2 = srcWidth
			}
			if sy2 > srcHeight {
				sy2 = srcHeight
			}

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

// toHalfBlocks converts a grayscale image to half-block art, two
// vertical pixels per terminal cell.
func toHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 40

	var result strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := img.GrayAt(col, row*2).Y > threshold
			bottomOn := img.GrayAt(col, row*2+1).Y > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}
	return result.String()
}
