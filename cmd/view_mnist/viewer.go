package main

import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/ebitenutil"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "github.com/neurlang/digitview/datasets/mnist"
import "github.com/neurlang/digitview/render"
import "github.com/neurlang/digitview/session"

const margin = 16
const textHeight = 40

var background = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xFF}

// viewer is the ebiten game. It is also the session's renderer and presenter.
type viewer struct {
	sess  *session.Session
	scale int

	started bool
	digit   *ebiten.Image
	label   string
}

// Render uploads the sample into the digit texture
func (v *viewer) Render(s mnist.Sample) error {
	if v.digit == nil {
		v.digit = ebiten.NewImage(mnist.ImgSize, mnist.ImgSize)
	}
	v.digit.WritePixels(render.RGB(s).Pix)
	return nil
}

// Present shows label below the digit
func (v *viewer) Present(label string) error {
	v.label = label
	return nil
}

func (v *viewer) Update() error {
	if !v.started {
		v.started = true
		return v.sess.Initialize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if _, err := v.sess.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if v.digit != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(v.scale), float64(v.scale))
		op.GeoM.Translate(margin, margin)
		screen.DrawImage(v.digit, op)
	}
	var y = margin + mnist.ImgSize*v.scale + 8
	ebitenutil.DebugPrintAt(screen, v.label, margin, y)
	ebitenutil.DebugPrintAt(screen, "space: next sample", margin, y+16)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.size()
}

func (v *viewer) size() (int, int) {
	side := mnist.ImgSize*v.scale + 2*margin
	return side, side + textHeight
}
