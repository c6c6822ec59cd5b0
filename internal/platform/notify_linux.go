//go:build linux

package platform

import (
	"image"
	"image/draw"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest = "org.freedesktop.Notifications"
	notifyPath = "/org/freedesktop/Notifications"
)

// imageData is the (iiibiiay) structure of the "image-data" hint.
type imageData struct {
	Width         int32
	Height        int32
	RowStride     int32
	HasAlpha      bool
	BitsPerSample int32
	Channels      int32
	Data          []byte
}

// Notify sends a desktop notification using the Freedesktop.org notification spec.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	obj := conn.Object(notifyDest, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyDest+".Notify", 0,
		AppName, uint32(0), opts.IconPath, title, body, []string{},
		hints(opts), opts.timeout())
	return call.Err
}

func hints(opts Options) map[string]dbus.Variant {
	h := map[string]dbus.Variant{"category": dbus.MakeVariant("transfer.complete")}
	if opts.IconPath == "" && opts.Icon != nil {
		h["image-data"] = dbus.MakeVariant(newImageData(opts.Icon))
	}
	return h
}

// newImageData converts img to non-premultiplied RGBA rows.
func newImageData(img image.Image) imageData {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return imageData{
		Width:         int32(b.Dx()),
		Height:        int32(b.Dy()),
		RowStride:     int32(nrgba.Stride),
		HasAlpha:      true,
		BitsPerSample: 8,
		Channels:      4,
		Data:          nrgba.Pix,
	}
}
