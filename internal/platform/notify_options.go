// Package platform sends desktop notifications through the host's native
// notification service.
package platform

import "image"

// AppName identifies the application to the notification service.
const AppName = "pixed"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown with the
	// notification where supported.
	IconPath string
	// Icon is sent as raw pixels when IconPath is empty, on backends that
	// accept inline images.
	Icon image.Image
	// TimeoutMS is the display time in milliseconds; zero uses 5000.
	TimeoutMS int32
}

func (o Options) timeout() int32 {
	if o.TimeoutMS <= 0 {
		return 5000
	}
	return o.TimeoutMS
}
