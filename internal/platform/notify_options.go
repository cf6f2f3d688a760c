package platform

import "strings"

// DefaultAppName is reported to the notification service when Options does
// not name an application.
const DefaultAppName = "pixpaint"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender. Empty means DefaultAppName.
	AppName string
	// IconPath, when non-empty, points to an image the notification should
	// show if the platform supports it.
	IconPath string
	// TimeoutMS is how long the notification stays up. Zero lets the
	// platform decide.
	TimeoutMS int32
}

func (o Options) appName() string {
	if name := strings.TrimSpace(o.AppName); name != "" {
		return name
	}
	return DefaultAppName
}
