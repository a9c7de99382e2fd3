package track

import (
	"couchrunner/internal/cue"

	"fyne.io/fyne/v2"
)

// NotificationSink shows cues as desktop notifications.
type NotificationSink struct {
	App fyne.App
}

// Play implements cue.Sink.
func (sink NotificationSink) Play(c cue.Cue) {
	if c.Silent() {
		return
	}
	sink.App.SendNotification(fyne.NewNotification("CouchRunner", cueMessage(c.Kind)))
}

func cueMessage(kind cue.Kind) string {
	switch kind {
	case cue.KindWalk:
		return "Time to walk"
	case cue.KindJog:
		return "Time to jog"
	case cue.KindComplete:
		return "Run complete, well done!"
	default:
		return string(kind)
	}
}
