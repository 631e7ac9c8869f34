package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pubsub-chat/models"
)

const (
	uiDivider      = "──────────────────────────────────────────────────────"
	incomingPrefix = "<message> "
	feedbackPrefix = "* "
)

func viewTitle(title string) string {
	return fmt.Sprintf("%s\n%s\n", titleStyle.Render(title), uiDivider)
}

// renderEvent turns a session event into one history line. It reports false
// for events that have no visible line.
func renderEvent(event models.Event) (string, bool) {
	switch event.Kind {
	case models.IncomingText:
		return incomingPrefix + event.Text, true
	case models.CommandFeedback:
		return feedbackStyle.Render(feedbackPrefix + humanizeFeedback(event.Text)), true
	default:
		return "", false
	}
}

func renderHelp(status string) string {
	var b strings.Builder
	b.WriteString("enter: send  ctrl+y: copy last message  ctrl+b: build info  pgup/pgdown: scroll  ctrl+c: quit")
	if status != "" {
		b.WriteString("  |  ")
		b.WriteString(status)
	}
	return helpStyle.Render(b.String())
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
