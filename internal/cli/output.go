package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/mindcare/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Profile:
		fmt.Fprintf(o.w, "Profile: %s\n", v.ID)
	case response.Session:
		o.printSession(v)
	case response.Locale:
		fmt.Fprintf(o.w, "Language: %s (available: %s)\n", v.Language, strings.Join(v.Available, ", "))
	case response.Translation:
		fmt.Fprintln(o.w, v.Text)
	case response.ChatMessage:
		o.printChatMessage(v)
	case response.Conversation:
		for _, m := range v.Messages {
			o.printChatMessage(m)
		}
	case response.Mood:
		fmt.Fprintf(o.w, "Mood recorded: %s\n", v.Mood)
	case response.Catalogue:
		o.printCatalogue(v)
	case response.Booking:
		o.printBooking(v)
	case response.PostList:
		for _, p := range v.Posts {
			o.printPostSummary(p)
		}
	case response.Post:
		o.printPost(v)
	case response.Reply:
		fmt.Fprintf(o.w, "Reply %s by %s: %s\n", v.ID, v.Author.Name, v.Content)
	case response.StressResult:
		o.printStressResult(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		fmt.Fprintf(o.w, "Storage: %s\n", v.Storage)
	case response.ResourceList:
		o.printResources(v)
	case response.Emergency:
		o.printEmergency(v)
	case response.Call:
		fmt.Fprintf(o.w, "Connecting to %s (%s)...\n", v.Helpline.Name, v.Helpline.Number)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSession(s response.Session) {
	if !s.Authenticated || s.User == nil {
		fmt.Fprintln(o.w, "Not logged in")
		return
	}
	u := s.User
	fmt.Fprintf(o.w, "Logged in as %s <%s> (%s)\n", u.Name, u.Email, u.ID)
	fmt.Fprintf(o.w, "Wellness score: %d\n", u.MentalHealthScore)
	if len(u.Badges) > 0 {
		fmt.Fprintf(o.w, "Badges: %s\n", strings.Join(u.Badges, ", "))
	}
}

func (o *Output) printChatMessage(m response.ChatMessage) {
	who := "You"
	if m.Sender == "ai" {
		who = "Copilot"
	}
	fmt.Fprintf(o.w, "[%s] %s: %s\n", m.Timestamp.Format("15:04"), who, m.Content)
}

func (o *Output) printCatalogue(c response.Catalogue) {
	for _, counselor := range c.Counselors {
		fmt.Fprintf(o.w, "%s. %s, %s (rating %.1f)\n", counselor.ID, counselor.Name, counselor.Title, counselor.Rating)
		fmt.Fprintf(o.w, "   Available: %s\n", strings.Join(counselor.Availability, ", "))
		fmt.Fprintf(o.w, "   Sessions: %s\n", strings.Join(counselor.SessionTypes, ", "))
	}
	slots := make([]string, 0, len(c.TimeSlots))
	for _, s := range c.TimeSlots {
		if s.Available {
			slots = append(slots, s.Time)
		}
	}
	fmt.Fprintf(o.w, "Open time slots: %s\n", strings.Join(slots, ", "))
}

func (o *Output) printBooking(b response.Booking) {
	fmt.Fprintf(o.w, "Booked %s on %s at %s (%s)\n", b.Counselor.Name, b.Date, b.Time, b.SessionType)
	fmt.Fprintf(o.w, "Reason: %s\n", b.Reason)
	fmt.Fprintf(o.w, "Urgency: %s\n", b.Urgency)
}

func (o *Output) printPostSummary(p response.Post) {
	liked := ""
	if p.Liked {
		liked = " (liked)"
	}
	fmt.Fprintf(o.w, "#%s %s by %s [%d likes%s, %d replies]\n", p.ID, p.Title, p.Author.Name, p.Likes, liked, p.ReplyCount)
}

func (o *Output) printPost(p response.Post) {
	o.printPostSummary(p)
	if len(p.Tags) > 0 {
		fmt.Fprintf(o.w, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintln(o.w, p.Content)
	for _, r := range p.Replies {
		fmt.Fprintf(o.w, "  - %s: %s\n", r.Author.Name, r.Content)
	}
}

func (o *Output) printStressResult(r response.StressResult) {
	fmt.Fprintf(o.w, "Stress level: %d%% (%s)\n", r.StressLevel, r.Band)
	fmt.Fprintf(o.w, "Emotion: %s (confidence %d%%)\n", r.Emotion, r.Confidence)
	if r.Substituted {
		fmt.Fprintln(o.w, "Device unavailable, showing a sample result")
	}
	fmt.Fprintln(o.w, "Recommendations:")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(o.w, "  - %s\n", rec)
	}
}

func (o *Output) printResources(l response.ResourceList) {
	fmt.Fprintf(o.w, "Showing %d of %d resources\n", len(l.Resources), l.Total)
	for _, r := range l.Resources {
		premium := ""
		if r.Premium {
			premium = " [premium]"
		}
		fmt.Fprintf(o.w, "%s. %s (%s, %s) by %s%s\n", r.ID, r.Title, r.Type, r.Duration, r.Author, premium)
	}
}

func (o *Output) printEmergency(e response.Emergency) {
	fmt.Fprintln(o.w, "Helplines:")
	for _, h := range e.Helplines {
		fmt.Fprintf(o.w, "  %s: %s (%s, %s)\n", h.Name, h.Number, h.Description, h.Available)
	}
	fmt.Fprintln(o.w, "Right now you can:")
	for _, c := range e.CopingStrategies {
		fmt.Fprintf(o.w, "  - %s\n", c)
	}
}
