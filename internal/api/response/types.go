package response

import (
	"time"

	"github.com/mcoot/mindcare/internal/model"
)

// Profile is returned when a profile ID is issued
type Profile struct {
	ID string `json:"id"`
}

// User represents a logged in account
type User struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	MentalHealthScore int      `json:"mental_health_score"`
	Badges            []string `json:"badges"`
}

// UserFromModel converts a model.SessionUser
func UserFromModel(u *model.SessionUser) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:                string(u.ID),
		Name:              u.Name,
		Email:             u.Email,
		MentalHealthScore: u.MentalHealthScore,
		Badges:            append([]string{}, u.Badges...),
	}
}

// Session describes a profile's login state
type Session struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user"`
}

// SessionFromModel converts the current user of a session store
func SessionFromModel(u *model.SessionUser) Session {
	return Session{Authenticated: u != nil, User: UserFromModel(u)}
}

// Locale describes a profile's language
type Locale struct {
	Language  string   `json:"language"`
	Available []string `json:"available"`
}

// LocaleFromModel converts a language choice
func LocaleFromModel(lang model.Language) Locale {
	available := make([]string, len(model.Languages))
	for i, l := range model.Languages {
		available[i] = string(l)
	}
	return Locale{Language: string(lang), Available: available}
}

// Translation is a looked up translation key
type Translation struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// ChatMessage represents a copilot message
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type,omitempty"`
	Topic     string    `json:"topic,omitempty"`
}

// ChatMessageFromModel converts model.ChatMessage
func ChatMessageFromModel(m model.ChatMessage) ChatMessage {
	return ChatMessage{
		ID:        m.ID,
		Content:   m.Content,
		Sender:    string(m.Sender),
		Timestamp: m.Timestamp,
		Type:      string(m.Type),
		Topic:     m.Topic,
	}
}

// Conversation is a copilot history
type Conversation struct {
	Messages []ChatMessage `json:"messages"`
}

// ConversationFromModel converts a message history
func ConversationFromModel(messages []model.ChatMessage) Conversation {
	result := make([]ChatMessage, len(messages))
	for i, m := range messages {
		result[i] = ChatMessageFromModel(m)
	}
	return Conversation{Messages: result}
}

// Mood is an acknowledged mood check-in
type Mood struct {
	Mood string `json:"mood"`
}

// Counselor represents a bookable counselor
type Counselor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Specialization []string `json:"specialization"`
	Rating         float64  `json:"rating"`
	Experience     string   `json:"experience"`
	Availability   []string `json:"availability"`
	SessionTypes   []string `json:"session_types"`
	Bio            string   `json:"bio"`
}

// CounselorFromModel converts model.Counselor
func CounselorFromModel(c model.Counselor) Counselor {
	days := make([]string, len(c.Availability))
	for i, d := range c.Availability {
		days[i] = d.String()
	}
	types := make([]string, len(c.SessionTypes))
	for i, t := range c.SessionTypes {
		types[i] = string(t)
	}
	return Counselor{
		ID:             c.ID,
		Name:           c.Name,
		Title:          c.Title,
		Specialization: c.Specialization,
		Rating:         c.Rating,
		Experience:     c.Experience,
		Availability:   days,
		SessionTypes:   types,
		Bio:            c.Bio,
	}
}

// TimeSlot is a bookable time of day
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Catalogue lists the counselors and time slots
type Catalogue struct {
	Counselors []Counselor `json:"counselors"`
	TimeSlots  []TimeSlot  `json:"time_slots"`
}

// CatalogueFromModel converts the booking catalogue
func CatalogueFromModel(counselors []model.Counselor, slots []model.TimeSlot) Catalogue {
	result := Catalogue{
		Counselors: make([]Counselor, len(counselors)),
		TimeSlots:  make([]TimeSlot, len(slots)),
	}
	for i, c := range counselors {
		result.Counselors[i] = CounselorFromModel(c)
	}
	for i, s := range slots {
		result.TimeSlots[i] = TimeSlot{Time: s.Time, Available: s.Available}
	}
	return result
}

// Booking represents a submitted booking
type Booking struct {
	Counselor          Counselor `json:"counselor"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	SessionType        string    `json:"session_type"`
	Reason             string    `json:"reason"`
	Urgency            string    `json:"urgency"`
	PreviousCounseling bool      `json:"previous_counseling"`
	AdditionalNotes    string    `json:"additional_notes,omitempty"`
	User               *User     `json:"user"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// BookingFromModel converts model.Booking
func BookingFromModel(b *model.Booking) Booking {
	return Booking{
		Counselor:          CounselorFromModel(b.Counselor),
		Date:               b.Date,
		Time:               b.Time,
		SessionType:        string(b.SessionType),
		Reason:             b.Details.Reason,
		Urgency:            string(b.Details.Urgency),
		PreviousCounseling: b.Details.PreviousCounseling,
		AdditionalNotes:    b.Details.AdditionalNotes,
		User:               UserFromModel(b.User),
		SubmittedAt:        b.SubmittedAt,
	}
}

// Author is the public identity on forum content
type Author struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// Reply represents a forum reply
type Reply struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
}

// ReplyFromModel converts model.Reply
func ReplyFromModel(r model.Reply) Reply {
	return Reply{
		ID:        r.ID,
		Author:    Author(r.Author),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		Likes:     r.Likes,
	}
}

// Post represents a forum post as seen by the requesting profile
type Post struct {
	ID         string    `json:"id"`
	Author     Author    `json:"author"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Likes      int       `json:"likes"`
	Liked      bool      `json:"liked"`
	Tags       []string  `json:"tags"`
	ReplyCount int       `json:"reply_count"`
	Replies    []Reply   `json:"replies,omitempty"`
}

// PostFromModel converts model.Post
func PostFromModel(p *model.Post) Post {
	var replies []Reply
	for _, r := range p.Replies {
		replies = append(replies, ReplyFromModel(r))
	}
	return Post{
		ID:         string(p.ID),
		Author:     Author(p.Author),
		Title:      p.Title,
		Content:    p.Content,
		CreatedAt:  p.CreatedAt,
		Likes:      p.Likes,
		Liked:      p.Liked,
		Tags:       append([]string{}, p.Tags...),
		ReplyCount: p.ReplyCount,
		Replies:    replies,
	}
}

// PostList is a page of forum posts
type PostList struct {
	Posts []Post   `json:"posts"`
	Tags  []string `json:"tags"`
}

// StressResult represents a stress check outcome
type StressResult struct {
	Mode            string   `json:"mode"`
	StressLevel     int      `json:"stress_level"`
	Band            string   `json:"band"`
	Emotion         string   `json:"emotion"`
	Confidence      int      `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	EyeStrain       int      `json:"eye_strain"`
	FacialTension   int      `json:"facial_tension"`
	OverallMood     string   `json:"overall_mood"`
	ToneStress      int      `json:"tone_stress"`
	SpeechRate      string   `json:"speech_rate"`
	EmotionalTone   string   `json:"emotional_tone"`
	Substituted     bool     `json:"substituted"`
}

// StressResultFromModel converts model.StressResult
func StressResultFromModel(r *model.StressResult) StressResult {
	return StressResult{
		Mode:            string(r.Mode),
		StressLevel:     r.StressLevel,
		Band:            model.StressBand(r.StressLevel),
		Emotion:         r.Emotion,
		Confidence:      r.Confidence,
		Recommendations: r.Recommendations,
		EyeStrain:       r.FacialIndicators.EyeStrain,
		FacialTension:   r.FacialIndicators.FacialTension,
		OverallMood:     r.FacialIndicators.OverallMood,
		ToneStress:      r.VoiceIndicators.ToneStress,
		SpeechRate:      r.VoiceIndicators.SpeechRate,
		EmotionalTone:   r.VoiceIndicators.EmotionalTone,
		Substituted:     r.Substituted,
	}
}

// Health is the health check response
type Health struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Resource represents a resource library entry
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Rating      float64  `json:"rating"`
	Downloads   int      `json:"downloads"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Premium     bool     `json:"premium"`
}

// ResourceFromModel converts model.Resource
func ResourceFromModel(r model.Resource) Resource {
	return Resource{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Type:        string(r.Type),
		Category:    string(r.Category),
		Duration:    r.Duration,
		Rating:      r.Rating,
		Downloads:   r.Downloads,
		Author:      r.Author,
		Tags:        append([]string{}, r.Tags...),
		Premium:     r.Premium,
	}
}

// ResourceList is a filtered view of the library
type ResourceList struct {
	Resources []Resource `json:"resources"`
	Total     int        `json:"total"`
}

// EmergencyContact is the person to reach in a crisis
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Preferences holds the notification switches
type Preferences struct {
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	WeeklyReports      bool `json:"weekly_reports"`
	CommunityUpdates   bool `json:"community_updates"`
	CrisisAlerts       bool `json:"crisis_alerts"`
}

// Settings represents the saved profile page settings
type Settings struct {
	Bio              string           `json:"bio"`
	University       string           `json:"university"`
	Year             string           `json:"year"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	Preferences      Preferences      `json:"preferences"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

// SettingsFromModel converts model.Settings
func SettingsFromModel(s *model.Settings) Settings {
	out := Settings{
		Bio:              s.Details.Bio,
		University:       s.Details.University,
		Year:             s.Details.Year,
		EmergencyContact: EmergencyContact(s.Details.EmergencyContact),
		Preferences:      Preferences(s.Preferences),
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

// Helpline is an emergency phone line
type Helpline struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Available   string `json:"available"`
}

// CrisisResource is an organisation offering crisis support
type CrisisResource struct {
	Name        string   `json:"name"`
	Website     string   `json:"website"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
}

// Emergency is the emergency support directory
type Emergency struct {
	Helplines        []Helpline       `json:"helplines"`
	CrisisResources  []CrisisResource `json:"crisis_resources"`
	CopingStrategies []string         `json:"coping_strategies"`
}

// Call is a simulated helpline call
type Call struct {
	Helpline  Helpline  `json:"helpline"`
	StartedAt time.Time `json:"started_at"`
	EndsAt    time.Time `json:"ends_at"`
}

// CallFromModel converts model.Call
func CallFromModel(c *model.Call) Call {
	return Call{
		Helpline:  Helpline(c.Helpline),
		StartedAt: c.StartedAt,
		EndsAt:    c.EndsAt,
	}
}
