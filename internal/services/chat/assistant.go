package chat

import (
	"strings"

	"github.com/mcoot/mindcare/internal/dependencies/random"
	"github.com/mcoot/mindcare/internal/model"
)

// Topics
const (
	TopicStress     = "stress"
	TopicStudy      = "study"
	TopicAnxiety    = "anxiety"
	TopicMotivation = "motivation"
	TopicSleep      = "sleep"
	TopicDefault    = "default"
)

// Rule maps trigger substrings to a bucket of canned responses
type Rule struct {
	Topic     string
	Triggers  []string
	Responses []string
}

// Matches reports whether the lower-cased message contains any trigger
func (r Rule) Matches(message string) bool {
	for _, trigger := range r.Triggers {
		if strings.Contains(message, trigger) {
			return true
		}
	}
	return false
}

// Assistant picks scripted replies. Rules are tried in order and the first
// match wins; the reply is chosen at random from the matched bucket.
type Assistant struct {
	rules    []Rule
	fallback Rule
	random   random.Random
}

// NewAssistant creates an assistant with the given rules and fallback bucket
func NewAssistant(rules []Rule, fallback Rule, rng random.Random) *Assistant {
	return &Assistant{rules: rules, fallback: fallback, random: rng}
}

// NewDefaultAssistant creates an assistant with the built-in rules
func NewDefaultAssistant(rng random.Random) *Assistant {
	return NewAssistant(DefaultRules(), DefaultFallback(), rng)
}

// Match returns the rule that handles message
func (a *Assistant) Match(message string) Rule {
	lower := strings.ToLower(message)
	for _, rule := range a.rules {
		if rule.Matches(lower) {
			return rule
		}
	}
	return a.fallback
}

// Reply returns the topic and text of the reply to message
func (a *Assistant) Reply(message string) (string, string) {
	rule := a.Match(message)
	return rule.Topic, random.Pick(a.random, rule.Responses)
}

// DefaultRules returns the built-in rule list in priority order
func DefaultRules() []Rule {
	return []Rule{
		{
			Topic:    TopicStress,
			Triggers: []string{"stress", "exam", "pressure"},
			Responses: []string{
				"I understand you're feeling stressed. Let's try a quick breathing exercise: Breathe in for 4 counts, hold for 4, and exhale for 6. This activates your parasympathetic nervous system.",
				"Stress is your body's way of preparing for challenges. Try the 5-4-3-2-1 grounding technique: Notice 5 things you see, 4 you can touch, 3 you hear, 2 you smell, and 1 you taste.",
			},
		},
		{
			Topic:    TopicStudy,
			Triggers: []string{"study", "focus", "concentration"},
			Responses: []string{
				"For better study sessions, try the Pomodoro Technique: 25 minutes focused study, 5-minute break. This helps maintain concentration and prevents burnout.",
				"Create a study schedule that includes breaks. Your brain consolidates information better with regular rest periods. Aim for 45-90 minute focused sessions.",
			},
		},
		{
			Topic:    TopicAnxiety,
			Triggers: []string{"anxiety", "anxious", "worried"},
			Responses: []string{
				"Anxiety can feel overwhelming, but you're stronger than you know. Try progressive muscle relaxation: tense and release each muscle group from your toes to your head.",
				"When anxiety strikes, remember: this feeling is temporary. Practice the STOP technique - Stop, Take a breath, Observe your thoughts, Proceed mindfully.",
			},
		},
		{
			Topic:    TopicMotivation,
			Triggers: []string{"motivation", "motivated", "give up"},
			Responses: []string{
				"Every small step forward is progress. Celebrate your efforts, not just outcomes. You're building resilience with each challenge you face.",
				"Remember why you started this journey. Your education is an investment in your future self. Take it one day at a time.",
			},
		},
		{
			Topic:    TopicSleep,
			Triggers: []string{"sleep", "tired", "insomnia"},
			Responses: []string{
				"Good sleep is crucial for mental health. Try a wind-down routine: dim lights 1 hour before bed, avoid screens, and practice gentle stretching.",
				"If you're having trouble sleeping, keep a consistent schedule. Go to bed and wake up at the same time, even on weekends.",
			},
		},
	}
}

// DefaultFallback returns the bucket used when no rule matches
func DefaultFallback() Rule {
	return Rule{
		Topic: TopicDefault,
		Responses: []string{
			"I'm here to support you. Can you tell me more about what you're experiencing? Are you feeling stressed, anxious, or need study tips?",
			"Your mental health journey is unique. I'm here to provide personalized guidance. What specific area would you like to focus on today?",
		},
	}
}

// Greeting is the first message of every conversation
const Greeting = "Hello! I'm your AI Mental Health Assistant. I'm here to provide support, stress-relief tips, and help you maintain a healthy study-life balance. How are you feeling today?"

// Suggestions returns the quick prompts offered under the chat box
func Suggestions() []model.ChatSuggestion {
	return []model.ChatSuggestion{
		{Text: "I'm feeling stressed about exams", Topic: TopicStress},
		{Text: "How can I study more effectively?", Topic: TopicStudy},
		{Text: "I'm having trouble sleeping", Topic: TopicSleep},
		{Text: "I need motivation", Topic: TopicMotivation},
		{Text: "I'm feeling anxious", Topic: TopicAnxiety},
	}
}
