package forum

import (
	"time"

	"github.com/mcoot/mindcare/internal/model"
)

// PopularTags are suggested in the sidebar
var PopularTags = []string{
	"anxiety", "depression", "study-tips", "stress", "sleep",
	"motivation", "friendship", "balance", "self-care", "mindfulness",
}

// DefaultTag is applied to posts created without tags
const DefaultTag = "discussion"

// seedPosts returns the starter threads, newest first, relative to now
func seedPosts(now time.Time) []*thread {
	return []*thread{
		{
			post: model.Post{
				ID:         "1",
				Author:     model.Author{Name: "Sarah K.", Verified: true},
				Title:      "Dealing with exam anxiety - what works for you?",
				Content:    "Hey everyone! I've been struggling with severe anxiety before exams. My heart races, I can't focus, and I feel like I'm going to fail even though I've studied. Has anyone found effective techniques to manage this? I've tried breathing exercises but looking for more strategies.",
				CreatedAt:  now.Add(-2 * time.Hour),
				Tags:       []string{"anxiety", "exams", "study-tips"},
				ReplyCount: 8,
				Replies: []model.Reply{
					{
						ID:        "1",
						Author:    model.Author{Name: "Mike R."},
						Content:   "I totally understand! What helped me was creating a pre-exam routine. I do 10 minutes of meditation, review my main points briefly, and remind myself that I've prepared well.",
						CreatedAt: now.Add(-time.Hour),
						Likes:     5,
					},
					{
						ID:        "2",
						Author:    model.Author{Name: "Jennifer L."},
						Content:   "Progressive muscle relaxation works wonders for me. Start from your toes and work your way up, tensing and relaxing each muscle group.",
						CreatedAt: now.Add(-45 * time.Minute),
						Likes:     3,
					},
				},
			},
			baseLikes: 24,
		},
		{
			post: model.Post{
				ID:         "2",
				Author:     model.Author{Name: "Alex M."},
				Title:      "Finding balance between social life and studies",
				Content:    "I feel like I'm missing out on friendships because I'm always studying, but when I hang out with friends, I feel guilty about not studying. How do you all find the right balance?",
				CreatedAt:  now.Add(-5 * time.Hour),
				Tags:       []string{"balance", "friendship", "social"},
				ReplyCount: 12,
			},
			baseLikes: 18,
		},
		{
			post: model.Post{
				ID:         "3",
				Author:     model.Author{Name: "Priya S.", Verified: true},
				Title:      "Late night study sessions affecting my sleep",
				Content:    "I've been pulling all-nighters to keep up with coursework, but now I can't fall asleep even when I'm tired. Anyone else experienced this? How did you fix your sleep schedule?",
				CreatedAt:  now.Add(-24 * time.Hour),
				Tags:       []string{"sleep", "study-habits", "health"},
				ReplyCount: 15,
			},
			baseLikes: 31,
		},
	}
}
