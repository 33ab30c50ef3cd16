package resources

import "github.com/mcoot/mindcare/internal/model"

// Option is a filter choice. An empty ID is the "all" choice.
type Option struct {
	ID   string
	Name string
}

// Categories in display order
var Categories = []Option{
	{ID: "", Name: "All Categories"},
	{ID: string(model.CategoryStudy), Name: "Study Techniques"},
	{ID: string(model.CategoryStress), Name: "Stress Management"},
	{ID: string(model.CategoryMindfulness), Name: "Mindfulness"},
	{ID: string(model.CategoryTimeManagement), Name: "Time Management"},
	{ID: string(model.CategorySelfCare), Name: "Self Care"},
}

// Types in display order
var Types = []Option{
	{ID: "", Name: "All Types"},
	{ID: string(model.ResourceArticle), Name: "Articles"},
	{ID: string(model.ResourceVideo), Name: "Videos"},
	{ID: string(model.ResourceExercise), Name: "Exercises"},
	{ID: string(model.ResourceGuide), Name: "Guides"},
}

func seedResources() []model.Resource {
	return []model.Resource{
		{
			ID:          "1",
			Title:       "The Pomodoro Technique: Complete Guide",
			Description: "Master the most effective time management technique for students. Learn how to break work into focused intervals with strategic breaks.",
			Type:        model.ResourceGuide,
			Category:    model.CategoryTimeManagement,
			Duration:    "15 min read",
			Rating:      4.8,
			Downloads:   2847,
			Author:      "Dr. Sarah Chen",
			Tags:        []string{"productivity", "focus", "study-techniques"},
		},
		{
			ID:          "2",
			Title:       "Managing Test Anxiety",
			Description: "Evidence-based strategies to reduce anxiety before and during exams. Includes breathing exercises and cognitive techniques.",
			Type:        model.ResourceArticle,
			Category:    model.CategoryStress,
			Duration:    "10 min read",
			Rating:      4.9,
			Downloads:   3921,
			Author:      "Prof. Michael Rodriguez",
			Tags:        []string{"anxiety", "exams", "coping-strategies"},
		},
		{
			ID:          "3",
			Title:       "Progressive Muscle Relaxation",
			Description: "A guided audio session to help you release physical tension and mental stress through systematic muscle relaxation.",
			Type:        model.ResourceExercise,
			Category:    model.CategoryMindfulness,
			Duration:    "20 min audio",
			Rating:      4.7,
			Downloads:   1563,
			Author:      "MindCare Team",
			Tags:        []string{"relaxation", "stress-relief", "body-awareness"},
		},
		{
			ID:          "4",
			Title:       "Active Learning Strategies for Better Retention",
			Description: "Transform passive studying into active learning with proven techniques that improve memory and understanding.",
			Type:        model.ResourceVideo,
			Category:    model.CategoryStudy,
			Duration:    "25 min watch",
			Rating:      4.6,
			Downloads:   2134,
			Author:      "Dr. Emily Watson",
			Tags:        []string{"memory", "learning", "study-methods"},
		},
		{
			ID:          "5",
			Title:       "Building Healthy Sleep Habits",
			Description: "Create a sleep routine that supports your mental health and academic performance. Includes sleep hygiene checklist.",
			Type:        model.ResourceGuide,
			Category:    model.CategorySelfCare,
			Duration:    "12 min read",
			Rating:      4.5,
			Downloads:   1876,
			Author:      "Sleep Research Institute",
			Tags:        []string{"sleep", "health", "routine"},
		},
		{
			ID:          "6",
			Title:       "Mindful Study Breaks",
			Description: "Quick mindfulness exercises you can do between study sessions to refresh your mind and maintain focus.",
			Type:        model.ResourceExercise,
			Category:    model.CategoryMindfulness,
			Duration:    "5-10 min",
			Rating:      4.8,
			Downloads:   2456,
			Author:      "Mindfulness Institute",
			Tags:        []string{"mindfulness", "breaks", "focus"},
			Premium:     true,
		},
	}
}
