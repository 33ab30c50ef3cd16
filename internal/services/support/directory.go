package support

import "github.com/mcoot/mindcare/internal/model"

// CrisisNumber is dialled by the crisis counselor quick action
const CrisisNumber = "1800-599-0019"

// EmergencyNumber is the general emergency services line
const EmergencyNumber = "112"

var helplines = []model.Helpline{
	{Name: "National Emergency Services", Number: EmergencyNumber, Description: "Police, Fire, Medical Emergency", Available: "24/7"},
	{Name: "Mental Health Helpline", Number: CrisisNumber, Description: "iCALL - Psychological Support", Available: "24/7"},
	{Name: "Suicide Prevention", Number: "9152987821", Description: "AASRA - Crisis Intervention", Available: "24/7"},
	{Name: "Student Helpline", Number: "1800-180-1104", Description: "UGC Student Support", Available: "9 AM - 6 PM"},
}

var quickActions = []model.QuickAction{
	{ID: "call", Title: "Talk to Crisis Counselor", Description: "Connect with a trained mental health professional immediately", Urgent: true},
	{ID: "location", Title: "Find Nearest Hospital", Description: "Locate emergency medical facilities in your area", Urgent: true, URL: "https://maps.google.com/search/hospital+near+me"},
	{ID: "contact", Title: "Contact Emergency Contact", Description: "Reach out to your designated emergency person"},
	{ID: "plan", Title: "Safety Planning", Description: "Access your personalized safety plan and coping strategies"},
}

var crisisResources = []model.CrisisResource{
	{Name: "iCALL", Website: "http://icallhelpline.org", Description: "Psychosocial Helpline by TISS", Services: []string{"Crisis counseling", "Emotional support", "Information & referrals"}},
	{Name: "AASRA", Website: "http://www.aasra.info", Description: "Suicide Prevention NGO", Services: []string{"24/7 helpline", "Email support", "Face-to-face counseling"}},
	{Name: "Vandrevala Foundation", Website: "http://www.vandrevalafoundation.com", Description: "Mental Health Support", Services: []string{"Crisis intervention", "Ongoing support", "Referral services"}},
}

var copingStrategies = []string{
	"Take slow, deep breaths - in for 4 counts, out for 6 counts",
	"Ground yourself: name 5 things you see, 4 you hear, 3 you touch",
	"Call someone you trust and tell them how you're feeling",
	"Remove yourself from immediate triggers or stressors",
	"Remember: this feeling is temporary and will pass",
	`Use positive self-talk: "I am safe, I can get through this"`,
}

var warningSigns = model.WarningSigns{
	Immediate: []string{
		"Thoughts of harming yourself or others",
		"Detailed suicide plan",
		"Severe agitation or panic",
		"Complete hopelessness",
		"Psychotic symptoms (hallucinations, delusions)",
	},
	Soon: []string{
		"Persistent feelings of emptiness",
		"Inability to function daily",
		"Severe anxiety or panic attacks",
		"Substance abuse escalation",
		"Social isolation for extended periods",
	},
}
