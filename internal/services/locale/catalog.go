package locale

import "github.com/mcoot/mindcare/internal/model"

// Table maps translation keys to display text for one language
type Table map[string]string

// Catalog holds the translation table of every language
type Catalog map[model.Language]Table

// DefaultCatalog returns the built-in English and Hindi tables
func DefaultCatalog() Catalog {
	return Catalog{
		model.LanguageEnglish: english(),
		model.LanguageHindi:   hindi(),
	}
}

func english() Table {
	return Table{
		"nav.home":              "Home",
		"nav.dashboard":         "Dashboard",
		"nav.features":          "Features",
		"nav.forum":             "Forum",
		"nav.copilot":           "AI Copilot",
		"nav.resources":         "Resources",
		"nav.contact":           "Contact",
		"nav.profile":           "Profile",
		"nav.login":             "Login",
		"nav.logout":            "Logout",
		"nav.quickHelp":         "Quick Help",
		"nav.booking":           "Book a Counselor",
		"nav.stress":            "Stress Check",
		"nav.language":          "हिन्दी",
		"hero.title":            "Your Mental Wellness Companion",
		"hero.subtitle":         "AI-powered support for student mental health with personalized insights and community support",
		"hero.cta":              "Start Your MindCare Journey",
		"dashboard.title":       "Your Wellness Dashboard",
		"dashboard.mentalScore": "Mental Health Score",
		"dashboard.moodToday":   "How are you feeling today?",
		"dashboard.badges":      "Your Badges",
		"dashboard.moodSaved":   "Mood saved for today",
		"auth.login":            "Login",
		"auth.signup":           "Sign Up",
		"auth.email":            "Email",
		"auth.password":         "Password",
		"auth.confirmPassword":  "Confirm Password",
		"auth.name":             "Full Name",
		"auth.passwordMismatch": "Passwords do not match",
		"auth.signupFailed":     "Email already exists or signup failed",
		"auth.loginFailed":      "Invalid email or password",
		"privacy.banner":        "Your data is encrypted & private",
		"copilot.title":         "AI Mental Health Assistant",
		"copilot.placeholder":   "How can I help you today?",
		"copilot.send":          "Send",
		"mindfulness.title":     "Mindfulness Room",
		"mindfulness.breathe":   "Breathing Exercise",
		"mindfulness.meditate":  "Start Meditation",
		"forum.title":           "Peer Support Forum",
		"forum.post":            "Share your thoughts...",
		"forum.newPost":         "New Post",
		"forum.reply":           "Reply",
		"booking.title":         "Book a Counselor",
		"booking.submit":        "Confirm Booking",
		"booking.confirmed":     "Your session has been booked",
		"stress.title":          "AI Stress Detection",
		"stress.camera":         "Camera Analysis",
		"stress.voice":          "Voice Analysis",
		"stress.file":           "Upload a Recording",
		"emergency.title":       "Emergency Support",
		"emergency.helpline":    "Crisis Helpline: 112",
		"emergency.helplines":   "Emergency Helplines",
		"emergency.actions":     "Quick Actions",
		"emergency.coping":      "Immediate Coping Strategies",
		"emergency.resources":   "Crisis Resources",
		"emergency.warning":     "When to Seek Emergency Help",
		"emergency.call":        "Call",
		"emergency.connecting":  "Connecting to",
		"nav.mindfulness":       "Mindfulness",
		"profile.title":         "My Profile",
		"profile.details":       "Personal Details",
		"profile.contact":       "Emergency Contact",
		"profile.preferences":   "Preferences",
		"profile.save":          "Save",
		"profile.saved":         "Profile updated",
		"resources.title":       "Resource Library",
		"resources.search":      "Search resources",
		"resources.showing":     "Showing %[1]d of %[2]d resources",
		"mindfulness.pattern":   "Follow the 4-4-6 breathing pattern: Inhale for 4 seconds, hold for 4, exhale for 6",
		"mindfulness.guide":     "Meditation Guide",
		"mindfulness.ambience":  "Ambient Sounds",
	}
}

func hindi() Table {
	return Table{
		"nav.home":              "होम",
		"nav.dashboard":         "डैशबोर्ड",
		"nav.features":          "सुविधाएं",
		"nav.forum":             "फोरम",
		"nav.copilot":           "AI सहायक",
		"nav.resources":         "संसाधन",
		"nav.contact":           "संपर्क",
		"nav.profile":           "प्रोफाइल",
		"nav.login":             "लॉगिन",
		"nav.logout":            "लॉगआउट",
		"nav.quickHelp":         "तुरंत सहायता",
		"nav.booking":           "काउंसलर बुक करें",
		"nav.stress":            "तनाव जांच",
		"nav.language":          "English",
		"hero.title":            "आपका मानसिक स्वास्थ्य साथी",
		"hero.subtitle":         "छात्र मानसिक स्वास्थ्य के लिए AI-संचालित सहायता",
		"hero.cta":              "अपनी MindCare यात्रा शुरू करें",
		"dashboard.title":       "आपका स्वास्थ्य डैशबोर्ड",
		"dashboard.mentalScore": "मानसिक स्वास्थ्य स्कोर",
		"dashboard.moodToday":   "आज आप कैसा महसूस कर रहे हैं?",
		"dashboard.badges":      "आपके बैज",
		"auth.login":            "लॉगिन",
		"auth.signup":           "साइन अप",
		"auth.email":            "ईमेल",
		"auth.password":         "पासवर्ड",
		"auth.confirmPassword":  "पासवर्ड की पुष्टि करें",
		"auth.name":             "पूरा नाम",
		"privacy.banner":        "आपका डेटा एन्क्रिप्टेड और निजी है",
		"copilot.title":         "AI मानसिक स्वास्थ्य सहायक",
		"copilot.placeholder":   "आज मैं आपकी कैसे मदद कर सकता हूं?",
		"copilot.send":          "भेजें",
		"mindfulness.title":     "माइंडफुलनेस रूम",
		"mindfulness.breathe":   "सांस लेने का व्यायाम",
		"mindfulness.meditate":  "ध्यान शुरू करें",
		"forum.title":           "साथी सहायता फोरम",
		"forum.post":            "अपने विचार साझा करें...",
		"forum.newPost":         "नई पोस्ट",
		"forum.reply":           "जवाब दें",
		"booking.title":         "काउंसलर बुक करें",
		"booking.submit":        "बुकिंग की पुष्टि करें",
		"stress.title":          "AI तनाव पहचान",
		"emergency.title":       "आपातकालीन सहायता",
		"emergency.helpline":    "संकट हेल्पलाइन: 112",
		"emergency.helplines":   "आपातकालीन हेल्पलाइन",
		"emergency.actions":     "त्वरित कार्य",
		"emergency.coping":      "तुरंत अपनाने योग्य उपाय",
		"emergency.resources":   "संकट संसाधन",
		"emergency.call":        "कॉल करें",
		"nav.mindfulness":       "माइंडफुलनेस",
		"profile.title":         "मेरी प्रोफाइल",
		"profile.details":       "व्यक्तिगत विवरण",
		"profile.contact":       "आपातकालीन संपर्क",
		"profile.preferences":   "प्राथमिकताएं",
		"profile.save":          "सहेजें",
		"resources.title":       "संसाधन पुस्तकालय",
		"mindfulness.guide":     "ध्यान मार्गदर्शिका",
		"emergency.warning":     "आपातकालीन सहायता कब लें",
		"emergency.connecting":  "कनेक्ट हो रहा है",
		"profile.saved":         "प्रोफाइल अपडेट हो गई",
		"resources.search":      "संसाधन खोजें",
		"resources.showing":     "%[2]d में से %[1]d संसाधन दिखाए जा रहे हैं",
		"mindfulness.pattern":   "4-4-6 श्वास पैटर्न अपनाएं: 4 सेकंड सांस लें, 4 रोकें, 6 में छोड़ें",
		"mindfulness.ambience":  "शांत ध्वनियां",
	}
}
