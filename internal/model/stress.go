package model

// AnalysisMode selects the input used by a stress check
type AnalysisMode string

const (
	AnalysisCamera AnalysisMode = "camera"
	AnalysisVoice  AnalysisMode = "voice"
	AnalysisFile   AnalysisMode = "file"
)

// Device is a capability a stress check may need
type Device string

const (
	DeviceNone       Device = ""
	DeviceCamera     Device = "camera"
	DeviceMicrophone Device = "microphone"
)

// FacialIndicators are the canned camera readings
type FacialIndicators struct {
	EyeStrain     int    `json:"eyeStrain"`
	FacialTension int    `json:"facialTension"`
	OverallMood   string `json:"overallMood"`
}

// VoiceIndicators are the canned voice readings
type VoiceIndicators struct {
	ToneStress    int    `json:"toneStress"`
	SpeechRate    string `json:"speechRate"`
	EmotionalTone string `json:"emotionalTone"`
}

// StressResult is the outcome of a stress check. Substituted is set when
// the device was unavailable and a canned result was used instead.
type StressResult struct {
	Mode             AnalysisMode     `json:"mode"`
	StressLevel      int              `json:"stressLevel"`
	Emotion          string           `json:"emotion"`
	Confidence       int              `json:"confidence"`
	Recommendations  []string         `json:"recommendations"`
	FacialIndicators FacialIndicators `json:"facialIndicators"`
	VoiceIndicators  VoiceIndicators  `json:"voiceIndicators"`
	Substituted      bool             `json:"substituted"`
}

// StressBand buckets a stress level for display: low < 30 <= moderate < 60 <= high
func StressBand(level int) string {
	switch {
	case level < 30:
		return "low"
	case level < 60:
		return "moderate"
	default:
		return "high"
	}
}
