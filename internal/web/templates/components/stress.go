package components

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// StressResult renders the outcome of a stress check
func StressResult(result *model.StressResult) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		if result == nil {
			return
		}
		band := model.StressBand(result.StressLevel)
		m.Printf(`<section class="stress-result" data-mode="%s">`, result.Mode)
		if result.Substituted {
			m.Raw(`<p class="notice substituted">Device access was unavailable, showing a sample analysis.</p>`)
		}
		m.Printf(`<p class="stress-level stress-%s">Stress level: <strong>%d%%</strong> (%s)</p>`, band, result.StressLevel, band)
		m.Printf(`<p class="emotion">Emotion: <strong>%s</strong></p>`, result.Emotion)
		m.Printf(`<p class="confidence">Confidence: %d%%</p>`, result.Confidence)

		switch result.Mode {
		case model.AnalysisCamera:
			f := result.FacialIndicators
			m.Printf(`<dl class="indicators"><dt>Eye strain</dt><dd>%d%%</dd><dt>Facial tension</dt><dd>%d%%</dd><dt>Overall mood</dt><dd>%s</dd></dl>`,
				f.EyeStrain, f.FacialTension, f.OverallMood)
		case model.AnalysisVoice:
			v := result.VoiceIndicators
			m.Printf(`<dl class="indicators"><dt>Tone stress</dt><dd>%d%%</dd><dt>Speech rate</dt><dd>%s</dd><dt>Emotional tone</dt><dd>%s</dd></dl>`,
				v.ToneStress, v.SpeechRate, v.EmotionalTone)
		}

		m.Raw(`<ul class="recommendations">`)
		for _, rec := range result.Recommendations {
			m.Printf(`<li>%s</li>`, rec)
		}
		m.Raw(`</ul></section>`)
	})
}
