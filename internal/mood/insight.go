package mood

import "fmt"

var intensityWords = map[int]string{
	1: "बहुत कम",
	2: "कम",
	3: "ठीक-ठाक",
	4: "अच्छा",
	5: "बहुत अच्छा",
}

var (
	upliftedLabels = map[string]bool{"happy": true, "excited": true, "grateful": true}
	strainedLabels = map[string]bool{"sad": true, "stressed": true, "anxious": true}
	agitatedLabels = map[string]bool{"angry": true, "frustrated": true}
)

// Insight returns a short personalized acknowledgement for a freshly
// tracked mood. The intensity scale here is the check-in widget's 1-5,
// not the 1-10 scale Sample uses.
func Insight(label string, intensity int) string {
	word, ok := intensityWords[intensity]
	if !ok {
		word = intensityWords[3]
	}
	switch {
	case upliftedLabels[label]:
		return fmt.Sprintf("खुशी देखकर अच्छा लगा! आपका मूड %s है। इस positive energy को बनाए रखें! 😊", word)
	case strainedLabels[label]:
		return fmt.Sprintf("समझ सकते हैं कि आप %s feel कर रहे हैं। ये normal है। थोड़ी deep breathing try करें या मुझसे बात करें। 💙", label)
	case agitatedLabels[label]:
		return "गुस्सा आना बिल्कुल normal है। थोड़ा time लें, कुछ देर walk करें या music सुनें। मैं यहाँ हूँ अगर बात करनी हो। 🌱"
	default:
		return fmt.Sprintf("आपका आज का मूड: %s। धन्यवाद कि आपने अपनी भावनाओं को साझा किया। हर दिन अलग होता है! 🌟", label)
	}
}
