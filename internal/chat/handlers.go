package chat

import (
	"fmt"
	"strings"
)

// handlerReply is a local handler's output before mood enhancement and
// greeting are applied.
type handlerReply struct {
	Message  string
	Context  string
	FollowUp string
}

// topicHandler is a pure function of the turn; all canned text lives here.
type topicHandler func(message string, analysis Analysis, isContinuing bool) handlerReply

// handlerTable returns the total topic dispatch table. Every declared topic
// must have a handler; the composer validates this at construction so a
// missing handler fails at startup, not mid-turn.
func handlerTable() map[Topic]topicHandler {
	return map[Topic]topicHandler{
		TopicAcademicPressure:   handleAcademicPressure,
		TopicFamilyExpectations: handleFamilyExpectations,
		TopicSocialAnxiety:      handleSocialAnxiety,
		TopicGeneralSadness:     handleGeneralSadness,
		TopicPositiveSharing:    handlePositiveSharing,
		// No dedicated flows exist for these yet; the generic handler
		// carries them.
		TopicRelationshipIssues: handleGeneralConversation,
		TopicCareerConfusion:    handleGeneralConversation,
	}
}

// subjectNames are the school subjects the academic handler can speak to
// specifically.
var subjectNames = []string{"physics", "maths", "chemistry"}

func handleAcademicPressure(message string, analysis Analysis, isContinuing bool) handlerReply {
	lower := strings.ToLower(message)

	for _, subject := range subjectNames {
		if strings.Contains(lower, subject) {
			title := strings.ToUpper(subject[:1]) + subject[1:]
			return handlerReply{
				Message: fmt.Sprintf("%s tough subject है, मैं समझ सकता हूं! 🔬 बहुत सारे students को %s challenging लगती है।\n\n%s के लिए कुछ tips:\n• Concepts को visual करने की कोशिश करें\n• Formula derivation समझें, रटें नहीं\n• Practice problems daily करें\n\nकौन सा %s topic आपको सबसे मुश्किल लग रहा है? 🤔", title, title, title, title),
				Context:  "subject_help",
				FollowUp: "subject_specific",
			}
		}
	}

	if strings.Contains(lower, "burn") && (strings.Contains(lower, "feel") || strings.Contains(lower, "ho raha")) {
		return handlerReply{
			Message:  "Burnout feel करना बहुत common है studies में। आपका body और mind दोनों rest मांग रहे हैं। 😔\n\nBurnout से बचने के लिए:\n• Regular breaks लें (Pomodoro technique try करें)\n• Proper sleep जरूरी है\n• Physical activity include करें\n• Friends/family के साथ time spend करें\n\nक्या आप बहुत लंबे hours continuously study कर रहे हैं? Schedule थोड़ा adjust करना पड़ सकता है। 💆‍♀️",
			Context:  "burnout_support",
			FollowUp: "study_schedule",
		}
	}

	if strings.Contains(lower, "marks") && (strings.Contains(lower, "kam") || strings.Contains(lower, "less")) {
		return handlerReply{
			Message:  "मैं समझ सकता हूं कि marks कम आने से आप upset हो रहे हैं। यह feeling बिल्कुल natural है। 📚\n\nलेकिन याद रखिए:\n• एक exam आपकी पूरी worth define नहीं करती\n• Competitive exams में हजारों students participate करते हैं\n• आपमें बहुत potential है\n\nक्या आप बताना चाहेंगे कि कौन सा subject या topic आपको सबसे ज्यादा challenging लगता है? मैं कुछ effective study strategies suggest कर सकता हूं।",
			Context:  "academic_support",
			FollowUp: "study_strategies",
		}
	}

	return handlerReply{
		Message: "Studies का pressure feel करना normal है। आप अकेले नहीं हैं जो इससे गुजर रहे हैं। 🤗\n\nआपकी academic journey के बारे में और बताइए। कौन से subjects में help चाहिए?",
		Context: "academic_support",
	}
}

func handleFamilyExpectations(message string, analysis Analysis, isContinuing bool) handlerReply {
	return handlerReply{
		Message: "Family expectations का pressure बहुत heavy हो सकता है। Indian families में यह common है लेकिन इससे आपकी feelings कम valid नहीं हो जातीं। 👨‍👩‍👧‍👦\n\nकभी-कभी parents अपने sapne हमारे through पूरे करना चाहते हैं। उनका प्यार है लेकिन pressure overwhelming हो जाता है।\n\nक्या आप बताना चाहेंगे कि exactly क्या expectations हैं जो आपको burden लग रही हैं?",
		Context: "family_understanding",
	}
}

func handleSocialAnxiety(message string, analysis Analysis, isContinuing bool) handlerReply {
	return handlerReply{
		Message: "Social situations में awkward feel करना बहुत common है। आप अकेले नहीं हैं जो यह experience करता है। 😊\n\nConnection बनाना time लेता है, और हर person का अपना pace होता है।\n\nक्या कोई specific social situation है जो आपको particularly challenging लगती है?",
		Context: "social_support",
	}
}

func handleGeneralSadness(message string, analysis Analysis, isContinuing bool) handlerReply {
	return handlerReply{
		Message: "आपकी feelings को acknowledge करना important है। Sadness भी एक valid emotion है। 🤗\n\nकभी-कभी हमें exactly पता नहीं होता कि क्यों upset feel कर रहे हैं, और यह भी okay है।\n\nक्या कोई specific बात है जो आपको disturb कर रही है, या फिर general low feeling है?",
		Context: "emotional_support",
	}
}

func handlePositiveSharing(message string, analysis Analysis, isContinuing bool) handlerReply {
	return handlerReply{
		Message: "यह तो बहुत अच्छी बात है! 🎉 आपकी positivity सुनकर मुझे भी खुशी हुई।\n\nअच्छे moments को celebrate करना जरूरी है। आप बताना चाहेंगे कि क्या खुशी की बात है?",
		Context: "celebration",
	}
}

// handleGeneralConversation is the fallback when no topic matched or the
// matched topic has no dedicated flow. It re-routes obvious academic or
// emotional follow-ups before settling on a listening response.
func handleGeneralConversation(message string, analysis Analysis, isContinuing bool) handlerReply {
	lower := strings.ToLower(message)

	for _, word := range []string{"physics", "maths", "chemistry", "study", "exam", "subject"} {
		if strings.Contains(lower, word) {
			return handleAcademicPressure(message, analysis, isContinuing)
		}
	}
	for _, word := range []string{"sad", "upset", "depressed", "worried", "anxious"} {
		if strings.Contains(lower, word) {
			return handleGeneralSadness(message, analysis, isContinuing)
		}
	}

	if isContinuing {
		if analysis.Emotion != "neutral" {
			return handlerReply{
				Message: fmt.Sprintf("Hmm, I can totally sense that you're feeling %s about this 🤗 Aur you know what? It's completely okay to feel this way.\n\nI'm genuinely listening to everything you're saying. Want to tell me more about what's going on? I'm here for you yaar! 💙", analysis.Emotion),
				Context: "empathetic_listening",
			}
		}
		return handlerReply{
			Message: "I'm really glad you're talking to me about this 😊 Seriously, it means a lot that you trust me enough to share.\n\nWhat's really on your mind today? Kuch bhi ho - studies, family, friends, या just random thoughts. I'm all ears! ✨",
			Context: "active_listening",
		}
	}

	return handlerReply{
		Message: "नमस्ते! मैं Sahara हूं। 🌸 मैं यहां आपकी बात सुनने के लिए हूं।\n\nआप कैसा feel कर रहे हैं आज? कोई भी बात share कर सकते हैं - मैं judge नहीं करूंगा।",
		Context: "greeting",
	}
}
