package chat

// Topic is a closed category of concern used to select a response handler.
type Topic string

const (
	TopicAcademicPressure   Topic = "academic_pressure"
	TopicFamilyExpectations Topic = "family_expectations"
	TopicSocialAnxiety      Topic = "social_anxiety"
	TopicGeneralSadness     Topic = "general_sadness"
	TopicPositiveSharing    Topic = "positive_sharing"
	TopicRelationshipIssues Topic = "relationship_issues"
	TopicCareerConfusion    Topic = "career_confusion"
)

// Scoring weights. Empirically tuned against the pattern table below;
// changing any of them is a behavioral change requiring new test baselines.
const (
	keywordWeight = 2
	emotionWeight = 3
	phraseWeight  = 2
)

// PatternEntry maps a topic to its matching signal sets. Matching is
// case-insensitive substring, not tokenized; the tables were tuned against
// that exact behavior.
type PatternEntry struct {
	Topic             Topic
	Keywords          []string
	EmotionIndicators []string
	LanguageMix       []string
	Idioms            []string
}

// contextPatterns is ordered: when two topics score equally, the
// earlier entry wins.
var contextPatterns = []PatternEntry{
	{
		Topic:             TopicAcademicPressure,
		Keywords:          []string{"study", "studies", "exam", "exams", "test", "marks", "grade", "college", "school", "jee", "neet", "boards", "coaching", "rank"},
		EmotionIndicators: []string{"stressed", "pressure", "overwhelmed", "tired", "anxious", "worried", "burnt out", "exhausted", "fed up"},
		LanguageMix:       []string{"padhai", "exam", "marks", "college", "school", "coaching", "rank", "bahut padha", "dimag kharab"},
		Idioms:            []string{"cant take it anymore", "so done with this", "pressure cooker ban gaya hun", "head explode hone wala hai"},
	},
	{
		Topic:             TopicFamilyExpectations,
		Keywords:          []string{"family", "parents", "mummy", "papa", "dad", "mom", "expectations", "disappoint", "fight", "argument"},
		EmotionIndicators: []string{"disappointed", "pressure", "fight", "angry", "sad", "frustrated", "misunderstood", "trapped"},
		LanguageMix:       []string{"ghar mein", "mummy papa", "bolte hain", "sunna padta", "samjhate nahi", "log kya kahenge", "relatives"},
		Idioms:            []string{"they just dont get it", "always on my case", "never happy with anything", "bas taunt karte rehte"},
	},
	{
		Topic:             TopicSocialAnxiety,
		Keywords:          []string{"friends", "social", "people", "talk", "shy", "awkward", "lonely", "party", "group", "hang out"},
		EmotionIndicators: []string{"nervous", "scared", "worried", "uncomfortable", "left out", "weird", "different"},
		LanguageMix:       []string{"dost", "baat karna", "sharma jana", "log", "group mein nahi fit hota", "akela lagta"},
		Idioms:            []string{"i feel so awkward", "dont know what to say", "everyone seems so confident", "main hi ajeeb hun kya"},
	},
	{
		Topic:             TopicGeneralSadness,
		Keywords:          []string{"sad", "down", "low", "empty", "hopeless", "cry", "upset", "depressed", "crying", "tears"},
		EmotionIndicators: []string{"depressed", "lonely", "tired", "worthless", "broken", "numb", "heavy heart"},
		LanguageMix:       []string{"udaas", "rona", "dukhi", "pareshan", "mann nahi kar raha", "dil bhari", "ro raha hun"},
		Idioms:            []string{"everything sucks", "nothing makes me happy", "just want to disappear", "kuch acha nahi lagta"},
	},
	{
		Topic:             TopicPositiveSharing,
		Keywords:          []string{"good", "happy", "better", "success", "achievement", "proud", "excited", "amazing", "awesome", "great"},
		EmotionIndicators: []string{"excited", "grateful", "confident", "optimistic", "thrilled", "pumped", "over the moon"},
		LanguageMix:       []string{"khush", "accha laga", "khushi", "mazaak", "bahut accha", "kamaal", "zabardast"},
		Idioms:            []string{"im so happy", "this is amazing", "cant believe it happened", "feeling on top of world"},
	},
	{
		Topic:             TopicRelationshipIssues,
		Keywords:          []string{"boyfriend", "girlfriend", "crush", "love", "breakup", "relationship", "dating", "propose"},
		EmotionIndicators: []string{"heartbroken", "confused", "rejected", "in love", "nervous", "excited", "hurt"},
		LanguageMix:       []string{"pyar", "dil toot gaya", "propose karu", "reject kar diya", "confused hun"},
		Idioms:            []string{"they dont like me back", "should i tell them", "got friendzoned", "kya karu samajh nahi aa raha"},
	},
	{
		Topic:             TopicCareerConfusion,
		Keywords:          []string{"career", "job", "future", "what to do", "confused", "stream", "branch", "course"},
		EmotionIndicators: []string{"confused", "lost", "scared", "pressured", "uncertain", "worried"},
		LanguageMix:       []string{"kya karu", "samajh nahi aa raha", "future dark lagta", "kuch pata nahi"},
		Idioms:            []string{"no idea what to do", "everyone else seems sorted", "feeling so lost", "koi direction nahi hai"},
	},
}

// concernPatterns tags specific concerns independently of the topic score.
// A message may carry several tags.
var concernPatterns = []struct {
	Concern    string
	Indicators []string
}{
	{Concern: "academic", Indicators: []string{"marks kam", "fail", "competition", "pressure", "study"}},
	{Concern: "family", Indicators: []string{"parents angry", "expectations", "disappointed", "ghar mein"}},
	{Concern: "social", Indicators: []string{"friends", "lonely", "talk nahi kar", "awkward"}},
	{Concern: "emotional", Indicators: []string{"sad", "depressed", "anxious", "worried", "upset"}},
}

// questionIndicators flag a guidance-seeking message.
var questionIndicators = []string{"how", "what", "why", "कैसे", "क्या", "कैसा", "?"}

// negationIndicators flag a struggling user.
var negationIndicators = []string{"not", "no", "nahi", "नहीं", "cant", "unable", "difficult"}

// crisisMarkers force the fixed safety response regardless of everything else.
var crisisMarkers = []string{"suicide", "kill myself", "end it all", "want to die", "मरना चाहता हूं", "जिंदगी से परेशान"}

const crisisMessage = "मैं समझ सकता हूं कि आप बहुत कठिन समय से गुजर रहे हैं। आपकी जिंदगी मायने रखती है। 🤗\n\n🚨 तुरंत मदद:\n• Aasra: 91-9820466726\n• Sneha: 91-44-24640050\n• आप अकेले नहीं हैं।"
