package config

// Default returns the built-in lexicon set. Callers must not mutate the
// returned slices; construct a fresh copy via Load or literal values when
// experimenting with alternates.
func Default() Lexicons {
	return Lexicons{
		Stopwords: []string{
			"the", "and", "that", "have", "for", "not", "with", "you",
			"this", "but", "his", "from", "they", "say", "her", "she",
			"will", "one", "all", "would", "there", "their", "what",
			"out", "about", "who", "get", "which", "when", "make",
			"can", "like", "time", "just", "him", "know", "take",
			"people", "into", "year", "your", "good", "some", "could",
			"them", "see", "other", "than", "then", "now", "look",
			"only", "come", "its", "over", "think", "also", "back",
			"after", "use", "two", "how", "our", "work",
		},
		CapitalizedDenylist: []string{
			"The", "This", "That", "With", "From", "They", "Have",
			"Will", "Your", "About", "When", "Where", "What", "Which",
			"While", "Our", "And", "But", "For", "Are",
		},
		Topics: []Category{
			{Name: "Products & Services", Keywords: []string{"product", "service", "serve", "solution", "offer", "provide"}},
			{Name: "Quality & Excellence", Keywords: []string{"quality", "best", "excellent", "premium", "superior"}},
			{Name: "Customer Experience", Keywords: []string{"customer", "client", "experience", "satisfaction", "support"}},
			{Name: "Innovation & Technology", Keywords: []string{"innovation", "technology", "digital", "modern", "advanced"}},
			{Name: "Trust & Reliability", Keywords: []string{"trust", "reliable", "professional", "experienced", "certified"}},
			{Name: "Growth & Success", Keywords: []string{"growth", "success", "achieve", "improve", "results"}},
		},
		Sentiment: Sentiment{
			Positive: []string{
				"amazing", "excellent", "great", "fantastic", "wonderful",
				"best", "love", "perfect", "awesome", "outstanding",
				"incredible", "superior", "exceptional", "brilliant",
				"remarkable", "quality", "professional", "trusted",
				"innovative", "success",
			},
			Negative: []string{
				"bad", "terrible", "awful", "horrible", "worst",
				"hate", "poor", "disappointing", "failure", "problem",
				"issue", "difficult", "wrong", "broken", "expensive",
			},
			Emotional: []string{
				"excited", "passionate", "inspired", "proud", "confident",
				"happy", "thrilled", "delighted", "grateful", "motivated",
			},
		},
		Adjectives: []string{
			"amazing", "excellent", "great", "best", "quality",
			"professional", "innovative", "reliable", "trusted",
			"experienced", "fresh", "authentic", "premium", "superior",
			"outstanding", "exceptional", "unique", "modern",
			"advanced", "perfect",
		},
		ActionVerbs: []string{
			"provide", "deliver", "create", "build", "develop",
			"offer", "serve", "help", "support", "transform",
			"improve", "achieve", "discover", "explore", "learn",
			"grow", "connect", "engage", "visit", "book",
		},
		BrandValues: []Category{
			{Name: "Quality", Keywords: []string{"quality", "excellence", "best", "superior", "premium"}},
			{Name: "Innovation", Keywords: []string{"innovation", "innovative", "technology", "modern", "cutting-edge"}},
			{Name: "Trust", Keywords: []string{"trust", "reliable", "honest", "transparent", "integrity"}},
			{Name: "Customer Focus", Keywords: []string{"customer", "client", "service", "satisfaction", "care"}},
			{Name: "Expertise", Keywords: []string{"expert", "professional", "experienced", "skilled", "knowledge"}},
			{Name: "Sustainability", Keywords: []string{"sustainable", "green", "eco", "environment", "responsible"}},
			{Name: "Community", Keywords: []string{"community", "local", "together", "family", "neighborhood"}},
			{Name: "Growth", Keywords: []string{"growth", "success", "improve", "achieve", "progress"}},
		},
		CTATerms: []string{
			"book", "buy", "call", "contact", "discover", "download",
			"explore", "get started", "join", "learn more", "order",
			"register", "shop", "sign up", "subscribe", "visit",
		},
		FormalWords: []string{
			"furthermore", "moreover", "therefore", "consequently",
			"nevertheless", "accordingly", "thus", "regarding",
		},
		CasualWords: []string{
			"hey", "awesome", "cool", "stuff", "guys", "gonna",
			"wanna", "yeah",
		},
		Tones: []Category{
			{Name: "confident", Keywords: []string{"confident", "proven", "guarantee", "assured", "certain"}},
			{Name: "helpful", Keywords: []string{"help", "support", "assist", "guide", "serve"}},
			{Name: "professional", Keywords: []string{"professional", "expert", "certified", "qualified", "industry"}},
			{Name: "friendly", Keywords: []string{"friendly", "welcome", "enjoy", "happy", "warm"}},
			{Name: "authoritative", Keywords: []string{"leading", "authority", "premier", "foremost", "established"}},
			{Name: "innovative", Keywords: []string{"innovative", "innovation", "cutting-edge", "pioneering", "modern"}},
		},
		Traits: []Category{
			{Name: "Professional", Keywords: []string{"professional", "expert", "quality", "business", "industry", "certified"}},
			{Name: "Friendly", Keywords: []string{"friendly", "welcome", "warm", "happy", "enjoy", "together"}},
			{Name: "Innovative", Keywords: []string{"innovative", "innovation", "technology", "modern", "creative", "pioneering"}},
			{Name: "Trustworthy", Keywords: []string{"trust", "reliable", "honest", "proven", "secure", "guarantee"}},
			{Name: "Energetic", Keywords: []string{"energy", "exciting", "dynamic", "vibrant", "active", "passionate"}},
			{Name: "Sophisticated", Keywords: []string{"elegant", "luxury", "premium", "refined", "exclusive", "sophisticated"}},
			{Name: "Caring", Keywords: []string{"care", "support", "help", "community", "family", "compassion"}},
			{Name: "Bold", Keywords: []string{"bold", "daring", "fearless", "strong", "powerful", "confident"}},
		},
		// "The Regular Guy" is declared first: with strict-greater
		// selection it wins every tie, including the all-zero corpus.
		Archetypes: []Category{
			{Name: "The Regular Guy", Keywords: []string{"friendly", "honest", "authentic", "practical", "everyday", "real", "down-to-earth"}},
			{Name: "The Innocent", Keywords: []string{"simple", "pure", "optimistic", "happy", "clean", "wholesome", "safe"}},
			{Name: "The Explorer", Keywords: []string{"adventure", "discover", "explore", "freedom", "journey", "experience", "wander"}},
			{Name: "The Sage", Keywords: []string{"wisdom", "knowledge", "expert", "insight", "understanding", "truth", "learn"}},
			{Name: "The Hero", Keywords: []string{"courage", "victory", "overcome", "achieve", "strong", "determination", "champion"}},
			{Name: "The Outlaw", Keywords: []string{"rebel", "different", "disrupt", "revolutionary", "break", "wild", "change"}},
			{Name: "The Magician", Keywords: []string{"transform", "vision", "imagine", "dream", "magic", "possibility", "wonder"}},
			{Name: "The Lover", Keywords: []string{"passion", "love", "beauty", "desire", "intimate", "elegant", "romantic"}},
			{Name: "The Jester", Keywords: []string{"fun", "humor", "play", "enjoy", "laugh", "entertaining", "lively"}},
			{Name: "The Caregiver", Keywords: []string{"care", "protect", "nurture", "help", "comfort", "compassion", "devoted"}},
			{Name: "The Creator", Keywords: []string{"create", "design", "build", "craft", "imagination", "original", "artistic"}},
			{Name: "The Ruler", Keywords: []string{"leader", "luxury", "exclusive", "control", "authority", "prestige", "command"}},
		},
		Voices: []Category{
			{Name: "conversational", Keywords: []string{"chat", "talk", "share", "simple", "easy"}},
			{Name: "authoritative", Keywords: []string{"leading", "expert", "proven", "authority", "trusted"}},
			{Name: "empathetic", Keywords: []string{"understand", "care", "listen", "support", "feel"}},
			{Name: "energetic", Keywords: []string{"exciting", "dynamic", "vibrant", "passionate", "energy"}},
			{Name: "sophisticated", Keywords: []string{"elegant", "refined", "luxury", "premium", "exclusive"}},
			{Name: "approachable", Keywords: []string{"friendly", "welcome", "easy", "open", "relaxed", "warm"}},
		},
	}
}
