package constant

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
	MessageRoleSystem    = "system"

	// HistoryWindowSize bounds how many trailing messages of a conversation
	// enter the generation context. Older messages are silently excluded.
	HistoryWindowSize = 10

	// SearchMatchCount is the top-K passed to vector search per turn.
	SearchMatchCount = 5

	// DisplaySimilarityThreshold is presentation policy only: sources below it
	// are hidden from API consumers, but the search layer always returns the
	// full ranked list.
	DisplaySimilarityThreshold = 0.3

	DefaultCountry = "ghana"

	DefaultConversationTitle = "New Chat"

	CompletionMaxTokens   = 2048
	CompletionTemperature = 0.7
)

// ChatSystemPromptV1 is the static instruction block for the constitutional
// assistant. Retrieved passages are appended to it as extra grounding context.
const ChatSystemPromptV1 = `You are a legal assistant specializing in constitutional law.

Your role:
- Answer questions about the constitution accurately
- Cite specific Articles, Chapters, and Sections when relevant
- Explain legal concepts in simple, clear language

Guidelines:
- Always reference the constitution when applicable
- If unsure, say so rather than making up information
- Keep answers focused and concise

BASIC FACTS:
- The Constitution of Ghana has 26 Chapters and 299 Articles
- It also has a Preamble and 36 Transitional Provisions
- It came into force on January 7, 1993`
