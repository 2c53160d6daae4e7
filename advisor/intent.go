package advisor

import "strings"

// Intent shortcuts keep trivial messages out of the model: greetings,
// short acknowledgements and "what's new" all get canned replies in
// the farm's language.

const shortMessageMax = 20

var greetings = map[string]struct{}{
	// English
	"hi": {}, "hello": {}, "hey": {}, "namaste": {}, "good morning": {},
	"good evening": {}, "good afternoon": {}, "good night": {}, "greetings": {},
	"hi there": {}, "hey there": {},
	// Hindi
	"हाय": {}, "नमस्ते": {}, "प्रणाम": {},
	// Spanish
	"hola": {}, "buenos días": {}, "buenas tardes": {}, "buenas noches": {}, "saludos": {},
	// Marathi
	"नमस्कार": {}, "हॅलो": {},
}

var acknowledgements = map[string]struct{}{
	"ok": {}, "okay": {}, "kk": {}, "k": {}, "sure": {}, "cool": {},
	"great": {}, "nice": {}, "thanks": {}, "thank you": {}, "thx": {},
	"ty": {}, "👍": {}, "👌": {}, "hmm": {}, "hmmm": {}, "yes": {}, "yep": {},
}

var whatsNewPhrases = map[string]struct{}{
	"what's new": {}, "whats new": {}, "what is new": {}, "update": {},
	"updates": {}, "anything new": {}, "what happened": {}, "what changed": {},
}

// IsGreeting reports whether the text is a short greeting in any of
// the supported languages.
func IsGreeting(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" || len([]rune(normalized)) > shortMessageMax {
		return false
	}
	if _, ok := greetings[normalized]; ok {
		return true
	}
	for g := range greetings {
		if strings.HasPrefix(normalized, g+" ") {
			return true
		}
	}
	return false
}

// IsAcknowledgement reports whether the text is short small talk.
func IsAcknowledgement(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" || len([]rune(normalized)) > shortMessageMax {
		return false
	}
	_, ok := acknowledgements[normalized]
	return ok
}

// IsWhatsNew reports whether the text asks for updates.
func IsWhatsNew(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return false
	}
	if _, ok := whatsNewPhrases[normalized]; ok {
		return true
	}
	return strings.HasPrefix(normalized, "what's new") || strings.HasPrefix(normalized, "whats new")
}

// GreetingReply returns a friendly greeting with starter options.
func GreetingReply(lang string) string {
	switch lang {
	case "hi":
		return "नमस्ते! मैं TableGrape Agent हूं, आपकी मदद करने के लिए यहां हूं।\n\nआज मैं आपकी कैसे मदद कर सकता हूं?\n\n• आज की फार्म योजना देखें\n• कोई समस्या रिपोर्ट करें (दरारें / फफूंद / धूप से जलना)\n• मौसम के बारे में पूछें और क्या करना है"
	case "es":
		return "¡Hola! Soy TableGrape Agent, aquí para ayudarte.\n\n¿Cómo puedo ayudarte hoy?\n\n• Ver el plan de la granja de hoy\n• Reportar un problema (grietas / mildiu / quemaduras solares)\n• Preguntar sobre el clima y qué hacer"
	case "mr":
		return "नमस्कार! मी TableGrape Agent आहे, तुमची मदत करण्यासाठी येथे आहे.\n\nआज मी तुमची कशी मदत करू शकतो?\n\n• आजची फार्म योजना पहा\n• समस्या नोंदवा (क्रॅक / मिल्ड्यू / सनबर्न)\n• हवामानाबद्दल विचारा आणि काय करावे"
	default:
		return "Hello! I'm TableGrape Agent, here to help you.\n\nHow can I help you today?\n\n• Check today's farm plan\n• Report an issue (cracks / mildew / sunburn)\n• Ask about weather and what to do"
	}
}

// AckReply returns a short follow-up for acknowledgements.
func AckReply(lang string) string {
	switch lang {
	case "hi":
		return "ठीक है। मौसम देखना चाहेंगे, कोई समस्या बताना चाहेंगे, या आज का काम प्लान करना चाहेंगे?"
	case "es":
		return "Entendido. ¿Quieres revisar el clima, reportar un problema o planificar el trabajo de hoy?"
	case "mr":
		return "ठीक आहे. हवामान पाहू इच्छिता, समस्या नोंदवू इच्छिता, किंवा आजचे काम प्लॅन करू इच्छिता?"
	default:
		return "Got it. Want to check weather, report an issue, or plan today's work?"
	}
}

// WhatsNewReply lists what the assistant can do.
func WhatsNewReply(lang string) string {
	switch lang {
	case "hi":
		return "यहाँ क्या कर सकते हैं:\n\n• साप्ताहिक सलाह देखें\n• फोटो स्कैन करें\n• कोई सवाल पूछें"
	case "es":
		return "Aquí está lo que puedo hacer:\n\n• Ver consejos semanales\n• Escanear una foto\n• Hacer una pregunta"
	case "mr":
		return "येथे काय करू शकतो:\n\n• साप्ताहिक सल्ला पहा\n• फोटो स्कॅन करा\n• प्रश्न विचारा"
	default:
		return "Here's what I can do:\n\n• Get weekly advice\n• Scan a photo\n• Ask a question"
	}
}

// FallbackReply is returned when the model is unavailable or errors.
func FallbackReply(lang string) string {
	switch lang {
	case "hi":
		return "क्षमा करें, AI सहायक अभी उपलब्ध नहीं है। कृपया अपने स्थानीय कृषि अधिकारी से सलाह लें।"
	case "es":
		return "Lo siento, el asistente de IA no está disponible en este momento. Por favor, consulte con su oficial agrícola local."
	case "mr":
		return "क्षमा करा, AI सहाय्यक आत्ता उपलब्ध नाही. कृपया आपल्या स्थानिक कृषी अधिकाऱ्याशी सल्ला घ्या."
	default:
		return "I'm sorry, the AI assistant is not available right now. Please consult with your local agriculture officer."
	}
}
