package chat

import (
	"fmt"
	"strings"

	"autocare/internal/config"
	"autocare/internal/metrics"
	"autocare/internal/modules/catalog"
)

type Reply struct {
	Text         string   `json:"text"`
	QuickReplies []string `json:"quick_replies,omitempty"`
}

type Service struct {
	catalog  *catalog.Service
	operator config.OperatorConfig
}

func NewService(cat *catalog.Service, operator config.OperatorConfig) *Service {
	return &Service{catalog: cat, operator: operator}
}

// GenerateReply answers one widget message. The engine is pure keyword
// matching against a fixed table; first match wins.
func (s *Service) GenerateReply(message string) Reply {
	metrics.IncChatMessage()
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case msg == "":
		return s.fallback()

	case isGreeting(msg):
		return Reply{
			Text:         fmt.Sprintf("Hello! Welcome to %s. How can I help you today?", s.operator.Name),
			QuickReplies: defaultQuickReplies,
		}

	case containsAny(msg, "book", "appointment", "schedule"):
		return Reply{
			Text:         "Great, let's get you booked in! Use the booking form to pick a service, date and time. We are closed on Sundays, and our team confirms every booking within 24 hours.",
			QuickReplies: []string{"Our services", "Opening hours"},
		}

	case containsAny(msg, "emergency", "tow", "towing", "breakdown", "broke down"):
		return Reply{
			Text: fmt.Sprintf("If you've broken down, stay safe and call us directly on %s. For life-threatening emergencies always call 000 first.", s.operator.Phone),
		}
	}

	// symptom questions win over service lookups: "grinding brakes" should
	// get the advice answer, not the brake-service price card
	for _, issue := range commonIssues {
		if containsAny(msg, issue.Keywords...) {
			return Reply{
				Text:         issue.Answer,
				QuickReplies: []string{"Book appointment", "Contact us"},
			}
		}
	}

	if svc, ok := s.matchService(msg); ok {
		if containsAny(msg, "price", "cost", "how much", "$", "quote") {
			return Reply{
				Text: fmt.Sprintf("%s: $%.0f-$%.0f, usually takes %s. Want to book it in?",
					svc.Name, svc.PriceMin, svc.PriceMax, svc.Duration),
				QuickReplies: []string{"Book appointment"},
			}
		}
		return Reply{
			Text:         fmt.Sprintf("%s Pricing is $%.0f-$%.0f and it usually takes %s.", svc.Description, svc.PriceMin, svc.PriceMax, svc.Duration),
			QuickReplies: []string{"Book appointment", "Ask about price"},
		}
	}

	switch {
	case containsAny(msg, "service", "services", "offer", "what do you do"):
		names := make([]string, 0, len(s.catalog.Services()))
		for _, svc := range s.catalog.Services() {
			names = append(names, svc.Name)
		}
		return Reply{
			Text:         "We offer: " + strings.Join(names, ", ") + ". Ask me about any of them for pricing and details.",
			QuickReplies: []string{"Book appointment"},
		}

	case containsAny(msg, "hours", "open", "close", "closing", "when are you"):
		return Reply{Text: "Our opening hours are " + openingHours + "."}

	case containsAny(msg, "where", "address", "location", "directions", "find you"):
		return Reply{Text: "You'll find us at " + s.operator.Address + "."}

	case containsAny(msg, "phone", "call", "contact", "email", "reach"):
		return Reply{
			Text: fmt.Sprintf("You can reach us on %s or %s. %s", s.operator.Phone, s.operator.Email, "We reply to emails within one business day."),
		}

	case containsAny(msg, "thank", "thanks", "cheers", "ta "):
		return Reply{Text: "You're welcome! Anything else I can help with?", QuickReplies: defaultQuickReplies}

	case containsAny(msg, "bye", "goodbye", "see you", "later"):
		return Reply{Text: "Thanks for stopping by. Safe driving!"}
	}

	return s.fallback()
}

func (s *Service) fallback() Reply {
	return Reply{
		Text:         "I'm not sure I understood that. I can help with our services, pricing, opening hours or booking an appointment.",
		QuickReplies: defaultQuickReplies,
	}
}

func (s *Service) matchService(msg string) (catalog.ServiceInfo, bool) {
	for slug, aliases := range serviceAliases {
		for _, alias := range aliases {
			if strings.Contains(msg, alias) {
				return s.catalog.ServiceBySlug(slug)
			}
		}
	}
	return catalog.ServiceInfo{}, false
}

var greetings = []string{"hello", "hi", "hey", "g'day", "good morning", "good afternoon"}

// isGreeting matches only at the start of the message, so "my vehicle won't
// start" is not hijacked by the "hi" in "vehicle".
func isGreeting(msg string) bool {
	for _, g := range greetings {
		if strings.HasPrefix(msg, g) {
			return true
		}
	}
	return false
}

func containsAny(msg string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
