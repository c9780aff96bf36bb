package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"autocare/internal/config"
	"autocare/internal/modules/catalog"
)

func newTestService() *Service {
	return NewService(catalog.NewService(), config.OperatorConfig{
		Name:    "AutoCare Mechanic",
		Email:   "bookings@autocare.com.au",
		Phone:   "02 9555 0123",
		Address: "12 Example St, Sydney NSW",
	})
}

func TestGenerateReply_Greeting(t *testing.T) {
	s := newTestService()

	reply := s.GenerateReply("G'day!")
	assert.Contains(t, reply.Text, "Welcome to AutoCare Mechanic")
	assert.NotEmpty(t, reply.QuickReplies)
}

func TestGenerateReply_Booking(t *testing.T) {
	s := newTestService()

	reply := s.GenerateReply("I'd like to book an appointment")
	assert.Contains(t, reply.Text, "booking form")
	assert.Contains(t, reply.Text, "Sundays")
}

func TestGenerateReply_Emergency(t *testing.T) {
	s := newTestService()

	reply := s.GenerateReply("my car broke down, can you tow me?")
	assert.Contains(t, reply.Text, "02 9555 0123")
	assert.Contains(t, reply.Text, "000")
}

func TestGenerateReply_ServicePrice(t *testing.T) {
	s := newTestService()

	reply := s.GenerateReply("how much is an oil change?")
	assert.Contains(t, reply.Text, "$")
	assert.Contains(t, reply.Text, "Oil Change")
}

func TestGenerateReply_ServiceDescription(t *testing.T) {
	s := newTestService()

	reply := s.GenerateReply("tell me about your oil change")
	assert.NotContains(t, reply.Text, "not sure I understood")
	assert.Contains(t, reply.QuickReplies, "Book appointment")
}

func TestGenerateReply_SymptomBeatsServiceLookup(t *testing.T) {
	s := newTestService()

	// "brakes" alone would match the brake service card; the grinding
	// symptom answer must win
	reply := s.GenerateReply("my brakes are grinding when I stop")
	assert.NotContains(t, reply.Text, "$")
}

func TestGenerateReply_CheckEngineLight(t *testing.T) {
	s := newTestService()

	reply := s.GenerateReply("my check engine light came on yesterday")
	assert.NotContains(t, reply.Text, "not sure I understood")
	assert.Contains(t, reply.QuickReplies, "Book appointment")
}

func TestGenerateReply_GreetingOnlyAtMessageStart(t *testing.T) {
	s := newTestService()

	// "vehicle" and "this" contain "hi"; the greeting must not swallow them
	reply := s.GenerateReply("my vehicle won't start")
	assert.NotContains(t, reply.Text, "Welcome to")
	assert.Contains(t, reply.Text, "battery")

	reply = s.GenerateReply("how much to fix this overheating engine")
	assert.NotContains(t, reply.Text, "Welcome to")
	assert.Contains(t, reply.Text, "coolant")
}

func TestGenerateReply_ServicesList(t *testing.T) {
	s := newTestService()

	reply := s.GenerateReply("what services do you offer?")
	assert.Contains(t, reply.Text, "We offer:")
	assert.Contains(t, reply.Text, "Oil Change")
}

func TestGenerateReply_HoursLocationContact(t *testing.T) {
	s := newTestService()

	assert.Contains(t, s.GenerateReply("when are you open?").Text, "opening hours")
	assert.Contains(t, s.GenerateReply("where can I find you?").Text, "12 Example St")
	assert.Contains(t, s.GenerateReply("how do I contact you?").Text, "bookings@autocare.com.au")
}

func TestGenerateReply_Fallback(t *testing.T) {
	s := newTestService()

	for _, msg := range []string{"", "xyzzy", "quantum flux capacitor"} {
		reply := s.GenerateReply(msg)
		assert.True(t, strings.Contains(reply.Text, "not sure I understood"), msg)
		assert.NotEmpty(t, reply.QuickReplies)
	}
}

func TestGenerateReply_ThanksAndBye(t *testing.T) {
	s := newTestService()

	assert.Contains(t, s.GenerateReply("thanks mate").Text, "You're welcome")
	assert.Contains(t, s.GenerateReply("bye").Text, "Safe driving")
}
