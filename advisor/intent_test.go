package advisor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheKalyaniMohite/TableGrapeAgent/advisor"
)

func TestIsGreeting(t *testing.T) {
	assert.True(t, advisor.IsGreeting("hi"))
	assert.True(t, advisor.IsGreeting("  Hello  "))
	assert.True(t, advisor.IsGreeting("hey there"))
	assert.True(t, advisor.IsGreeting("नमस्ते"))
	assert.True(t, advisor.IsGreeting("hola"))
	assert.True(t, advisor.IsGreeting("नमस्कार"))
	assert.True(t, advisor.IsGreeting("hello agent"))

	assert.False(t, advisor.IsGreeting(""))
	assert.False(t, advisor.IsGreeting("my vines have powdery mildew"))
	// long messages go to the model even when they start with a greeting
	assert.False(t, advisor.IsGreeting("hello, the canopy on block two looks off"))
}

func TestIsAcknowledgement(t *testing.T) {
	assert.True(t, advisor.IsAcknowledgement("ok"))
	assert.True(t, advisor.IsAcknowledgement("Thanks"))
	assert.True(t, advisor.IsAcknowledgement("👍"))

	assert.False(t, advisor.IsAcknowledgement(""))
	assert.False(t, advisor.IsAcknowledgement("ok but what about the rain"))
}

func TestIsWhatsNew(t *testing.T) {
	assert.True(t, advisor.IsWhatsNew("what's new"))
	assert.True(t, advisor.IsWhatsNew("Whats new?"))
	assert.True(t, advisor.IsWhatsNew("anything new"))

	assert.False(t, advisor.IsWhatsNew(""))
	assert.False(t, advisor.IsWhatsNew("when is harvest"))
}

func TestCannedRepliesCoverLanguages(t *testing.T) {
	for _, lang := range []string{"en", "hi", "es", "mr", "unknown"} {
		assert.NotEmpty(t, advisor.GreetingReply(lang), lang)
		assert.NotEmpty(t, advisor.AckReply(lang), lang)
		assert.NotEmpty(t, advisor.WhatsNewReply(lang), lang)
		assert.NotEmpty(t, advisor.FallbackReply(lang), lang)
	}
	// unknown languages fall back to English
	assert.Equal(t, advisor.FallbackReply("en"), advisor.FallbackReply("unknown"))
}
