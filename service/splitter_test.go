package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docassist/docassist-be/service"
)

func TestSplitSentences_Basic(t *testing.T) {
	sentences := service.SplitSentences("A. B. C.")

	assert.Equal(t, []string{"A.", "B.", "C."}, sentences)
}

func TestSplitSentences_MixedPunctuation(t *testing.T) {
	sentences := service.SplitSentences("Is it done? Yes! It works.\nGood.")

	assert.Equal(t, []string{"Is it done?", "Yes!", "It works.", "Good."}, sentences)
}

func TestSplitSentences_NoTerminatorKeepsText(t *testing.T) {
	sentences := service.SplitSentences("no punctuation at all")

	assert.Equal(t, []string{"no punctuation at all"}, sentences)
}

func TestSplitSentences_Empty(t *testing.T) {
	assert.Empty(t, service.SplitSentences(""))
	assert.Empty(t, service.SplitSentences("   "))
}
