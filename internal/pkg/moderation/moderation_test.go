package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_AcceptsCleanText(t *testing.T) {
	t.Parallel()

	f := New([]string{"scoundrel", "rascal"}, "Please mind your language!")
	ok, warning := f.Check("A perfectly polite remark")
	assert.True(t, ok)
	assert.Empty(t, warning)
}

func TestCheck_RejectsBannedTerm(t *testing.T) {
	t.Parallel()

	f := New([]string{"scoundrel"}, "Please mind your language!")
	ok, warning := f.Check("You utter scoundrel, you")
	assert.False(t, ok)
	assert.Equal(t, "Please mind your language!", warning)
}

func TestCheck_CaseInsensitive(t *testing.T) {
	t.Parallel()

	f := New([]string{"scoundrel"}, "")
	ok, _ := f.Check("SCOUNDREL!")
	assert.False(t, ok)

	f = New([]string{"SCOUNDREL"}, "")
	ok, _ = f.Check("what a scoundrel")
	assert.False(t, ok)
}

func TestCheck_MatchesInsideWords(t *testing.T) {
	t.Parallel()

	f := New([]string{"rascal"}, "")
	ok, _ := f.Check("rascally behaviour")
	assert.False(t, ok)
}

func TestNew_DropsEmptyTermsAndDefaultsWarning(t *testing.T) {
	t.Parallel()

	f := New([]string{" ", ""}, "")
	ok, _ := f.Check("anything at all")
	assert.True(t, ok)
	assert.Equal(t, DefaultWarning, f.Warning())
}
