package models

import "testing"

func TestSubjectField(t *testing.T) {
	cases := map[string]string{
		ReactionKindVideo:   "video",
		ReactionKindComment: "comment",
		ReactionKindTweet:   "tweet",
		"playlist":          "",
		"":                  "",
	}
	for kind, want := range cases {
		if got := SubjectField(kind); got != want {
			t.Errorf("SubjectField(%q) = %q, muốn %q", kind, got, want)
		}
	}
}
