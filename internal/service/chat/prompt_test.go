package chat_test

import (
	"strings"
	"testing"

	"github.com/jwhitfield/careersite/backend/internal/model/profile"
	"github.com/jwhitfield/careersite/backend/internal/model/session"
	chat "github.com/jwhitfield/careersite/backend/internal/service/chat"
)

func TestComposeIdempotent(t *testing.T) {
	bundle := profile.Seed()
	visitor := &session.Visitor{Name: "Dana", Role: "recruiter", Purpose: "hiring for a platform role"}

	first := chat.Compose(bundle, visitor)
	second := chat.Compose(bundle, visitor)

	if first != second {
		t.Fatal("expected byte-identical output for identical inputs")
	}
}

func TestComposeGatedSubstitutesVisitorFields(t *testing.T) {
	bundle := profile.Seed()
	visitor := &session.Visitor{Name: "Dana Obi", Role: "recruiter", Purpose: "hiring for a platform role"}

	prompt := chat.Compose(bundle, visitor)

	for _, want := range []string{"Dana Obi", "recruiter", "hiring for a platform role"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if !strings.Contains(prompt, bundle.RolePolicies["recruiter"]) {
		t.Fatal("prompt missing recruiter policy")
	}
	if strings.Contains(prompt, "{{") {
		t.Fatal("unsubstituted placeholder left in prompt")
	}
}

func TestComposeUnknownRoleUsesDefaultPolicy(t *testing.T) {
	bundle := profile.Seed()
	visitor := &session.Visitor{Name: "Sam", Role: "astronaut", Purpose: "curiosity"}

	prompt := chat.Compose(bundle, visitor)

	if !strings.Contains(prompt, bundle.DefaultPolicy) {
		t.Fatal("expected default policy for unrecognized role")
	}
}

func TestComposeMissingFieldsSubstituteEmpty(t *testing.T) {
	bundle := profile.Seed()
	visitor := &session.Visitor{Name: "Sam"}

	prompt := chat.Compose(bundle, visitor)

	if strings.Contains(prompt, "{{") {
		t.Fatal("unsubstituted placeholder left in prompt")
	}
	if !strings.Contains(prompt, "Sam") {
		t.Fatal("prompt missing visitor name")
	}
}

func TestComposeUngatedIncludesGateInstruction(t *testing.T) {
	bundle := profile.Seed()

	prompt := chat.Compose(bundle, nil)

	if !strings.Contains(prompt, bundle.GateInstruction) {
		t.Fatal("ungated prompt missing gate instruction")
	}
}
