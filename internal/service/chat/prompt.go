package chat

import (
	"strings"

	"github.com/jwhitfield/careersite/backend/internal/model/profile"
	"github.com/jwhitfield/careersite/backend/internal/model/session"
)

// Compose builds the system prompt from the bundle and an optional visitor.
// Pure and deterministic: identical inputs produce byte-identical output.
func Compose(bundle *profile.Bundle, visitor *session.Visitor) string {
	var b strings.Builder

	for _, section := range bundle.SystemSections {
		b.WriteString(section)
		b.WriteString("\n\n")
	}
	for _, section := range bundle.DeveloperSections {
		b.WriteString(section)
		b.WriteString("\n\n")
	}

	if visitor == nil {
		b.WriteString(bundle.GateInstruction)
		return b.String()
	}

	ack := strings.NewReplacer(
		"{{visitor_name}}", visitor.Name,
		"{{visitor_role}}", visitor.Role,
		"{{visitor_purpose}}", visitor.Purpose,
	).Replace(bundle.AckTemplate)
	b.WriteString(ack)
	b.WriteString("\n\n")
	b.WriteString(bundle.Policy(visitor.Role))

	return b.String()
}
