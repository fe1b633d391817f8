// Package outreach renders personalized cold emails for job outreach.
package outreach

import (
	"fmt"
	"math/rand"
	"strings"
	"text/template"
)

// Params feeds one email rendering.
type Params struct {
	RecipientName  string
	RecipientRole  string
	Company        string
	JobTitle       string
	JobDescription string
	SenderName     string
	Experience     string // e.g. "6 years"
	Skills         []string
	ResumeURL      string
}

// Openings rotated across generated emails. Selection is the one
// nondeterministic step in generation; tests pin it via NewWithOpening.
var openings = []string{
	"I've been following %s's work and am impressed by your commitment to innovation.",
	"%s's reputation for technical excellence and collaborative culture really resonates with me.",
	"I've been excited about %s's recent developments and would love to contribute to your mission.",
}

var coldEmailTmpl = template.Must(template.New("cold").Parse(`Hi {{.RecipientName}},

I hope this email finds you well. I came across the {{.JobTitle}} position at {{.Company}} and was immediately drawn to the opportunity.

{{.Opening}}

With my background in {{.Experience}} and expertise in {{.KeySkills}}, I believe I could contribute meaningfully to your team. {{.ValueProp}}

I'd love to learn more about the role and discuss how my experience aligns with {{.Company}}'s goals. Would you be open to a brief conversation?
{{if .ResumeURL}}
I've attached my resume for your review: {{.ResumeURL}}
{{end}}
Thank you for your time and consideration.

Best regards,
{{.SenderName}}

---
This email was sent on behalf of {{.SenderName}} by JobBuddy. If you'd prefer not to receive these emails, please reply with "unsubscribe".`))

var followUpTmpl = template.Must(template.New("followup").Parse(`Hi {{.RecipientName}},

I wanted to follow up on my email from {{.Days}} days ago regarding the {{.JobTitle}} position at {{.Company}}.

I understand you're likely busy, but I remain very interested in the opportunity and would appreciate any feedback you might have.

If the timing isn't right or if there are other roles that might be a better fit, I'd be happy to discuss those as well.

Thank you again for your time.

Best regards,
{{.SenderName}}`))

// Generator renders outreach emails. The zero value is not usable; construct
// via New or NewWithOpening.
type Generator struct {
	pickOpening func() int
}

func New() *Generator {
	return &Generator{
		pickOpening: func() int { return rand.Intn(len(openings)) },
	}
}

// NewWithOpening pins the opening line, for deterministic output.
func NewWithOpening(index int) *Generator {
	return &Generator{
		pickOpening: func() int { return index % len(openings) },
	}
}

// Subject builds the cold-email subject line.
func Subject(jobTitle, company string) string {
	return fmt.Sprintf("%s opportunity at %s", jobTitle, company)
}

// FollowUpSubject builds the follow-up subject line.
func FollowUpSubject(jobTitle, company string) string {
	return fmt.Sprintf("Following up on %s at %s", jobTitle, company)
}

// ColdEmail renders the personalized outreach body.
func (g *Generator) ColdEmail(p Params) (string, error) {
	keySkills := matchedSkills(p.JobDescription, p.Skills)

	display := keySkills
	if len(display) > 3 {
		display = display[:3]
	}
	if len(display) == 0 {
		// Without any overlap we still name the user's leading skills.
		display = p.Skills
		if len(display) > 3 {
			display = display[:3]
		}
	}

	data := struct {
		Params
		Opening   string
		KeySkills string
		ValueProp string
	}{
		Params:    p,
		Opening:   fmt.Sprintf(openings[g.pickOpening()], p.Company),
		KeySkills: strings.Join(display, ", "),
		ValueProp: valueProposition(len(keySkills)),
	}

	var b strings.Builder
	if err := coldEmailTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render cold email: %w", err)
	}
	return b.String(), nil
}

// FollowUp renders the non-responder follow-up body.
func (g *Generator) FollowUp(p Params, daysSince int) (string, error) {
	data := struct {
		Params
		Days int
	}{Params: p, Days: daysSince}

	var b strings.Builder
	if err := followUpTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render follow-up email: %w", err)
	}
	return b.String(), nil
}

// matchedSkills filters the user's skills to those the job description
// actually mentions.
func matchedSkills(jobDescription string, skills []string) []string {
	descLower := strings.ToLower(jobDescription)
	matched := []string{}
	for _, s := range skills {
		if strings.Contains(descLower, strings.ToLower(s)) {
			matched = append(matched, s)
		}
	}
	return matched
}

// valueProposition picks the pitch sentence by overlap strength.
func valueProposition(matchedCount int) string {
	switch {
	case matchedCount >= 3:
		return "I'm particularly excited about this role because it aligns perfectly with my technical background."
	case matchedCount >= 1:
		return "While I'm always eager to learn new technologies, my current skillset provides a strong foundation for this role."
	default:
		return "I'm passionate about taking on new challenges and believe my problem-solving approach would be valuable to your team."
	}
}
