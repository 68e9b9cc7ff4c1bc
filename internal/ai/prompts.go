package ai

import (
	"fmt"
	"strings"
	"text/template"
)

var summaryPrompt = template.Must(template.New("summary").Parse(
	`You are an AI assistant that specializes in summarizing legal clauses in plain language.

Please provide a concise and easy-to-understand summary of the following clause:

{{.ClauseText}}`))

var riskPrompt = template.Must(template.New("risk").Parse(
	`You are a legal expert specializing in contract risk analysis. You are thorough, precise, and your goal is to protect your client's interests.

You will analyze the following contract text for potential risks. Your analysis should be comprehensive and presented in a clear, structured format.

For each identified risk, provide:
1.  **Risk Category:** (e.g., Liability, Confidentiality, Termination, IP Rights, etc.)
2.  **Clause Reference:** The specific clause number or section.
3.  **Risk Description:** A clear explanation of the potential risk.
4.  **Severity Level:** (Low, Medium, High)
5.  **Suggested Mitigation:** Actionable advice on how to mitigate the risk (e.g., suggest alternative wording, recommend negotiation points).

Present your findings in a well-formatted markdown response. Start with an overall summary of the contract's risk profile.

Contract Text:
{{.ContractText}}`))

// SummaryPrompt renders the plain-language clause summary prompt.
func SummaryPrompt(clauseText string) (string, error) {
	return render(summaryPrompt, struct{ ClauseText string }{clauseText})
}

// RiskPrompt renders the contract risk analysis prompt.
func RiskPrompt(contractText string) (string, error) {
	return render(riskPrompt, struct{ ContractText string }{contractText})
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("error rendering %s prompt: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
