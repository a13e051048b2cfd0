package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/skyblockcheck/checker/internal/domain"
)

const (
	Banner = "=== SkyBlock Profile Checker ==="
	rule   = "--------------------------------------------------"
)

var (
	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)
)

// FormatCoins renders a currency amount with thousands grouping and two decimals.
func FormatCoins(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Text writes the human-readable report for every profile in set.
func Text(w io.Writer, set *domain.ProfileSet) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nFound %d profile(s):\n%s\n", len(set.Profiles), rule)
	for i := range set.Profiles {
		writeProfile(&b, &set.Profiles[i])
	}
	fmt.Fprintf(&b, "%s\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeProfile(b *strings.Builder, p *domain.ProfileSummary) {
	if p.Selected {
		fmt.Fprintf(b, "\n[Selected] Profile: %s\n", p.Name)
	} else {
		fmt.Fprintf(b, "\nProfile: %s\n", p.Name)
	}

	if p.GameMode != "" {
		fmt.Fprintf(b, "  Game Mode: %s\n", title.String(p.GameMode))
	}

	if p.Level != nil && p.Experience != nil {
		fmt.Fprintf(b, "  SkyBlock Level: %d (experience: %d)\n", *p.Level, *p.Experience)
	} else {
		b.WriteString("  SkyBlock Level: N/A\n")
	}

	fmt.Fprintf(b, "  Purse: %s\n", FormatCoins(p.Purse))

	if p.Bank != nil {
		fmt.Fprintf(b, "  Bank: %s\n", FormatCoins(*p.Bank))
	} else {
		b.WriteString("  Bank: none\n")
	}

	var skills []string
	for _, name := range domain.Skills {
		if exp, ok := p.Skills[name]; ok {
			skills = append(skills, fmt.Sprintf("%s=%d", name, exp))
		}
	}
	if len(skills) > 0 {
		fmt.Fprintf(b, "  Skills (exp): %s\n", strings.Join(skills, ", "))
	} else {
		b.WriteString("  Skills (exp): not available\n")
	}
}

// YAML writes set as a YAML document.
func YAML(w io.Writer, set *domain.ProfileSet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// RawJSON writes the upstream body indented between banner lines.
func RawJSON(w io.Writer, body []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return fmt.Errorf("indent raw json: %w", err)
	}
	_, err := fmt.Fprintf(w, "\n=== RAW JSON RESPONSE ===\n%s\n=== END RAW JSON ===\n", out.String())
	return err
}

// ErrorMessage turns err into a single line fit for the terminal.
func ErrorMessage(err error) string {
	appErr, ok := domain.AsAppError(err)
	if !ok {
		return "Unexpected error: " + err.Error()
	}

	switch appErr.Code {
	case domain.CodeAuth:
		return "Error: authentication failed - " + appErr.Message
	case domain.CodeRateLimited:
		return "Error: " + appErr.Message
	case domain.CodeService:
		return "Error: API request failed - " + appErr.Message
	case domain.CodeNetwork, domain.CodeParse:
		if appErr.Cause != nil {
			return fmt.Sprintf("Error: %s (%v)", appErr.Message, appErr.Cause)
		}
		return "Error: " + appErr.Message
	default:
		return "Error: " + appErr.Message
	}
}
