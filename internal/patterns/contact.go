package patterns

import "strings"

// ContactInfo collects every contact-field match found in a block of text.
// Each slice is deduplicated and preserves first-seen order.
type ContactInfo struct {
	Emails    []string
	Phones    []string
	Websites  []string
	LinkedIn  []string
	GitHub    []string
	Addresses []string
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// ExtractContactInfo scans text for emails, phone numbers, profile URLs,
// websites, and street addresses. Profile URLs are canonicalized to their
// https form; websites exclude linkedin.com and github.com hits.
func ExtractContactInfo(text string) ContactInfo {
	info := ContactInfo{
		Emails: dedupe(EmailPattern.FindAllString(text, -1)),
	}

	var phones []string
	for _, m := range PhonePattern.FindAllString(text, -1) {
		phones = append(phones, NormalizePhoneNumber(m))
	}
	info.Phones = dedupe(phones)

	var linkedin []string
	for _, m := range LinkedInPattern.FindAllStringSubmatch(text, -1) {
		linkedin = append(linkedin, "https://linkedin.com/in/"+m[1])
	}
	info.LinkedIn = dedupe(linkedin)

	var github []string
	for _, m := range GitHubPattern.FindAllStringSubmatch(text, -1) {
		github = append(github, "https://github.com/"+m[1])
	}
	info.GitHub = dedupe(github)

	var websites []string
	for _, m := range WebsitePattern.FindAllString(text, -1) {
		if strings.Contains(m, "linkedin.com") || strings.Contains(m, "github.com") {
			continue
		}
		websites = append(websites, m)
	}
	info.Websites = dedupe(websites)

	info.Addresses = dedupe(AddressPattern.FindAllString(text, -1))

	return info
}

// NormalizePhoneNumber strips formatting and the US country prefix.
func NormalizePhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "+1") {
		return cleaned[2:]
	}
	if strings.HasPrefix(cleaned, "1") && len(cleaned) == 11 {
		return cleaned[1:]
	}
	return cleaned
}
