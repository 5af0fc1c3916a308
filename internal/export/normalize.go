package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
)

// maxEntryBytes bounds decompression of a single archive entry.
const maxEntryBytes = 32 << 20

// wellKnownEntries maps the fixed set of archive entry names to the section
// each one populates. Variants differ between export versions; any subset may
// be present.
var wellKnownEntries = []string{
	"Profile.csv",
	"Positions.csv",
	"Education.csv",
	"Skills.csv",
	"Languages.csv",
	"Certifications.csv",
	"Projects.csv",
	"Contacts.csv",
	"Basic_Information.json",
	"profile.json",
}

// Normalize converts an export file into ExportData, dispatching on the
// declared content type: ZIP archives are opened and their well-known entries
// parsed (missing entries are not errors); anything else is tried as JSON and,
// failing that, retained as raw text.
func Normalize(data []byte, contentType string) (*ExportData, error) {
	switch contentType {
	case "application/zip":
		return normalizeZip(data)
	case "application/json", "text/plain", "text/csv", "":
		return normalizeBuffer(data), nil
	default:
		return nil, fmt.Errorf("unsupported export content type: %q", contentType)
	}
}

func normalizeZip(data []byte) (*ExportData, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open export ZIP: %w", err)
	}

	byName := make(map[string]*zip.File, len(reader.File))
	for _, f := range reader.File {
		byName[path.Base(f.Name)] = f
	}

	out := &ExportData{}
	for _, name := range wellKnownEntries {
		f, ok := byName[name]
		if !ok {
			continue
		}
		content, err := readZipEntry(f)
		if err != nil {
			out.warn(fmt.Sprintf("failed to read export entry %s: %v", name, err))
			continue
		}
		if err := out.addEntry(name, content); err != nil {
			out.warn(fmt.Sprintf("failed to parse export entry %s: %v", name, err))
		}
	}
	return out, nil
}

func readZipEntry(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	content, err := io.ReadAll(io.LimitReader(rc, maxEntryBytes))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// addEntry routes one archive entry into its section bag.
func (d *ExportData) addEntry(name, content string) error {
	if strings.HasSuffix(name, ".json") {
		var info BasicInfo
		if err := json.Unmarshal([]byte(content), &info); err != nil {
			return err
		}
		if name == "profile.json" {
			d.ProfileJSON = &info
		} else {
			d.BasicInfo = &info
		}
		return nil
	}

	rows := ParseCSV(content)
	switch name {
	case "Profile.csv":
		d.Profile = rows
	case "Positions.csv":
		d.Positions = rows
	case "Education.csv":
		d.Education = rows
	case "Skills.csv":
		d.Skills = rows
	case "Languages.csv":
		d.Languages = rows
	case "Certifications.csv":
		d.Certifications = rows
	case "Projects.csv":
		d.Projects = rows
	case "Contacts.csv":
		d.Contacts = rows
	}
	return nil
}

// jsonEnvelope is the shape of a whole-profile JSON export. Section keys are
// decoded into typed bags; everything else is preserved as unrecognized.
type jsonEnvelope struct {
	Profile        *BasicInfo      `json:"profile"`
	ProfileJSON    *BasicInfo      `json:"profileJson"`
	BasicInfo      *BasicInfo      `json:"basicInfo"`
	Positions      []Position      `json:"positions"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Languages      []Language      `json:"languages"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
}

var envelopeKeys = []string{
	"profile", "profileJson", "basicInfo", "positions", "education",
	"skills", "languages", "certifications", "projects",
}

// normalizeBuffer handles single-file uploads: a JSON export body, or plain
// text kept verbatim when JSON parsing fails.
func normalizeBuffer(data []byte) *ExportData {
	out := &ExportData{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		out.RawText = string(data)
		return out
	}

	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		out.RawText = string(data)
		return out
	}

	out.ProfileJSON = env.ProfileJSON
	if out.ProfileJSON == nil {
		out.ProfileJSON = env.Profile
	}
	out.BasicInfo = env.BasicInfo
	out.JSONPositions = env.Positions
	out.JSONEducation = env.Education
	out.JSONSkills = env.Skills
	out.JSONLanguages = env.Languages
	out.JSONCerts = env.Certifications
	out.JSONProjects = env.Projects

	for _, k := range envelopeKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		out.Unrecognized = raw
	}
	return out
}
