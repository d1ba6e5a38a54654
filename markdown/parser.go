// Package markdown parses rule documents written as markdown with YAML
// frontmatter into agentskills.Rule records.
package markdown

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	agentskills "github.com/IAFahim/agent-skills"
	"gopkg.in/yaml.v3"
)

// Ensure Parser implements agentskills.RuleParser at compile time.
var _ agentskills.RuleParser = (*Parser)(nil)

// Parser extracts rule metadata and labeled code examples from markdown.
// Parser holds no state and is safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseRule parses a rule document.
//
// The document must start with a YAML frontmatter block carrying at least a
// title. The section comes from the "section" key, or from the filename
// prefix when that prefix is a taxonomy token of the profile.
func (p *Parser) ParseRule(doc *agentskills.RuleDocument, profile *agentskills.Profile) (*agentskills.Rule, error) {
	if doc == nil {
		return nil, agentskills.Errorf(agentskills.EINVALID, "document required")
	}
	if profile == nil {
		profile = &agentskills.Profile{}
	}

	// Structure is matched on lines without their CR; code keeps the raw
	// line endings.
	raw := strings.Split(strings.TrimPrefix(doc.Content, "\ufeff"), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	meta, bodyStart, err := parseFrontmatter(lines)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return nil, agentskills.Errorf(agentskills.EMALFORMED, "missing title in frontmatter")
	}

	section := strings.TrimSpace(meta.Section)
	if section == "" {
		if prefix := filenamePrefix(doc.Filename); prefix != "" {
			if _, ok := profile.Category(prefix); ok {
				section = prefix
			}
		}
	}
	if section == "" {
		return nil, agentskills.Errorf(agentskills.EMALFORMED, "missing section: no section key and filename prefix is not a known section")
	}

	category, known := profile.Category(section)
	id := ruleID(section, title, doc.Filename, known)
	if id == "" {
		return nil, agentskills.Errorf(agentskills.EMALFORMED, "cannot derive rule id from title %q", title)
	}

	examples, err := scanExamples(lines[bodyStart:], raw[bodyStart:], bodyStart, title, profile.DefaultLanguage())
	if err != nil {
		return nil, err
	}

	return &agentskills.Rule{
		ID:                id,
		Title:             title,
		Section:           section,
		Category:          category,
		Impact:            strings.TrimSpace(meta.Impact),
		ImpactDescription: strings.TrimSpace(meta.ImpactDescription),
		Tags:              meta.Tags,
		Filename:          doc.Filename,
		Examples:          examples,
	}, nil
}

// frontmatter holds the metadata keys of a rule document.
type frontmatter struct {
	Title             string  `yaml:"title"`
	Section           string  `yaml:"section"`
	Impact            string  `yaml:"impact"`
	ImpactDescription string  `yaml:"impactDescription"`
	Tags              tagList `yaml:"tags"`
}

// tagList accepts either a YAML sequence or a comma-separated string.
type tagList []string

func (t *tagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*t = splitTags(value.Value)
		return nil
	case yaml.SequenceNode:
		var tags []string
		if err := value.Decode(&tags); err != nil {
			return err
		}
		*t = tags
		return nil
	default:
		return fmt.Errorf("tags must be a string or a list")
	}
}

// parseFrontmatter decodes the leading "---" delimited YAML block and
// returns the index of the first body line.
func parseFrontmatter(lines []string) (*frontmatter, int, error) {
	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return nil, 0, agentskills.Errorf(agentskills.EMALFORMED, "missing frontmatter metadata block")
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, 0, agentskills.Errorf(agentskills.EMALFORMED, "unterminated frontmatter metadata block")
	}

	block := lines[1:end]
	var meta frontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(block, "\n")), &meta); err != nil {
		loose, ok := parseLooseFrontmatter(block)
		if !ok {
			return nil, 0, agentskills.Errorf(agentskills.EMALFORMED, "invalid frontmatter: %v", err)
		}
		meta = *loose
	}
	return &meta, end + 1, nil
}

// parseLooseFrontmatter reads plain "key: value" lines, splitting at the
// first ": ", for blocks that are not valid YAML such as an unquoted title
// containing a colon. Flow collections, quoted values and lines that are not
// key-value pairs still fail.
func parseLooseFrontmatter(block []string) (*frontmatter, bool) {
	var meta frontmatter
	var listKey string
	for _, line := range block {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if item, ok := strings.CutPrefix(trimmed, "- "); ok && listKey == "tags" {
			meta.Tags = append(meta.Tags, strings.TrimSpace(item))
			continue
		}

		key, value, found := strings.Cut(trimmed, ": ")
		if !found {
			key, found = strings.CutSuffix(trimmed, ":")
			if !found {
				return nil, false
			}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value != "" && strings.ContainsRune(`[{"'|>&*`, rune(value[0])) {
			return nil, false
		}

		listKey = ""
		switch key {
		case "title":
			meta.Title = value
		case "section":
			meta.Section = value
		case "impact":
			meta.Impact = value
		case "impactDescription":
			meta.ImpactDescription = value
		case "tags":
			if value == "" {
				listKey = key
				continue
			}
			meta.Tags = splitTags(value)
		}
	}
	return &meta, true
}

func splitTags(value string) []string {
	var tags []string
	for _, tag := range strings.Split(value, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t") == "---"
}

// filenamePrefix returns the part of the filename stem before the first hyphen.
func filenamePrefix(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	prefix, _, found := strings.Cut(stem, "-")
	if !found {
		return ""
	}
	return prefix
}

// ruleID derives a stable identifier: "<section>-<title slug>" for sections
// in the profile taxonomy, otherwise the slug of the filename stem.
func ruleID(section, title, filename string, known bool) string {
	stem := agentskills.Slugify(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if known {
		if slug := agentskills.Slugify(title); slug != "" {
			return agentskills.Slugify(section) + "-" + slug
		}
		return stem
	}
	if stem == "" {
		return agentskills.Slugify(title)
	}
	return stem
}

var (
	boldLabelRe   = regexp.MustCompile(`^\s*(?:\*\*|__)(.+?)(?:\*\*|__)\s*(:?)\s*$`)
	headerLabelRe = regexp.MustCompile(`^\s{0,3}#{1,6}\s+(.+?)\s*$`)
	headerRe      = regexp.MustCompile(`^ {0,3}#{1,6}(?:\s|$)`)
	fenceRe       = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})(.*)$")
)

// parseLabel reports whether line introduces a labeled block and returns the
// label without markup or trailing colon.
func parseLabel(line string) (string, bool) {
	if m := boldLabelRe.FindStringSubmatch(line); m != nil {
		inner := strings.TrimSpace(m[1])
		if strings.Contains(inner, "**") || strings.Contains(inner, "__") {
			return "", false
		}
		if strings.HasSuffix(inner, ":") {
			return cleanLabel(inner)
		}
		if m[2] == ":" {
			return cleanLabel(inner + ":")
		}
		return "", false
	}
	if m := headerLabelRe.FindStringSubmatch(line); m != nil {
		text := strings.TrimSpace(m[1])
		text = strings.TrimSuffix(strings.TrimPrefix(text, "**"), "**")
		text = strings.TrimSuffix(strings.TrimPrefix(text, "__"), "__")
		if strings.HasSuffix(text, ":") {
			return cleanLabel(text)
		}
	}
	return "", false
}

func cleanLabel(text string) (string, bool) {
	label := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ":"))
	return label, label != ""
}

// fence is an open fenced code block.
type fence struct {
	char     byte
	length   int
	language string
}

func openFence(line string) (fence, bool) {
	m := fenceRe.FindStringSubmatch(line)
	if m == nil {
		return fence{}, false
	}
	info := strings.TrimSpace(m[2])
	if m[1][0] == '`' && strings.Contains(info, "`") {
		return fence{}, false
	}
	var lang string
	if fields := strings.Fields(info); len(fields) > 0 {
		lang = fields[0]
	}
	return fence{char: m[1][0], length: len(m[1]), language: lang}, true
}

func (f fence) closedBy(line string) bool {
	indented := strings.TrimLeft(line, " ")
	if len(line)-len(indented) > 3 {
		return false
	}
	trimmed := strings.TrimRight(indented, " \t")
	if len(trimmed) < f.length {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != f.char {
			return false
		}
	}
	return true
}

// pendingLabel is a label line waiting for its fence.
type pendingLabel struct {
	label   string
	caption string
}

// scanExamples collects labeled fenced blocks in document order. lines are
// matched for structure while code is cut from raw. offset is the index of
// the first body line within the whole document and is only used for line
// numbers.
func scanExamples(lines, raw []string, offset int, title, defaultLanguage string) ([]*agentskills.Example, error) {
	var examples []*agentskills.Example
	var pending *pendingLabel

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if f, ok := openFence(line); ok {
			end := -1
			for j := i + 1; j < len(lines); j++ {
				if f.closedBy(lines[j]) {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, agentskills.Errorf(agentskills.EMALFORMED, "unterminated code fence opened at line %d", offset+i+1)
			}

			if pending != nil {
				lang := f.language
				if lang == "" {
					lang = defaultLanguage
				}
				desc := pending.caption
				if desc == "" {
					desc = fmt.Sprintf("%s example for %s", pending.label, title)
				}
				examples = append(examples, &agentskills.Example{
					Label:       pending.label,
					Language:    lang,
					Code:        strings.TrimSuffix(strings.Join(raw[i+1:end], "\n"), "\r"),
					Description: desc,
					Line:        offset + i + 1,
				})
				pending = nil
			}

			i = end
			continue
		}

		if label, ok := parseLabel(line); ok {
			pending = &pendingLabel{label: label}
			continue
		}

		if pending == nil {
			continue
		}

		// One caption line may sit between a label and its fence; anything
		// more makes the label a prose heading.
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case pending.caption == "" && !headerRe.MatchString(line):
			pending.caption = trimmed
		default:
			pending = nil
		}
	}

	return examples, nil
}
