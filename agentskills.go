// Package agentskills turns a directory of style-guide rule documents into a
// corpus of labeled code-review test cases. Each rule document is a markdown
// file with YAML frontmatter whose body pairs short labels such as
// "**Incorrect:**" with fenced code blocks; every labeled block is classified
// as a good or bad example of the rule.
//
// This package contains domain types, pure logic and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in subdirectories
// named after their primary dependency (e.g., markdown/, sqlite/, koanf/).
package agentskills
