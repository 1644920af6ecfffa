package core

// HookTemplate is a static catalog entry describing a complete hook command.
// Templates are read-only: Args must never be mutated after definition, so
// TemplateByID hands out defensive copies.
type HookTemplate struct {
	Event     HookEvent
	Matcher   string
	Command   string
	Args      []string
	TimeoutMs int
}

// guardScript assembles the POSIX one-liner for a danger-protection guard.
// The script reads the PreToolUse payload from stdin, pulls the requested
// field out with jq, greps it against the pattern alternation, and on a
// match prints a permission decision for Claude Code. It always exits 0;
// the decision JSON, not the exit code, carries the verdict.
//
// Patterns must stick to POSIX ERE: BSD grep on macOS treats GNU escapes
// like \s and \b as literals, which would make a guard silently never
// match. Use [[:space:]] and explicit boundary alternations instead.
func guardScript(field, pattern, decision, reason string) string {
	return `input=$(cat); value=$(printf '%s' "$input" | jq -r '` + field + ` // empty'); ` +
		`if printf '%s' "$value" | grep -qE '` + pattern + `'; then ` +
		`printf '%s' '{"hookSpecificOutput":{"hookEventName":"PreToolUse","permissionDecision":"` + decision + `","permissionDecisionReason":"` + reason + `"}}'; ` +
		`fi; exit 0`
}

// hookTemplates is the process-wide template catalog, keyed by template ID.
// Initialized once; never written after init.
var hookTemplates = map[string]HookTemplate{
	"danger-recursive-delete": {
		Event:   EventPreToolUse,
		Matcher: "Bash",
		Command: "bash",
		Args: []string{"-c", guardScript(
			".tool_input.command",
			`rm[[:space:]]+(-[a-zA-Z]*[rf][a-zA-Z]*[[:space:]]+)+|rm[[:space:]]+--recursive|find[[:space:]]+.*-delete`,
			"deny",
			"recursive or forced delete detected")},
		TimeoutMs: 10000,
	},
	"danger-force-push": {
		Event:   EventPreToolUse,
		Matcher: "Bash",
		Command: "bash",
		Args: []string{"-c", guardScript(
			".tool_input.command",
			`git[[:space:]]+push[[:space:]]+.*(--force|-f([[:space:]]|$))|git[[:space:]]+push[[:space:]]+--force-with-lease`,
			"ask",
			"force push rewrites remote history")},
		TimeoutMs: 10000,
	},
	"danger-permission-bomb": {
		Event:   EventPreToolUse,
		Matcher: "Bash",
		Command: "bash",
		Args: []string{"-c", guardScript(
			".tool_input.command",
			`chmod[[:space:]]+(-R[[:space:]]+)?(777|a\+rwx)|chown[[:space:]]+-R[[:space:]]+`,
			"ask",
			"broad permission change detected")},
		TimeoutMs: 10000,
	},
	"danger-disk-overwrite": {
		Event:   EventPreToolUse,
		Matcher: "Bash",
		Command: "bash",
		Args: []string{"-c", guardScript(
			".tool_input.command",
			`dd[[:space:]]+.*of=/dev/|mkfs\.|>[[:space:]]*/dev/sd|fdisk[[:space:]]+/dev/`,
			"deny",
			"raw disk write detected")},
		TimeoutMs: 10000,
	},
	"danger-privilege-escalation": {
		Event:   EventPreToolUse,
		Matcher: "Bash",
		Command: "bash",
		Args: []string{"-c", guardScript(
			".tool_input.command",
			`(^|[[:space:]]|;|&&|\|\|)sudo[[:space:]]+|(^|[[:space:]]|;|&&|\|\|)su[[:space:]]+-|doas[[:space:]]+`,
			"ask",
			"command requests elevated privileges")},
		TimeoutMs: 10000,
	},
	"danger-secret-access": {
		Event:   EventPreToolUse,
		Matcher: "Write|Edit",
		Command: "bash",
		Args: []string{"-c", guardScript(
			".tool_input.file_path",
			`\.env($|\.)|id_rsa|id_ed25519|\.pem$|credentials|\.aws/|\.ssh/`,
			"ask",
			"write targets a credential or secret file")},
		TimeoutMs: 10000,
	},
}

// TemplateByID looks up a template by ID. The returned template's Args slice
// is a copy, so callers can append to it without corrupting the catalog.
func TemplateByID(id string) (HookTemplate, bool) {
	t, ok := hookTemplates[id]
	if !ok {
		return HookTemplate{}, false
	}
	args := make([]string, len(t.Args))
	copy(args, t.Args)
	t.Args = args
	return t, true
}

// TemplateIDs returns all catalog IDs (unordered; for diagnostics and tests).
func TemplateIDs() []string {
	ids := make([]string, 0, len(hookTemplates))
	for id := range hookTemplates {
		ids = append(ids, id)
	}
	return ids
}
