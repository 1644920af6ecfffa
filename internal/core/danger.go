package core

// DangerOption pairs a user-facing protection choice with the template that
// implements it. The table is static and ordered; wizard submission installs
// hooks in exactly this order.
type DangerOption struct {
	ID          string
	TemplateID  string
	Label       string
	Description string
}

// dangerOptions is the fixed protection catalog shown in the
// danger-protection wizard.
var dangerOptions = []DangerOption{
	{
		ID:          "recursive-delete",
		TemplateID:  "danger-recursive-delete",
		Label:       "Block recursive deletes",
		Description: "Denies rm -rf and other recursive delete commands outright.",
	},
	{
		ID:          "force-push",
		TemplateID:  "danger-force-push",
		Label:       "Confirm force pushes",
		Description: "Asks before git push --force rewrites remote history.",
	},
	{
		ID:          "permission-bomb",
		TemplateID:  "danger-permission-bomb",
		Label:       "Confirm permission changes",
		Description: "Asks before chmod 777 or recursive chown.",
	},
	{
		ID:          "disk-overwrite",
		TemplateID:  "danger-disk-overwrite",
		Label:       "Block raw disk writes",
		Description: "Denies dd to block devices and filesystem formatting.",
	},
	{
		ID:          "privilege-escalation",
		TemplateID:  "danger-privilege-escalation",
		Label:       "Confirm sudo",
		Description: "Asks before any command that escalates privileges.",
	},
	{
		ID:          "secret-access",
		TemplateID:  "danger-secret-access",
		Label:       "Confirm secret file edits",
		Description: "Asks before writes to .env files, SSH keys, or cloud credentials.",
	},
}

// DangerOptions returns the protection catalog in display order.
// The returned slice is a copy; the table itself is never mutated.
func DangerOptions() []DangerOption {
	out := make([]DangerOption, len(dangerOptions))
	copy(out, dangerOptions)
	return out
}

// DangerOptionByID looks up a protection by ID.
func DangerOptionByID(id string) (DangerOption, bool) {
	for _, o := range dangerOptions {
		if o.ID == id {
			return o, true
		}
	}
	return DangerOption{}, false
}

// SelectDangerOptions resolves IDs to options, preserving catalog order and
// skipping unknown IDs silently. Stale IDs from an old config are not worth
// failing a wizard over.
func SelectDangerOptions(ids []string) []DangerOption {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []DangerOption
	for _, o := range dangerOptions {
		if want[o.ID] {
			out = append(out, o)
		}
	}
	return out
}
