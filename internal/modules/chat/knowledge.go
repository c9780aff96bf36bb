package chat

// serviceAliases maps catalog slugs to the words customers actually type.
var serviceAliases = map[string][]string{
	"oil-change":         {"oil change", "oil"},
	"brake-service":      {"brake", "brakes"},
	"battery":            {"battery", "batteries"},
	"engine-diagnostics": {"diagnostic", "diagnostics", "check engine"},
	"tyre-service":       {"tyre", "tyres", "tire", "tires", "wheel"},
	"transmission":       {"transmission", "gearbox", "gear"},
}

// commonIssues maps symptom keywords to advice. Matching is plain substring
// search against the lowercased message.
var commonIssues = []struct {
	Keywords []string
	Answer   string
}{
	{
		Keywords: []string{"check engine light", "engine light", "warning light"},
		Answer:   "A check engine light can indicate many issues. Common causes include a loose fuel cap, a faulty oxygen sensor, bad spark plugs or catalytic converter problems. We recommend bringing your vehicle in for a diagnostic scan.",
	},
	{
		Keywords: []string{"noise", "squeal", "grinding", "knocking", "humming"},
		Answer:   "Different noises point to different problems: squealing (belts or brakes), grinding (brakes), knocking (engine) or humming (wheel bearings). It's best to have it inspected soon.",
	},
	{
		Keywords: []string{"won't start", "wont start", "not starting", "dead"},
		Answer:   "Common causes: dead battery, bad starter, fuel pump failure or ignition issues. We can diagnose and fix the problem quickly.",
	},
	{
		Keywords: []string{"acceleration", "sluggish", "no power"},
		Answer:   "Poor acceleration can be caused by clogged fuel filters, bad spark plugs, transmission issues or sensor problems. A diagnostic check will identify the cause.",
	},
	{
		Keywords: []string{"overheat", "overheating", "temperature", "coolant"},
		Answer:   "Overheating can be caused by low coolant, thermostat failure, radiator issues or water pump problems. Stop driving immediately and have the vehicle towed to prevent engine damage.",
	},
	{
		Keywords: []string{"vibration", "vibrating", "shaking", "shake"},
		Answer:   "Vibrations can be caused by unbalanced tyres, worn suspension, alignment issues or brake problems. We can inspect and fix the issue.",
	},
}

const openingHours = "Mon-Fri: 8AM-6PM, Sat: 9AM-4PM, Sun: Closed"

// defaultQuickReplies is offered whenever the bot has no better suggestion.
var defaultQuickReplies = []string{"Book appointment", "Our services", "Opening hours", "Contact us"}
