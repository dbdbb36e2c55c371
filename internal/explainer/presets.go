package explainer

// Preset is a commonly used expression with a label.
type Preset struct {
	Label      string
	Expression string
}

// Presets lists the built-in presets.
//
//nolint:gochecknoglobals
var Presets = []Preset{
	{"Every minute", "* * * * *"},
	{"Every 5 minutes", "*/5 * * * *"},
	{"Every hour", "0 * * * *"},
	{"Every day at midnight", "0 0 * * *"},
	{"Every Monday at 9am", "0 9 * * 1"},
}
