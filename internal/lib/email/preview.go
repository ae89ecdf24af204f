package email

// PreviewData holds sample template data for rendering previews, keyed by
// template then by template variable.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName": "Devin Sanders",
	},
	TemplatePropertyListed: {
		"UserName":      "Devin Sanders",
		"PropertyTitle": "Speed lamp",
		"CostPerNight":  "$930.61",
	},
}
