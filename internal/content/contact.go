package content

// Option is a value/label pair for a select input.
type Option struct {
	Value string
	Label string
}

// ServiceOptions returns the project types offered on the contact form.
func ServiceOptions() []Option {
	return []Option{
		{Value: "driveway", Label: "Driveway"},
		{Value: "patio", Label: "Patio"},
		{Value: "sidewalk", Label: "Sidewalk"},
		{Value: "steps", Label: "Steps"},
		{Value: "stamped", Label: "Stamped Concrete"},
		{Value: "flatwork", Label: "Flatwork"},
		{Value: "demolition", Label: "Demolition"},
		{Value: "repair", Label: "Repair"},
		{Value: "other", Label: "Other"},
	}
}
