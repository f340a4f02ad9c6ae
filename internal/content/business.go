// Package content holds the compiled-in copy of the Blackstone Contractors
// website: business details, navigation, services, FAQ entries and the
// gallery catalog.
package content

// Business describes the company as shown in the header, footer and
// contact page.
type Business struct {
	Name        string
	Suffix      string
	Tagline     string
	Phone       string
	PhoneHref   string
	Email       string
	Hours       string
	HoursDays   string
	HoursTime   string
	City        string
	ServiceArea string
	Counties    []string
	Radius      string
}

// Stat is a headline number such as "300+ Projects Completed".
type Stat struct {
	Value string
	Label string
}

// Feature is a titled blurb used in highlight grids.
type Feature struct {
	Title       string
	Description string
}

// Step is one stage of the project process.
type Step struct {
	Number      string
	Title       string
	Description string
}

// Link is a labelled site link.
type Link struct {
	Label string
	Href  string
}

// Blackstone returns the company profile.
func Blackstone() Business {
	return Business{
		Name:        "Blackstone",
		Suffix:      "Contractors LLC",
		Tagline:     "Built on Solid Ground",
		Phone:       "(253) 766-7377",
		PhoneHref:   "tel:2537667377",
		Email:       "BLACSTONE7377@GMAIL.COM",
		Hours:       "Mon – Sat | 7:00 AM – 7:00 PM",
		HoursDays:   "Monday – Saturday",
		HoursTime:   "7:00 AM – 7:00 PM",
		City:        "Orting, Washington",
		ServiceArea: "Serving 80 mile radius",
		Counties:    []string{"King County", "Pierce County"},
		Radius:      "80mi",
	}
}

// Stats returns the company numbers shown on the home and gallery pages.
func Stats() []Stat {
	return []Stat{
		{Value: "9+", Label: "Years Experience"},
		{Value: "300+", Label: "Projects Completed"},
		{Value: "100%", Label: "Client Satisfaction"},
		{Value: "80mi", Label: "Service Radius"},
	}
}

// Differences returns the "Blackstone Difference" highlights on the home page.
func Differences() []Feature {
	return []Feature{
		{Title: "Licensed & Insured", Description: "Full coverage for your peace of mind on every project."},
		{Title: "Free Estimates", Description: "Transparent pricing with no obligation quotes."},
		{Title: "Owner Operated", Description: "Direct communication and personal attention to detail."},
		{Title: "9+ Years Experience", Description: "Proven expertise in all types of concrete work."},
	}
}

// Values returns the company values listed on the about page.
func Values() []Feature {
	return []Feature{
		{Title: "Quality First", Description: "Every pour, every finish, every detail matters. We never cut corners."},
		{Title: "Client Focus", Description: "Your vision is our mission. We listen, adapt, and deliver."},
		{Title: "Integrity", Description: "Honest pricing, clear communication, and work we stand behind."},
		{Title: "Excellence", Description: "Continuous improvement in our craft and service delivery."},
	}
}

// Reasons returns the selling points on the why-choose-us page.
func Reasons() []Feature {
	return []Feature{
		{Title: "9+ Years Experience", Description: "Nearly a decade of hands-on concrete work means we've seen it all and solved it all. Your project benefits from lessons learned across hundreds of jobs."},
		{Title: "Licensed & Insured", Description: "Full licensing and comprehensive insurance coverage protect you and your property. Work with confidence knowing you're covered."},
		{Title: "Owner Operated", Description: "When you call, the owner answers. No layers of management. Direct communication ensures your vision is understood and executed."},
		{Title: "Quality Guarantee", Description: "We stand behind our work. Every project is completed to the highest standards with attention to detail that shows in the finished product."},
	}
}

// Process returns the four project stages.
func Process() []Step {
	return []Step{
		{Number: "01", Title: "Consultation", Description: "We discuss your project, assess the site, and understand your vision."},
		{Number: "02", Title: "Estimate", Description: "You receive a detailed, transparent quote with no hidden fees."},
		{Number: "03", Title: "Execution", Description: "Our skilled team completes your project with precision and care."},
		{Number: "04", Title: "Walkthrough", Description: "We ensure you're completely satisfied before the job is done."},
	}
}

// ServiceAreas returns the communities named on the about page.
func ServiceAreas() []string {
	return []string{
		"Orting", "Puyallup", "Tacoma", "Sumner", "Bonney Lake", "Auburn",
		"Kent", "Federal Way", "Renton", "Fife", "Lake Tapps", "University Place",
	}
}
