package content

// Question is one FAQ entry.
type Question struct {
	Q string
	A string
}

// FAQCategory groups FAQ entries under a tab.
type FAQCategory struct {
	Name      string
	Questions []Question
}

// FAQ returns the FAQ tabs in display order. The first tab is the default.
func FAQ() []FAQCategory {
	return []FAQCategory{
		{Name: "General", Questions: []Question{
			{Q: "What areas do you serve?", A: "We serve Orting, Washington and the surrounding area within an 80-mile radius. This includes all of King County, Pierce County, and many surrounding communities. Contact us to confirm we serve your specific location."},
			{Q: "Are you licensed and insured?", A: "Yes, Blackstone Contractors LLC is fully licensed and insured. We carry comprehensive liability insurance to protect you and your property throughout every project."},
			{Q: "How long have you been in business?", A: "Blackstone Contractors has been in business for 2 years, but our owner brings over 9 years of hands-on concrete experience to every project."},
			{Q: "Do you offer free estimates?", A: "Absolutely! We provide free, no-obligation estimates for all projects. Contact us to schedule yours."},
		}},
		{Name: "Project Timeline", Questions: []Question{
			{Q: "How long does a typical driveway installation take?", A: "A standard residential driveway typically takes 2-3 days for preparation and pour, followed by a 7-day curing period before light use. You can drive on it after about 7 days, though full cure takes 28 days."},
			{Q: "What is the concrete curing process?", A: "Concrete curing is the process of maintaining adequate moisture and temperature for proper strength development. We typically recommend staying off new concrete for 24-48 hours, light foot traffic after 3 days, and vehicles after 7 days."},
			{Q: "How far in advance should I schedule my project?", A: "We recommend scheduling 2-4 weeks in advance during our busy season (spring through fall). Winter projects may have more flexibility, though weather conditions must be suitable for concrete work."},
			{Q: "Can you pour concrete in rain or cold weather?", A: "We avoid pouring during active rain or when temperatures are below 40°F. Cold weather pours are possible with proper precautions, but we'll always advise you on the best timing for quality results."},
		}},
		{Name: "Pricing", Questions: []Question{
			{Q: "How much does a concrete driveway cost?", A: "Concrete driveway costs vary based on size, thickness, finish type, and site preparation needs. Basic broom finish driveways start around $8-12 per square foot, while decorative options like stamped concrete run $12-20+ per square foot. Contact us for a specific quote."},
			{Q: "What factors affect concrete pricing?", A: "Key factors include: square footage, concrete thickness, finish type (basic vs. decorative), site preparation/demolition needs, reinforcement requirements, accessibility, and any custom features."},
			{Q: "Do you require a deposit?", A: "Yes, we typically require a deposit to schedule your project and secure materials. The deposit amount varies by project size and is discussed during the estimate process."},
			{Q: "Do you offer financing?", A: "We can discuss payment options during your estimate. While we don't offer direct financing, we can work with you on payment schedules for larger projects."},
		}},
		{Name: "Services", Questions: []Question{
			{Q: "What types of concrete finishes do you offer?", A: "We offer a full range of finishes including: broom finish, stamped concrete (various patterns), exposed aggregate, hard trowel, cast finish, and colored concrete. Visit our Services page for detailed descriptions."},
			{Q: "Do you remove old concrete?", A: "Yes, we provide complete demolition services including removal of old concrete, haul-away, and site preparation for new installation."},
			{Q: "Can you repair existing concrete instead of replacing it?", A: "Often, yes! Minor cracks, spalling, and surface damage can frequently be repaired. We'll assess your concrete and give you an honest recommendation on whether repair or replacement is the better investment."},
			{Q: "Do you do commercial projects?", A: "Yes, we handle both residential and commercial concrete projects. Commercial work includes parking lots, sidewalks, loading docks, and more."},
		}},
		{Name: "Maintenance", Questions: []Question{
			{Q: "How do I maintain my new concrete?", A: "Keep it clean with regular sweeping and occasional washing. Seal decorative concrete every 2-3 years. Avoid de-icing chemicals in winter (use sand instead). Address any cracks promptly to prevent water infiltration."},
			{Q: "Should I seal my concrete?", A: "Sealing is highly recommended for decorative concrete and beneficial for standard concrete. It protects against staining, moisture penetration, and wear. We offer sealing services and can advise on the best products."},
			{Q: "Why is my concrete cracking?", A: "Some hairline cracks are normal due to concrete's natural shrinkage. Proper control joints minimize visible cracking. Larger cracks may indicate settling, poor installation, or excessive load. Contact us for an assessment if you're concerned."},
			{Q: "How long will my concrete last?", A: "Properly installed and maintained concrete can last 30+ years. Factors affecting longevity include installation quality, weather exposure, maintenance, and use patterns."},
		}},
	}
}
