package testsupport

// IntakePrompts lists the printed prompts of the business intake form in
// order, as "<number>. <label>".
func IntakePrompts() []string {
	return []string{
		"1. Business Name",
		"2. Your Tagline or Slogan",
		"3. Preferred Heading Font Style",
		"4. Preferred Heading Color",
		"5. Your Logo",
		"6. Your Business Story (the 'why' behind your work)",
		"7. Your Mission",
		"8. What Makes You Unique?",
		"9. What is the main goal of your landing page?",
		"10. Who is your ideal customer?",
		"11. List 5–10 keywords people would use to find you",
		"12. List up to 10 key services or products",
		"13. Email Address for Customer Contact",
		"14. Phone Number",
		"15. Is this a WhatsApp number?",
		"16. Business Address",
		"17. Primary Website Link (e.g., Etsy, Booking Page)",
		"18. Facebook",
		"19. Instagram",
		"20. LinkedIn / Other",
		"21. Up to 5 images",
	}
}
