package format

import (
	"strings"

	"college-assist/internal/snapshot"
)

// SystemPrompt builds the assistant instructions plus every content section,
// the context handed to the language model at session start.
func SystemPrompt(data snapshot.Data) string {
	parts := []string{
		"You are a helpful college assistant for Government Polytechnic, Ambajogai, Maharashtra.",
		"",
		"COLLEGE INFORMATION:",
		"",
		"Fees Structure:",
		FeesSection(data.Fees),
		"",
		"Admission Process:",
		DocumentsSection(data.Documents),
		"",
		"Library:",
		LibrarySection(data.LibraryBooks, data.LibraryTimings),
		"",
		"Hostel:",
		HostelSection(data.Hostel, data.HostelFees),
		"",
		"Scholarships:",
		ScholarshipsSection(data.Scholarships),
		"",
		"Faculty:",
		FacultySection(data.Faculty),
		"",
		"Principal:",
		PrincipalSection(data.Principal),
		"",
		"Events:",
		EventsSection(data.Events),
		"",
		"College Timings:",
		CollegeTimingsSection(data.CollegeTimings),
		"",
		"INSTRUCTIONS:",
		"- Answer only college-related questions.",
		"- Be friendly and helpful.",
		"- Provide accurate information from the data above.",
		"- Mention Ambajogai, Maharashtra when appropriate.",
		"- If asked about fees, include category-specific amounts.",
		"- If asked about scholarships, include eligibility information.",
		`- If the user says "I need help", ask for their name and contact to create a help ticket.`,
		"- For admission queries, explain the process step by step.",
	}
	return strings.Join(parts, "\n")
}

// Overview renders every content section as a single reader-facing answer,
// served when no topic keyword matches and no language model is available.
func Overview(data snapshot.Data) string {
	parts := []string{
		"Here is an overview of Government Polytechnic, Ambajogai, Maharashtra.",
		"",
		"Fees Structure:",
		FeesSection(data.Fees),
		"",
		"Admission Documents:",
		DocumentsSection(data.Documents),
		"",
		"Library:",
		LibrarySection(data.LibraryBooks, data.LibraryTimings),
		"",
		"Hostel:",
		HostelSection(data.Hostel, data.HostelFees),
		"",
		"Scholarships:",
		ScholarshipsSection(data.Scholarships),
		"",
		"Events:",
		EventsSection(data.Events),
		"",
		"College Timings:",
		CollegeTimingsSection(data.CollegeTimings),
	}
	return strings.Join(parts, "\n")
}

// KeywordAnswer is the rule-based responder. It scans the message for topic
// keywords and stitches the matching sections together. An empty return
// means no topic matched and the caller decides what to say instead.
func KeywordAnswer(message string, data snapshot.Data) string {
	text := strings.ToLower(message)
	contains := func(words ...string) bool {
		for _, word := range words {
			if strings.Contains(text, word) {
				return true
			}
		}
		return false
	}

	var sections []string
	if contains("fee") {
		sections = append(sections,
			"Here is the current fee structure for different categories:\n"+FeesSection(data.Fees))
	}
	if contains("admission", "document") {
		sections = append(sections,
			"For admissions, the following documents are generally required:\n"+DocumentsSection(data.Documents))
	}
	if contains("library") {
		sections = append(sections,
			"Library information:\n"+LibrarySection(data.LibraryBooks, data.LibraryTimings))
	}
	if contains("hostel", "mess") {
		sections = append(sections,
			"Hostel facilities and fees:\n"+HostelSection(data.Hostel, data.HostelFees))
	}
	if contains("scholarship") {
		sections = append(sections,
			"Available scholarships:\n"+ScholarshipsSection(data.Scholarships))
	}
	if contains("faculty", "staff", "teacher") {
		sections = append(sections,
			"Key faculty members:\n"+FacultySection(data.Faculty))
	}
	if contains("principal") {
		if data.Principal != nil {
			sections = append(sections, "Principal information:\n"+PrincipalSection(data.Principal))
		} else {
			sections = append(sections, "Principal information is not yet available.")
		}
	}
	if contains("event", "fest") {
		sections = append(sections,
			"Upcoming and recent events:\n"+EventsSection(data.Events))
	}
	if contains("time", "timing", "schedule") {
		if data.CollegeTimings != nil {
			sections = append(sections, "College timings:\n"+
				"Weekdays: "+data.CollegeTimings.OpeningTime+" - "+data.CollegeTimings.ClosingTime+"\n"+
				"Saturday: "+data.CollegeTimings.SaturdayOpening+" - "+data.CollegeTimings.SaturdayClosing)
		} else {
			sections = append(sections, "College timing information is not yet available.")
		}
	}
	if contains("help") && contains("need") {
		sections = append(sections,
			"I can create a help ticket for you. Please click on 'I Need Help' and provide your name and contact"+
				" number so our staff from Government Polytechnic, Ambajogai can reach out to you.")
	}

	return strings.Join(sections, "\n\n")
}
