// Package format renders content rows into the plain-text sections the
// chatbot serves: the assistant context, the keyword-matched answers and the
// formatted_text fields on the public GET endpoints. Every function is total;
// missing data becomes a "not available" line, never an error.
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"college-assist/internal/model"
	"college-assist/internal/snapshot"
)

// Currency renders an amount as rupees with comma grouping and two
// decimals, e.g. 10001 -> "₹10,001.00".
func Currency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	return "₹" + sign + grouped.String() + "." + frac
}

// FeesSection lists every fee category with its total and component
// breakdown, one bullet per category.
func FeesSection(fees []model.FeeStructure) string {
	if len(fees) == 0 {
		return "No fees data available."
	}
	lines := make([]string, 0, len(fees))
	for _, fee := range fees {
		lines = append(lines, fmt.Sprintf(
			"- %s: Total %s (Prospectus %s, Tuition %s, Development %s, Training & Placement %s, ISTE %s, Library %s, Insurance %s)",
			fee.Category,
			Currency(fee.TotalFees),
			Currency(fee.ProspectusFees),
			Currency(fee.TuitionFees),
			Currency(fee.DevelopmentFees),
			Currency(fee.TrainingPlacementFees),
			Currency(fee.ISTEFees),
			Currency(fee.LibraryLabFees),
			Currency(fee.StudentInsurance),
		))
	}
	return strings.Join(lines, "\n")
}

// DocumentsSection groups documents by admission type, keeping the order
// types first appear and sorting each group by display order.
func DocumentsSection(documents []model.AdmissionDocument) string {
	if len(documents) == 0 {
		return "No admission document data available."
	}

	var types []string
	grouped := make(map[string][]model.AdmissionDocument)
	for _, doc := range documents {
		admissionType := doc.AdmissionType
		if admissionType == "" {
			admissionType = "General"
		}
		if _, seen := grouped[admissionType]; !seen {
			types = append(types, admissionType)
		}
		grouped[admissionType] = append(grouped[admissionType], doc)
	}

	var lines []string
	for _, admissionType := range types {
		lines = append(lines, strings.ToUpper(admissionType)+":")
		docs := grouped[admissionType]
		sort.SliceStable(docs, func(i, j int) bool {
			return docs[i].DisplayOrder < docs[j].DisplayOrder
		})
		for _, doc := range docs {
			required := "Required"
			if !doc.IsRequired {
				required = "Optional"
			}
			lines = append(lines, fmt.Sprintf("  - %s (%s)", doc.DocumentName, required))
		}
	}
	return strings.Join(lines, "\n")
}

func LibrarySection(books []model.LibraryBook, timings *model.LibraryTiming) string {
	categories := "Data not available"
	if len(books) > 0 {
		names := make([]string, 0, len(books))
		for _, book := range books {
			category := book.Category
			if category == "" {
				category = "General"
			}
			names = append(names, category)
		}
		categories = strings.Join(names, ", ")
	}

	timeText := "Timings data not available."
	if timings != nil {
		timeText = fmt.Sprintf(
			"Issue: %s - %s, Return: %s - %s, Lunch Break: %s - %s",
			orDash(timings.IssueStartTime), orDash(timings.IssueEndTime),
			orDash(timings.ReturnStartTime), orDash(timings.ReturnEndTime),
			orDash(timings.LunchBreakStart), orDash(timings.LunchBreakEnd),
		)
	}
	return fmt.Sprintf("- Available Categories: %s\n- Timings: %s", categories, timeText)
}

// HostelSection lists the available facilities plus the fee schedule. Fees
// default to zero when no schedule has been recorded yet.
func HostelSection(facilities []model.HostelFacility, fees *model.HostelFeeSchedule) string {
	if len(facilities) == 0 && fees == nil {
		return "Hostel data not available."
	}
	names := make([]string, 0, len(facilities))
	for _, facility := range facilities {
		if !facility.IsAvailable {
			continue
		}
		names = append(names, facility.FacilityName)
	}
	var perSemester, perMonth float64
	if fees != nil {
		perSemester = fees.HostelFeesPerSemester
		perMonth = fees.MessFeesPerMonth
	}
	return fmt.Sprintf(
		"Facilities: %s\nHostel Fees: %s per semester\nMess Fees: %s per month",
		strings.Join(names, ", "),
		Currency(perSemester),
		Currency(perMonth),
	)
}

// ScholarshipsSection lists active scholarships only.
func ScholarshipsSection(scholarships []model.Scholarship) string {
	if len(scholarships) == 0 {
		return "No scholarships available."
	}
	var lines []string
	for _, scholarship := range scholarships {
		if !scholarship.IsActive {
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"- %s (%s): %s | Eligibility: %s | Documents: %s",
			scholarship.ScholarshipName,
			orText(scholarship.Category, "General"),
			scholarship.Amount,
			orText(scholarship.Eligibility, "Refer to scholarship cell"),
			orText(scholarship.DocumentsRequired, "As per instructions"),
		))
	}
	if len(lines) == 0 {
		return "No active scholarships at the moment."
	}
	return strings.Join(lines, "\n")
}

// FacultySection renders the staff list as a Markdown table.
func FacultySection(members []model.FacultyMember) string {
	if len(members) == 0 {
		return "Faculty data not available."
	}
	lines := []string{
		"| **Name** | **Designation** | **Department** | **Mobile** | **Email** | **Subjects** |",
		"|---------|-----------------|---------------|-----------|-----------|-------------|",
	}
	for _, member := range members {
		lines = append(lines, fmt.Sprintf(
			"| **%s** | **%s** | **%s** | %s | %s | %s |",
			member.Name,
			member.Designation,
			member.Department,
			orText(member.Contact, "N/A"),
			orText(member.Email, "N/A"),
			member.SubjectsTaught,
		))
	}
	return strings.Join(lines, "\n")
}

func PrincipalSection(principal *model.PrincipalInfo) string {
	if principal == nil {
		return "Data not available."
	}
	return fmt.Sprintf(
		"Name: %s\nMobile: %s\nEmail: %s\nEducation: %s\nAchievements: %s",
		principal.Name,
		orText(principal.Contact, "N/A"),
		orText(principal.Email, "N/A"),
		principal.Education,
		principal.Achievements,
	)
}

func EventsSection(events []model.Event) string {
	if len(events) == 0 {
		return "No upcoming events recorded."
	}
	lines := make([]string, 0, len(events))
	for _, event := range events {
		status := "Active"
		if !event.IsActive {
			status = "Inactive"
		}
		date := "To be announced"
		if !event.EventDate.IsZero() {
			date = event.EventDate.Format(snapshot.DateLayout)
		}
		lines = append(lines, fmt.Sprintf(
			"- %s (%s) on %s [%s]",
			event.EventName,
			orText(event.EventType, "General"),
			date,
			status,
		))
	}
	return strings.Join(lines, "\n")
}

func CollegeTimingsSection(timings *model.CollegeTiming) string {
	if timings == nil {
		return "Timings data not available."
	}
	return fmt.Sprintf(
		"Weekdays: %s - %s, Saturday: %s - %s",
		timings.OpeningTime, timings.ClosingTime,
		timings.SaturdayOpening, timings.SaturdayClosing,
	)
}

// RequiredDocumentsText is the formatted_text for the public admission
// documents endpoint: required documents first, then the optional ones.
func RequiredDocumentsText(admissionType string, documents []model.AdmissionDocument) string {
	if len(documents) == 0 {
		return fmt.Sprintf(
			"No documents found for %s admission route. Please contact the admission office for document requirements.",
			admissionType,
		)
	}
	var required, optional []string
	for _, doc := range documents {
		if doc.IsRequired {
			required = append(required, doc.DocumentName)
		} else {
			optional = append(optional, doc.DocumentName)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Required Documents for %s Admission:\n", admissionType)
	if len(required) == 0 {
		b.WriteString("- No required documents listed.\n")
	}
	for _, name := range required {
		b.WriteString("- " + name + "\n")
	}
	if len(optional) > 0 {
		b.WriteString("\nOptional Documents:\n")
		for _, name := range optional {
			b.WriteString("- " + name + "\n")
		}
	}
	return b.String()
}

func orDash(s string) string { return orText(s, "--") }

func orText(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
