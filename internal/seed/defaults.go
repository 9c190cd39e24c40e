package seed

import "college-assist/internal/snapshot"

// Built-in content used whenever the snapshot has nothing for a category.
// Mirrors the college's published figures at the time of writing; admins
// overwrite all of it through the API afterwards.

func defaultFees() []snapshot.FeeRecord {
	return []snapshot.FeeRecord{
		{
			Category:              "OPEN",
			ProspectusFees:        200,
			TuitionFees:           10001,
			DevelopmentFees:       5045,
			TrainingPlacementFees: 2000,
			ISTEFees:              300,
			LibraryLabFees:        2000,
			StudentInsurance:      454,
		},
	}
}

func defaultDocuments() []snapshot.DocumentRecord {
	names := []string{
		"10th Marksheet",
		"12th Marksheet",
		"Leaving Certificate",
		"Domicile Certificate",
		"Aadhar Card",
		"MHT-CET Score Card",
		"Passport Photos",
	}
	records := make([]snapshot.DocumentRecord, 0, len(names))
	for i, name := range names {
		records = append(records, snapshot.DocumentRecord{
			AdmissionType: "12th",
			DocumentName:  name,
			DisplayOrder:  snapshot.NewIndex(i + 1),
		})
	}
	return records
}

func defaultLibraryBooks() []snapshot.LibraryBookRecord {
	categories := []string{
		"Computer Engineering",
		"Information Technology",
		"Mathematics",
		"Physics",
		"Competitive Exam Books",
	}
	records := make([]snapshot.LibraryBookRecord, 0, len(categories))
	for _, category := range categories {
		records = append(records, snapshot.LibraryBookRecord{Category: category, BookCount: 100})
	}
	return records
}

func defaultLibraryTimings() *snapshot.LibraryTimingsRecord {
	return &snapshot.LibraryTimingsRecord{
		IssueStartTime:  "10:00 AM",
		IssueEndTime:    "05:30 PM",
		ReturnStartTime: "10:00 AM",
		ReturnEndTime:   "05:30 PM",
		LunchBreakStart: "01:00 PM",
		LunchBreakEnd:   "02:00 PM",
	}
}

func defaultHostelFacilities() []snapshot.HostelFacilityRecord {
	names := []string{
		"Bed, Mattress, Cupboard",
		"RO Water",
		"Wi-Fi",
		"Study Room",
		"Hot Water",
		"CCTV Security",
		"Mess/Canteen",
	}
	records := make([]snapshot.HostelFacilityRecord, 0, len(names))
	for _, name := range names {
		records = append(records, snapshot.HostelFacilityRecord{FacilityName: name})
	}
	return records
}

func defaultHostelFees() *snapshot.HostelFeeRecord {
	return &snapshot.HostelFeeRecord{
		HostelFeesPerSemester: 10000,
		MessFeesPerMonth:      2500,
	}
}

func defaultScholarships() []snapshot.ScholarshipRecord {
	return []snapshot.ScholarshipRecord{
		{ScholarshipName: "Post-Matric SC", Category: "SC"},
		{ScholarshipName: "Post-Matric ST", Category: "ST"},
		{ScholarshipName: "OBC/SBC/VJNT", Category: "OBC"},
		{ScholarshipName: "EWS Scholarship", Category: "EWS"},
		{ScholarshipName: "TFWS", Category: "TFWS"},
		{ScholarshipName: "AICTE Pragati", Category: "Girls"},
	}
}

func defaultFaculty() []snapshot.FacultyRecord {
	return []snapshot.FacultyRecord{
		{
			Name:           "Prof. S. R. Kulkarni",
			Department:     "Computer",
			Designation:    "HOD",
			SubjectsTaught: "Programming, DBMS",
		},
		{
			Name:           "Prof. P. N. Deshmukh",
			Department:     "IT",
			Designation:    "Lecturer",
			SubjectsTaught: "Networks, Security",
		},
		{
			Name:           "Prof. K. V. Jadhav",
			Department:     "Mechanical",
			Designation:    "Lecturer",
			SubjectsTaught: "Thermodynamics",
		},
	}
}

func defaultPrincipal() *snapshot.PrincipalRecord {
	return &snapshot.PrincipalRecord{
		Name:         "Dr. A. B. Patil",
		Education:    "Ph.D. in Electronics Engineering",
		Achievements: "Published 25+ research papers.",
		Medals:       "Best Principal Award 2022",
		Contact:      "+91-9999999999",
		Email:        "principal@gpambajogai.ac.in",
		PhotoURL:     "https://via.placeholder.com/150",
	}
}

func defaultEvents() []snapshot.EventRecord {
	return []snapshot.EventRecord{
		{EventName: "Annual Cultural Fest", EventType: "Cultural"},
		{EventName: "Intra-College Sports Meet", EventType: "Sports"},
		{EventName: "Tech Symposium", EventType: "Technical"},
	}
}

func defaultCollegeTimings() *snapshot.CollegeTimingsRecord {
	return &snapshot.CollegeTimingsRecord{
		OpeningTime:     "09:00 AM",
		ClosingTime:     "05:00 PM",
		SaturdayOpening: "09:00 AM",
		SaturdayClosing: "01:00 PM",
	}
}
