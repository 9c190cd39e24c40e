package model

type FacultyMember struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:200;not null" json:"name"`
	Department     string `gorm:"size:100;not null" json:"department"`
	Designation    string `gorm:"size:100;not null" json:"designation"`
	SubjectsTaught string `gorm:"type:text" json:"subjects_taught"`
	Contact        string `gorm:"size:20" json:"contact"`
	Email          string `gorm:"size:100" json:"email"`
	PhotoURL       string `gorm:"size:500" json:"photo_url"`
}

// PrincipalInfo is a singleton: at most one row exists.
type PrincipalInfo struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:200;not null" json:"name"`
	Education    string `gorm:"type:text;not null" json:"education"`
	Achievements string `gorm:"type:text" json:"achievements"`
	Medals       string `gorm:"type:text" json:"medals"`
	Contact      string `gorm:"size:20" json:"contact"`
	Email        string `gorm:"size:100" json:"email"`
	PhotoURL     string `gorm:"size:500" json:"photo_url"`
}
