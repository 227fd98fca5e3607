package models

// AdminStats are the headline counters on the admin dashboard.
type AdminStats struct {
	TotalStudents      int `json:"totalStudents"`
	TotalFaculty       int `json:"totalFaculty"`
	TotalCourses       int `json:"totalCourses"`
	TotalAnnouncements int `json:"totalAnnouncements"`
}

// AdminDashboard is returned by GET /admin/dashboard.
type AdminDashboard struct {
	Stats               AdminStats     `json:"stats"`
	RecentAnnouncements []Announcement `json:"recentAnnouncements"`
	RecentStudents      []Student      `json:"recentStudents"`
}

// StudentStats are the headline counters on the student dashboard.
type StudentStats struct {
	EnrolledCourses    int     `json:"enrolledCourses"`
	CGPA               float64 `json:"cgpa"`
	Attendance         float64 `json:"attendance"`
	PendingAssignments int     `json:"pendingAssignments"`
}

// StudentDashboard is returned by GET /students/dashboard.
type StudentDashboard struct {
	Student       Student        `json:"student"`
	Stats         StudentStats   `json:"stats"`
	Courses       []Course       `json:"courses"`
	Announcements []Announcement `json:"announcements"`
}

// Normalize replaces nil collections with empty ones.
func (d *StudentDashboard) Normalize() {
	if d.Courses == nil {
		d.Courses = []Course{}
	}
	if d.Announcements == nil {
		d.Announcements = []Announcement{}
	}
}

// Normalize replaces nil collections with empty ones.
func (d *AdminDashboard) Normalize() {
	if d.RecentAnnouncements == nil {
		d.RecentAnnouncements = []Announcement{}
	}
	if d.RecentStudents == nil {
		d.RecentStudents = []Student{}
	}
}

// FacultyDashboard is assembled client-side from the course list and notice board.
type FacultyDashboard struct {
	Identity      Identity       `json:"identity"`
	Courses       []Course       `json:"courses"`
	Announcements []Announcement `json:"announcements"`
}
