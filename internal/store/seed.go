package store

import (
	"time"

	"campusconnect_backend/internal/models"
)

// Seed loads the demo dataset: two students, two companies, three posts,
// three jobs and no applications. Ids are fixed so demo logins stay stable
// across restarts.
func Seed(s *Store) error {
	students := []*models.Student{
		{
			ID:           "S001",
			Name:         "Arjun Patel",
			Email:        "arjun@djsanghvi.edu",
			Password:     "student123",
			Semester:     7,
			CGPA:         8.7,
			Skills:       []string{"Python", "JavaScript", "React", "Machine Learning"},
			Connections:  247,
			PostsCount:   12,
			ProfileViews: 534,
		},
		{
			ID:           "S002",
			Name:         "Priya Sharma",
			Email:        "priya@djsanghvi.edu",
			Password:     "student123",
			Semester:     6,
			CGPA:         9.1,
			Skills:       []string{"Java", "Spring Boot", "SQL", "AWS"},
			Connections:  189,
			PostsCount:   8,
			ProfileViews: 421,
		},
	}

	companies := []*models.Company{
		{
			ID:       "C001",
			Name:     "TechCorp Solutions",
			Email:    "techcorp@djsanghvi.edu",
			Password: "company123",
			Industry: "Software Development",
			Size:     "500-1000",
			About:    "Leading software development company specializing in cloud solutions and AI",
		},
		{
			ID:       "C002",
			Name:     "DataInsight Analytics",
			Email:    "datainsight@djsanghvi.edu",
			Password: "company123",
			Industry: "Data Science",
			Size:     "100-500",
			About:    "Building the future of business intelligence and predictive analytics",
		},
	}

	posts := []*models.Post{
		{
			ID:          "P001",
			StudentID:   "S001",
			StudentName: "Arjun Patel",
			Content:     "Just completed my internship at Amazon as a Software Development Engineer! Excited to apply what I've learned.",
			Timestamp:   time.Date(2025, 11, 5, 9, 0, 0, 0, time.Local),
			Likes:       42,
			Comments:    8,
		},
		{
			ID:          "P002",
			StudentID:   "S002",
			StudentName: "Priya Sharma",
			Content:     "Proud to announce that I've been selected for the Google Summer of Code 2025! 🎉",
			Timestamp:   time.Date(2025, 11, 5, 6, 0, 0, 0, time.Local),
			Likes:       67,
			Comments:    15,
		},
		{
			ID:          "P003",
			StudentID:   "S001",
			StudentName: "Arjun Patel",
			Content:     "Published my research paper on Machine Learning at IEEE International Conference. Link in bio!",
			Timestamp:   time.Date(2025, 11, 4, 15, 30, 0, 0, time.Local),
			Likes:       35,
			Comments:    12,
		},
	}

	jobs := []*models.Job{
		{
			ID:           "J001",
			CompanyID:    "C001",
			CompanyName:  "TechCorp Solutions",
			Title:        "Senior Software Engineer",
			Description:  "Looking for experienced software engineer with strong backend development skills",
			Location:     "Bangalore",
			Salary:       "12-18 LPA",
			Type:         "Full-time",
			Skills:       []string{"Python", "Java", "AWS"},
			PostedDate:   time.Date(2025, 11, 4, 0, 0, 0, 0, time.Local),
			Applications: 3,
		},
		{
			ID:           "J002",
			CompanyID:    "C002",
			CompanyName:  "DataInsight Analytics",
			Title:        "Data Science Intern",
			Description:  "Exciting opportunity for data science enthusiasts to work on real-world analytics projects",
			Location:     "Mumbai",
			Salary:       "8-12 LPA",
			Type:         "Internship",
			Skills:       []string{"Python", "Machine Learning", "SQL"},
			PostedDate:   time.Date(2025, 11, 3, 0, 0, 0, 0, time.Local),
			Applications: 5,
		},
		{
			ID:           "J003",
			CompanyID:    "C001",
			CompanyName:  "TechCorp Solutions",
			Title:        "Full Stack Developer",
			Description:  "Build scalable web applications using modern tech stack. ReactJS and Node.js experience required",
			Location:     "Bangalore",
			Salary:       "10-16 LPA",
			Type:         "Full-time",
			Skills:       []string{"JavaScript", "React", "Node.js"},
			PostedDate:   time.Date(2025, 11, 2, 0, 0, 0, 0, time.Local),
			Applications: 7,
		},
	}

	return s.Update(func() error {
		for _, st := range students {
			if err := s.Students.Insert(st); err != nil {
				return err
			}
		}
		for _, c := range companies {
			if err := s.Companies.Insert(c); err != nil {
				return err
			}
		}
		for _, p := range posts {
			if err := s.Posts.Insert(p); err != nil {
				return err
			}
		}
		for _, j := range jobs {
			if err := s.Jobs.Insert(j); err != nil {
				return err
			}
		}
		return nil
	})
}
