package projector

import (
	"sort"

	"campusconnect_backend/internal/algorithms"
	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/store"
	"campusconnect_backend/internal/utils"
	"campusconnect_backend/pkg/apperrors"
)

// Projector turns store state plus an acting identity into view models.
// Every method takes a consistent read snapshot and mutates nothing.
type Projector struct {
	store *store.Store
}

func New(st *store.Store) *Projector {
	return &Projector{store: st}
}

// Feed returns all posts, most recent first. The sort is stable so posts
// with equal timestamps keep their insertion order. CanDelete is set on the
// viewer's own posts.
func (p *Projector) Feed(viewerStudentID string) []FeedItem {
	var items []FeedItem
	p.store.View(func() {
		for post := range p.store.Posts.All() {
			items = append(items, FeedItem{
				PostID:         post.ID,
				StudentID:      post.StudentID,
				StudentName:    post.StudentName,
				StudentInitial: utils.Initials(post.StudentName),
				ProfileImage:   post.ProfileImage,
				Content:        post.Content,
				Image:          post.Image,
				Timestamp:      post.Timestamp,
				PostedAgo:      utils.TimeAgo(post.Timestamp),
				Likes:          post.Likes,
				Comments:       post.Comments,
				CanDelete:      post.StudentID == viewerStudentID,
			})
		}
	})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items
}

// JobRecommendations scores every job against the student's skills and
// returns them best match first, ties keeping original job order.
func (p *Projector) JobRecommendations(studentID string) ([]JobRecommendation, error) {
	var (
		recs    []JobRecommendation
		student *models.Student
	)
	p.store.View(func() {
		var ok bool
		student, ok = p.store.Students.Get(studentID)
		if !ok {
			return
		}
		for job := range p.store.Jobs.All() {
			applied := false
			for range p.store.Applications.Query(func(a *models.Application) bool {
				return a.StudentID == studentID && a.JobID == job.ID
			}) {
				applied = true
				break
			}
			recs = append(recs, JobRecommendation{
				JobID:          job.ID,
				CompanyID:      job.CompanyID,
				CompanyName:    job.CompanyName,
				Title:          job.Title,
				Description:    job.Description,
				Location:       job.Location,
				Salary:         job.Salary,
				Type:           job.Type,
				Skills:         job.Skills,
				PostedAgo:      utils.TimeAgo(job.PostedDate),
				MatchScore:     algorithms.CalculateMatchScore(student.Skills, job.Skills),
				AlreadyApplied: applied,
			})
		}
	})
	if student == nil {
		return nil, apperrors.NotFound("Student")
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	return recs, nil
}

// Companies lists every company with its count of active job postings.
func (p *Projector) Companies() []CompanyCard {
	var cards []CompanyCard
	p.store.View(func() {
		for company := range p.store.Companies.All() {
			count := 0
			for range p.store.Jobs.Query(func(j *models.Job) bool {
				return j.CompanyID == company.ID
			}) {
				count++
			}
			cards = append(cards, CompanyCard{
				CompanyID:      company.ID,
				Name:           company.Name,
				Initials:       utils.Initials(company.Name),
				Industry:       company.Industry,
				About:          company.About,
				ActiveJobCount: count,
			})
		}
	})
	return cards
}

// Candidates groups applications against the company's jobs by applicant,
// first applicant seen first, with each student's application count.
func (p *Projector) Candidates(companyID string) []Candidate {
	var candidates []Candidate
	p.store.View(func() {
		counts := make(map[string]int)
		var order []string
		for app := range p.store.Applications.All() {
			job, ok := p.store.Jobs.Get(app.JobID)
			if !ok || job.CompanyID != companyID {
				continue
			}
			if _, seen := counts[app.StudentID]; !seen {
				order = append(order, app.StudentID)
			}
			counts[app.StudentID]++
		}

		for _, studentID := range order {
			student, ok := p.store.Students.Get(studentID)
			if !ok {
				continue
			}
			candidates = append(candidates, Candidate{
				StudentID:        student.ID,
				Name:             student.Name,
				Initials:         utils.Initials(student.Name),
				CGPA:             student.CGPA,
				Semester:         student.Semester,
				Skills:           student.Skills,
				ApplicationCount: counts[studentID],
			})
		}
	})
	return candidates
}

// Applications lists applications against the company's jobs, each with the
// resolved applicant and job. statusFilter narrows to one status; empty
// means all.
func (p *Projector) Applications(companyID string, statusFilter models.ApplicationStatus) []ApplicationEntry {
	var entries []ApplicationEntry
	p.store.View(func() {
		for app := range p.store.Applications.All() {
			job, ok := p.store.Jobs.Get(app.JobID)
			if !ok || job.CompanyID != companyID {
				continue
			}
			if statusFilter != "" && app.Status != statusFilter {
				continue
			}
			student, ok := p.store.Students.Get(app.StudentID)
			if !ok {
				continue
			}
			entries = append(entries, ApplicationEntry{
				ApplicationID:   app.ID,
				Status:          string(app.Status),
				AppliedDate:     app.AppliedDate,
				StudentID:       student.ID,
				StudentName:     student.Name,
				StudentInitials: utils.Initials(student.Name),
				CGPA:            student.CGPA,
				Semester:        student.Semester,
				Skills:          student.Skills,
				JobID:           job.ID,
				JobTitle:        job.Title,
			})
		}
	})
	return entries
}

// StudentApplications is the student profile's "Your Applications" list.
func (p *Projector) StudentApplications(studentID string) []StudentApplicationEntry {
	var entries []StudentApplicationEntry
	p.store.View(func() {
		for app := range p.store.Applications.Query(func(a *models.Application) bool {
			return a.StudentID == studentID
		}) {
			job, ok := p.store.Jobs.Get(app.JobID)
			if !ok {
				continue
			}
			entries = append(entries, StudentApplicationEntry{
				ApplicationID: app.ID,
				JobTitle:      job.Title,
				CompanyName:   job.CompanyName,
				Status:        string(app.Status),
			})
		}
	})
	return entries
}

// CompanyJobs lists the company's own postings in posting order.
func (p *Projector) CompanyJobs(companyID string) []CompanyJobItem {
	var items []CompanyJobItem
	p.store.View(func() {
		for job := range p.store.Jobs.Query(func(j *models.Job) bool {
			return j.CompanyID == companyID
		}) {
			items = append(items, CompanyJobItem{
				JobID:        job.ID,
				Title:        job.Title,
				Description:  job.Description,
				Location:     job.Location,
				Salary:       job.Salary,
				Type:         job.Type,
				Skills:       job.Skills,
				PostedAgo:    utils.TimeAgo(job.PostedDate),
				Applications: job.Applications,
			})
		}
	})
	return items
}

// StudentProfile resolves the profile screen's view model.
func (p *Projector) StudentProfile(studentID string) (*StudentProfileView, error) {
	var view *StudentProfileView
	p.store.View(func() {
		student, ok := p.store.Students.Get(studentID)
		if !ok {
			return
		}
		view = &StudentProfileView{
			StudentID:    student.ID,
			Name:         student.Name,
			Initials:     utils.Initials(student.Name),
			Email:        student.Email,
			ProfileImage: student.ProfileImage,
			Semester:     student.Semester,
			CGPA:         student.CGPA,
			Skills:       student.Skills,
			Connections:  student.Connections,
			PostsCount:   student.PostsCount,
			ProfileViews: student.ProfileViews,
		}
	})
	if view == nil {
		return nil, apperrors.NotFound("Student")
	}
	return view, nil
}

// CompanyProfile resolves the company profile view model.
func (p *Projector) CompanyProfile(companyID string) (*CompanyProfileView, error) {
	var view *CompanyProfileView
	p.store.View(func() {
		company, ok := p.store.Companies.Get(companyID)
		if !ok {
			return
		}
		view = &CompanyProfileView{
			CompanyID: company.ID,
			Name:      company.Name,
			Initials:  utils.Initials(company.Name),
			Email:     company.Email,
			Industry:  company.Industry,
			Size:      company.Size,
			About:     company.About,
			Logo:      company.Logo,
		}
	})
	if view == nil {
		return nil, apperrors.NotFound("Company")
	}
	return view, nil
}
