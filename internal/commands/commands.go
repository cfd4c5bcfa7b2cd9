package commands

import (
	"strings"
	"time"

	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/store"
	"campusconnect_backend/internal/utils"
	"campusconnect_backend/pkg/apperrors"
)

// Service holds the write-side operations. Each method performs one atomic
// store mutation under the store's write lock and publishes a change event
// on success; a failed call leaves the store exactly as it was. Methods
// return snapshot copies taken inside the critical section, never the
// stored entity itself, so callers can read the result without holding any
// lock.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// JobInput are the fields of the "post new job" form.
type JobInput struct {
	Title       string
	Description string
	Location    string
	Salary      string
	Type        string
	Skills      []string
}

// StudentProfileInput carries optional profile edits; nil fields are left
// unchanged.
type StudentProfileInput struct {
	Name     *string
	Semester *int
	CGPA     *float64
	Skills   []string
}

// CompanyProfileInput carries optional company profile edits.
type CompanyProfileInput struct {
	Name     *string
	Industry *string
	Size     *string
	About    *string
}

// CreatePost inserts a post for the student and bumps their post count.
// The author's name and image are snapshotted onto the post.
func (s *Service) CreatePost(studentID, content string, image []byte) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("Post content must not be empty")
	}

	var created models.Post
	err := s.store.Update(func() error {
		student, ok := s.store.Students.Get(studentID)
		if !ok {
			return apperrors.NotFound("Student")
		}
		post := &models.Post{
			ID:           utils.GenerateID("P"),
			StudentID:    student.ID,
			StudentName:  student.Name,
			ProfileImage: student.ProfileImage,
			Content:      content,
			Image:        image,
			Timestamp:    time.Now(),
		}
		if err := s.store.Posts.Insert(post); err != nil {
			return err
		}
		student.PostsCount++
		created = *post
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Publish(store.Event{Entity: "post", Action: store.ActionCreated, ID: created.ID})
	return &created, nil
}

// LikePost increments the post's like count by one. A missing post is an
// error: the only sanctioned silent no-ops are double delete and double
// logout.
func (s *Service) LikePost(postID string) (int, error) {
	var likes int
	err := s.store.Update(func() error {
		post, ok := s.store.Posts.Get(postID)
		if !ok {
			return apperrors.NotFound("Post")
		}
		post.Likes++
		likes = post.Likes
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.store.Publish(store.Event{Entity: "post", Action: store.ActionUpdated, ID: postID})
	return likes, nil
}

// DeletePost removes the post and decrements the owner's post count,
// floored at zero. Only the owning student may delete; deleting an
// already-deleted post is a no-op.
func (s *Service) DeletePost(postID, requestingStudentID string) error {
	deleted := false
	err := s.store.Update(func() error {
		post, ok := s.store.Posts.Get(postID)
		if !ok {
			return nil
		}
		if post.StudentID != requestingStudentID {
			return apperrors.AuthorizationError("Only the post's author may delete it")
		}
		s.store.Posts.Remove(postID)
		if student, ok := s.store.Students.Get(post.StudentID); ok && student.PostsCount > 0 {
			student.PostsCount--
		}
		deleted = true
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		s.store.Publish(store.Event{Entity: "post", Action: store.ActionDeleted, ID: postID})
	}
	return nil
}

// ApplyForJob inserts a pending application and bumps the job's counter.
// A second application for the same (student, job) pair is rejected and
// changes nothing.
func (s *Service) ApplyForJob(studentID, jobID string) (*models.Application, error) {
	var created models.Application
	err := s.store.Update(func() error {
		job, ok := s.store.Jobs.Get(jobID)
		if !ok {
			return apperrors.NotFound("Job")
		}
		if _, ok := s.store.Students.Get(studentID); !ok {
			return apperrors.NotFound("Student")
		}
		for range s.store.Applications.Query(func(a *models.Application) bool {
			return a.StudentID == studentID && a.JobID == jobID
		}) {
			return apperrors.ErrDuplicateApplication
		}

		app := &models.Application{
			ID:          utils.GenerateID("A"),
			StudentID:   studentID,
			JobID:       jobID,
			CompanyID:   job.CompanyID,
			Status:      models.ApplicationStatusPending,
			AppliedDate: time.Now(),
		}
		if err := s.store.Applications.Insert(app); err != nil {
			return err
		}
		job.Applications++
		created = *app
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Publish(store.Event{Entity: "application", Action: store.ActionCreated, ID: created.ID})
	return &created, nil
}

// PostJob inserts a job for the company with a zero application count and a
// snapshot of the company name.
func (s *Service) PostJob(companyID string, in JobInput) (*models.Job, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, apperrors.NewValidationError("Job title and description must not be empty")
	}

	var created models.Job
	err := s.store.Update(func() error {
		company, ok := s.store.Companies.Get(companyID)
		if !ok {
			return apperrors.NotFound("Company")
		}
		job := &models.Job{
			ID:          utils.GenerateID("J"),
			CompanyID:   company.ID,
			CompanyName: company.Name,
			Title:       strings.TrimSpace(in.Title),
			Description: strings.TrimSpace(in.Description),
			Location:    in.Location,
			Salary:      in.Salary,
			Type:        in.Type,
			Skills:      in.Skills,
			PostedDate:  time.Now(),
		}
		if err := s.store.Jobs.Insert(job); err != nil {
			return err
		}
		created = *job
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Publish(store.Event{Entity: "job", Action: store.ActionCreated, ID: created.ID})
	return &created, nil
}

// DeleteJob removes the job and cascades to its applications, so no
// application is left pointing at a dangling job id. Only the owning
// company may delete; a second delete is a no-op.
func (s *Service) DeleteJob(jobID, requestingCompanyID string) error {
	deleted := false
	err := s.store.Update(func() error {
		job, ok := s.store.Jobs.Get(jobID)
		if !ok {
			return nil
		}
		if job.CompanyID != requestingCompanyID {
			return apperrors.AuthorizationError("Only the posting company may delete this job")
		}

		var dependents []string
		for app := range s.store.Applications.Query(func(a *models.Application) bool {
			return a.JobID == jobID
		}) {
			dependents = append(dependents, app.ID)
		}
		for _, id := range dependents {
			s.store.Applications.Remove(id)
		}
		s.store.Jobs.Remove(jobID)
		deleted = true
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		s.store.Publish(store.Event{Entity: "job", Action: store.ActionDeleted, ID: jobID})
	}
	return nil
}

// UpdateApplicationStatus moves a pending application to accepted or
// rejected. Both outcomes are terminal.
func (s *Service) UpdateApplicationStatus(appID string, newStatus models.ApplicationStatus, requestingCompanyID string) error {
	if !newStatus.Valid() || newStatus == models.ApplicationStatusPending {
		return apperrors.NewValidationError("Status must be accepted or rejected")
	}

	err := s.store.Update(func() error {
		app, ok := s.store.Applications.Get(appID)
		if !ok {
			return apperrors.NotFound("Application")
		}
		job, ok := s.store.Jobs.Get(app.JobID)
		if !ok || job.CompanyID != requestingCompanyID {
			return apperrors.AuthorizationError("Application does not belong to one of your jobs")
		}
		if app.Status != models.ApplicationStatusPending {
			return apperrors.InvalidTransition(string(app.Status))
		}
		app.Status = newStatus
		return nil
	})
	if err != nil {
		return err
	}

	s.store.Publish(store.Event{Entity: "application", Action: store.ActionUpdated, ID: appID})
	return nil
}

// UpdateStudentProfile applies partial profile edits. Existing posts keep
// their snapshotted author name and image.
func (s *Service) UpdateStudentProfile(studentID string, in StudentProfileInput) error {
	if in.Semester != nil && (*in.Semester < 1 || *in.Semester > 8) {
		return apperrors.NewValidationError("Semester must be between 1 and 8")
	}
	if in.CGPA != nil && (*in.CGPA < 0 || *in.CGPA > 10) {
		return apperrors.NewValidationError("CGPA must be between 0.0 and 10.0")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return apperrors.NewValidationError("Name must not be empty")
	}

	err := s.store.Update(func() error {
		student, ok := s.store.Students.Get(studentID)
		if !ok {
			return apperrors.NotFound("Student")
		}
		if in.Name != nil {
			student.Name = strings.TrimSpace(*in.Name)
		}
		if in.Semester != nil {
			student.Semester = *in.Semester
		}
		if in.CGPA != nil {
			student.CGPA = *in.CGPA
		}
		if in.Skills != nil {
			student.Skills = in.Skills
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.store.Publish(store.Event{Entity: "student", Action: store.ActionUpdated, ID: studentID})
	return nil
}

// UpdateCompanyProfile applies partial company edits. Existing jobs keep
// their snapshotted company name.
func (s *Service) UpdateCompanyProfile(companyID string, in CompanyProfileInput) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return apperrors.NewValidationError("Name must not be empty")
	}

	err := s.store.Update(func() error {
		company, ok := s.store.Companies.Get(companyID)
		if !ok {
			return apperrors.NotFound("Company")
		}
		if in.Name != nil {
			company.Name = strings.TrimSpace(*in.Name)
		}
		if in.Industry != nil {
			company.Industry = *in.Industry
		}
		if in.Size != nil {
			company.Size = *in.Size
		}
		if in.About != nil {
			company.About = *in.About
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.store.Publish(store.Event{Entity: "company", Action: store.ActionUpdated, ID: companyID})
	return nil
}

// AttachStudentImage stores a processed profile image. Called from the
// image pipeline's delivery callback, so the mutation is applied as one
// step after processing completes.
func (s *Service) AttachStudentImage(studentID string, image []byte) error {
	err := s.store.Update(func() error {
		student, ok := s.store.Students.Get(studentID)
		if !ok {
			return apperrors.NotFound("Student")
		}
		student.ProfileImage = image
		return nil
	})
	if err != nil {
		return err
	}

	s.store.Publish(store.Event{Entity: "student", Action: store.ActionUpdated, ID: studentID})
	return nil
}

// AttachCompanyLogo stores a processed company logo.
func (s *Service) AttachCompanyLogo(companyID string, logo []byte) error {
	err := s.store.Update(func() error {
		company, ok := s.store.Companies.Get(companyID)
		if !ok {
			return apperrors.NotFound("Company")
		}
		company.Logo = logo
		return nil
	})
	if err != nil {
		return err
	}

	s.store.Publish(store.Event{Entity: "company", Action: store.ActionUpdated, ID: companyID})
	return nil
}
