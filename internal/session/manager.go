package session

import (
	"strings"
	"sync"

	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/store"
	"campusconnect_backend/internal/utils"
	"campusconnect_backend/pkg/apperrors"
)

// Manager tracks the single active identity. Sessions are not persisted;
// a restart or Logout returns the manager to anonymous. Login and signup
// return snapshot copies taken under the store lock, never the stored
// record itself.
//
// Credentials are compared as exact plaintext, matching the system this
// replaces. That is a known gap kept on purpose, not an oversight: hashing
// at signup would change login semantics for the seeded demo accounts.
type Manager struct {
	mu    sync.Mutex
	store *store.Store

	role       models.Role
	identityID string
}

func NewManager(st *store.Store) *Manager {
	return &Manager{store: st}
}

// StudentSignup are the fields collected by the student signup form.
type StudentSignup struct {
	Name     string
	Email    string
	Password string
	Semester int
	CGPA     float64
	Skills   []string
}

// CompanySignup are the fields collected by the company signup form.
type CompanySignup struct {
	Name     string
	Email    string
	Password string
	Industry string
	Size     string
	About    string
}

// LoginStudent authenticates against the student collection. On success the
// session switches to that student; on failure it is left untouched.
func (m *Manager) LoginStudent(email, password string) (*models.Student, error) {
	var found *models.Student
	m.store.View(func() {
		for s := range m.store.Students.Query(func(s *models.Student) bool {
			return s.Email == email && s.Password == password
		}) {
			snapshot := *s
			found = &snapshot
			break
		}
	})
	if found == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	m.set(models.RoleStudent, found.ID)
	return found, nil
}

// LoginCompany authenticates against the company collection.
func (m *Manager) LoginCompany(email, password string) (*models.Company, error) {
	var found *models.Company
	m.store.View(func() {
		for c := range m.store.Companies.Query(func(c *models.Company) bool {
			return c.Email == email && c.Password == password
		}) {
			snapshot := *c
			found = &snapshot
			break
		}
	})
	if found == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	m.set(models.RoleCompany, found.ID)
	return found, nil
}

// SignupStudent creates a student with zeroed counters and logs them in.
func (m *Manager) SignupStudent(in StudentSignup) (*models.Student, error) {
	var created models.Student
	err := m.store.Update(func() error {
		student := &models.Student{
			ID:       utils.GenerateID("S"),
			Name:     strings.TrimSpace(in.Name),
			Email:    in.Email,
			Password: in.Password,
			Semester: in.Semester,
			CGPA:     in.CGPA,
			Skills:   trimSkills(in.Skills),
		}
		if err := m.store.Students.Insert(student); err != nil {
			return err
		}
		created = *student
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.store.Publish(store.Event{Entity: "student", Action: store.ActionCreated, ID: created.ID})

	m.set(models.RoleStudent, created.ID)
	return &created, nil
}

// SignupCompany creates a company and logs it in.
func (m *Manager) SignupCompany(in CompanySignup) (*models.Company, error) {
	var created models.Company
	err := m.store.Update(func() error {
		company := &models.Company{
			ID:       utils.GenerateID("C"),
			Name:     strings.TrimSpace(in.Name),
			Email:    in.Email,
			Password: in.Password,
			Industry: in.Industry,
			Size:     in.Size,
			About:    in.About,
		}
		if err := m.store.Companies.Insert(company); err != nil {
			return err
		}
		created = *company
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.store.Publish(store.Event{Entity: "company", Action: store.ActionCreated, ID: created.ID})

	m.set(models.RoleCompany, created.ID)
	return &created, nil
}

// Logout unconditionally returns to anonymous. Logging out twice is fine.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.role = ""
	m.identityID = ""
}

// Current returns the active identity, if any.
func (m *Manager) Current() (models.Role, string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identityID == "" {
		return "", "", false
	}
	return m.role, m.identityID, true
}

func (m *Manager) set(role models.Role, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.role = role
	m.identityID = id
}

func trimSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
