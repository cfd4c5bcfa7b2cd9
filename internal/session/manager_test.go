package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/store"
	"campusconnect_backend/pkg/apperrors"
)

func seededManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	st := store.New()
	assert.NoError(t, store.Seed(st))
	return NewManager(st), st
}

func TestLoginStudentSuccess(t *testing.T) {
	m, _ := seededManager(t)

	student, err := m.LoginStudent("arjun@djsanghvi.edu", "student123")
	assert.NoError(t, err)
	assert.Equal(t, "S001", student.ID)

	role, id, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, models.RoleStudent, role)
	assert.Equal(t, "S001", id)
}

func TestLoginStudentWrongPassword(t *testing.T) {
	m, _ := seededManager(t)

	_, err := m.LoginStudent("arjun@djsanghvi.edu", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, ok := m.Current()
	assert.False(t, ok, "a failed login leaves the session anonymous")
}

func TestLoginCompanySuccess(t *testing.T) {
	m, _ := seededManager(t)

	company, err := m.LoginCompany("techcorp@djsanghvi.edu", "company123")
	assert.NoError(t, err)
	assert.Equal(t, "C001", company.ID)

	role, id, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, models.RoleCompany, role)
	assert.Equal(t, "C001", id)
}

func TestLoginReplacesActiveIdentity(t *testing.T) {
	m, _ := seededManager(t)

	_, err := m.LoginStudent("arjun@djsanghvi.edu", "student123")
	assert.NoError(t, err)
	_, err = m.LoginCompany("datainsight@djsanghvi.edu", "company123")
	assert.NoError(t, err)

	role, id, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, models.RoleCompany, role)
	assert.Equal(t, "C002", id)
}

func TestSignupStudentCreatesAndLogsIn(t *testing.T) {
	m, st := seededManager(t)

	student, err := m.SignupStudent(StudentSignup{
		Name:     "  Rahul Verma ",
		Email:    "rahul@djsanghvi.edu",
		Password: "pass123",
		Semester: 5,
		CGPA:     8.2,
		Skills:   []string{" Go ", "", "Docker"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Rahul Verma", student.Name)
	assert.Equal(t, []string{"Go", "Docker"}, student.Skills)
	assert.Equal(t, 0, student.PostsCount)
	assert.Equal(t, 0, student.Connections)

	_, ok := st.Students.Get(student.ID)
	assert.True(t, ok)

	role, id, active := m.Current()
	assert.True(t, active)
	assert.Equal(t, models.RoleStudent, role)
	assert.Equal(t, student.ID, id)

	// A fresh signup can log straight back in with the same credentials.
	m.Logout()
	again, err := m.LoginStudent("rahul@djsanghvi.edu", "pass123")
	assert.NoError(t, err)
	assert.Equal(t, student.ID, again.ID)
}

func TestSignupCompanyCreatesAndLogsIn(t *testing.T) {
	m, st := seededManager(t)

	company, err := m.SignupCompany(CompanySignup{
		Name:     "CloudNine Labs",
		Email:    "cloudnine@djsanghvi.edu",
		Password: "secret",
		Industry: "Cloud Infrastructure",
		Size:     "10-50",
		About:    "Managed Kubernetes for startups",
	})
	assert.NoError(t, err)

	_, ok := st.Companies.Get(company.ID)
	assert.True(t, ok)

	role, id, active := m.Current()
	assert.True(t, active)
	assert.Equal(t, models.RoleCompany, role)
	assert.Equal(t, company.ID, id)
}

func TestDuplicateEmailLoginResolvesToFirstAccount(t *testing.T) {
	m, _ := seededManager(t)

	// Nothing stops a second account with an existing email; login picks
	// the earliest match.
	_, err := m.SignupStudent(StudentSignup{
		Name:     "Arjun Clone",
		Email:    "arjun@djsanghvi.edu",
		Password: "student123",
	})
	assert.NoError(t, err)

	student, err := m.LoginStudent("arjun@djsanghvi.edu", "student123")
	assert.NoError(t, err)
	assert.Equal(t, "S001", student.ID)
}

func TestLoginAndSignupReturnSnapshots(t *testing.T) {
	m, st := seededManager(t)

	student, err := m.LoginStudent("arjun@djsanghvi.edu", "student123")
	assert.NoError(t, err)
	stored, _ := st.Students.Get("S001")
	assert.NotSame(t, stored, student)

	// Mutating the stored record is invisible to the returned copy.
	assert.NoError(t, st.Update(func() error {
		stored.Connections++
		return nil
	}))
	assert.Equal(t, 247, student.Connections)

	created, err := m.SignupCompany(CompanySignup{
		Name:     "Snapshot Inc",
		Email:    "snapshot@djsanghvi.edu",
		Password: "secret",
	})
	assert.NoError(t, err)
	storedCompany, _ := st.Companies.Get(created.ID)
	assert.NotSame(t, storedCompany, created)
}

func TestLogoutIsIdempotent(t *testing.T) {
	m, _ := seededManager(t)

	_, err := m.LoginStudent("priya@djsanghvi.edu", "student123")
	assert.NoError(t, err)

	m.Logout()
	m.Logout()

	_, _, ok := m.Current()
	assert.False(t, ok)
}
