package projector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/store"
	"campusconnect_backend/pkg/apperrors"
)

func seededProjector(t *testing.T) (*Projector, *store.Store) {
	t.Helper()
	st := store.New()
	assert.NoError(t, store.Seed(st))
	return New(st), st
}

func TestFeedNewestFirst(t *testing.T) {
	p, _ := seededProjector(t)

	feed := p.Feed("S001")
	assert.Len(t, feed, 3)
	assert.Equal(t, []string{"P001", "P002", "P003"},
		[]string{feed[0].PostID, feed[1].PostID, feed[2].PostID})
}

func TestFeedStableOnEqualTimestamps(t *testing.T) {
	st := store.New()
	ts := time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC)
	older := ts.Add(-time.Hour)
	err := st.Update(func() error {
		for _, p := range []*models.Post{
			{ID: "P3", StudentID: "S1", Timestamp: older},
			{ID: "P1", StudentID: "S1", Timestamp: ts},
			{ID: "P2", StudentID: "S1", Timestamp: ts},
		} {
			if err := st.Posts.Insert(p); err != nil {
				return err
			}
		}
		return nil
	})
	assert.NoError(t, err)

	feed := New(st).Feed("S1")
	assert.Equal(t, []string{"P1", "P2", "P3"},
		[]string{feed[0].PostID, feed[1].PostID, feed[2].PostID},
		"ties keep insertion order, newest timestamps lead")
}

func TestFeedCanDeleteOnlyOwnPosts(t *testing.T) {
	p, _ := seededProjector(t)

	for _, item := range p.Feed("S001") {
		assert.Equal(t, item.StudentID == "S001", item.CanDelete, item.PostID)
	}

	for _, item := range p.Feed("") {
		assert.False(t, item.CanDelete, "anonymous viewer deletes nothing")
	}
}

func TestFeedInitialsAndRelativeTime(t *testing.T) {
	p, _ := seededProjector(t)

	feed := p.Feed("S001")
	assert.Equal(t, "AP", feed[0].StudentInitial)
	assert.NotEmpty(t, feed[0].PostedAgo)
}

func TestJobRecommendationsOrderedByScore(t *testing.T) {
	st := store.New()
	err := st.Update(func() error {
		if err := st.Students.Insert(&models.Student{
			ID: "S1", Skills: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		}); err != nil {
			return err
		}
		jobs := []*models.Job{
			{ID: "J1", Skills: []string{"x", "y", "z"}},                                         // 0/3 -> 85
			{ID: "J2", Skills: []string{"a", "b", "c", "d", "e", "f", "g", "h", "x"}},           // 8/9 -> 88
			{ID: "J3", Skills: []string{"a", "b"}},                                              // 2/2 -> 95
			{ID: "J4", Skills: []string{"a", "b", "c", "d", "e", "f", "g", "h", "x", "y", "z"}}, // 8/11 -> 85 (floor 72 clamped)
		}
		for _, j := range jobs {
			if err := st.Jobs.Insert(j); err != nil {
				return err
			}
		}
		return nil
	})
	assert.NoError(t, err)

	recs, err := New(st).JobRecommendations("S1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"J3", "J2", "J1", "J4"},
		[]string{recs[0].JobID, recs[1].JobID, recs[2].JobID, recs[3].JobID})
	assert.Equal(t, 95, recs[0].MatchScore)
	assert.Equal(t, 88, recs[1].MatchScore)
	assert.Equal(t, 85, recs[2].MatchScore)
}

func TestJobRecommendationsFlagAppliedJobs(t *testing.T) {
	p, st := seededProjector(t)
	err := st.Update(func() error {
		return st.Applications.Insert(&models.Application{
			ID: "A1", StudentID: "S001", JobID: "J002", CompanyID: "C002",
			Status: models.ApplicationStatusPending,
		})
	})
	assert.NoError(t, err)

	recs, err := p.JobRecommendations("S001")
	assert.NoError(t, err)

	byID := make(map[string]JobRecommendation)
	for _, r := range recs {
		byID[r.JobID] = r
	}
	assert.True(t, byID["J002"].AlreadyApplied)
	assert.False(t, byID["J001"].AlreadyApplied)
	assert.False(t, byID["J003"].AlreadyApplied)
}

func TestJobRecommendationsUnknownStudent(t *testing.T) {
	p, _ := seededProjector(t)
	_, err := p.JobRecommendations("S999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCompaniesWithActiveJobCounts(t *testing.T) {
	p, _ := seededProjector(t)

	cards := p.Companies()
	assert.Len(t, cards, 2)
	assert.Equal(t, "C001", cards[0].CompanyID)
	assert.Equal(t, 2, cards[0].ActiveJobCount)
	assert.Equal(t, "C002", cards[1].CompanyID)
	assert.Equal(t, 1, cards[1].ActiveJobCount)
	assert.Equal(t, "TS", cards[0].Initials)
}

func TestCandidatesGroupedByStudent(t *testing.T) {
	p, st := seededProjector(t)
	err := st.Update(func() error {
		apps := []*models.Application{
			{ID: "A1", StudentID: "S002", JobID: "J001", CompanyID: "C001", Status: models.ApplicationStatusPending},
			{ID: "A2", StudentID: "S001", JobID: "J001", CompanyID: "C001", Status: models.ApplicationStatusPending},
			{ID: "A3", StudentID: "S002", JobID: "J003", CompanyID: "C001", Status: models.ApplicationStatusPending},
			// Application to another company's job must not show up.
			{ID: "A4", StudentID: "S001", JobID: "J002", CompanyID: "C002", Status: models.ApplicationStatusPending},
		}
		for _, a := range apps {
			if err := st.Applications.Insert(a); err != nil {
				return err
			}
		}
		return nil
	})
	assert.NoError(t, err)

	candidates := p.Candidates("C001")
	assert.Len(t, candidates, 2)
	assert.Equal(t, "S002", candidates[0].StudentID, "first applicant seen leads")
	assert.Equal(t, 2, candidates[0].ApplicationCount)
	assert.Equal(t, "S001", candidates[1].StudentID)
	assert.Equal(t, 1, candidates[1].ApplicationCount)
}

func TestApplicationsStatusFilter(t *testing.T) {
	p, st := seededProjector(t)
	err := st.Update(func() error {
		apps := []*models.Application{
			{ID: "A1", StudentID: "S001", JobID: "J001", CompanyID: "C001", Status: models.ApplicationStatusPending},
			{ID: "A2", StudentID: "S002", JobID: "J001", CompanyID: "C001", Status: models.ApplicationStatusAccepted},
			{ID: "A3", StudentID: "S002", JobID: "J003", CompanyID: "C001", Status: models.ApplicationStatusRejected},
		}
		for _, a := range apps {
			if err := st.Applications.Insert(a); err != nil {
				return err
			}
		}
		return nil
	})
	assert.NoError(t, err)

	all := p.Applications("C001", "")
	assert.Len(t, all, 3)
	assert.Equal(t, "Senior Software Engineer", all[0].JobTitle)

	accepted := p.Applications("C001", models.ApplicationStatusAccepted)
	assert.Len(t, accepted, 1)
	assert.Equal(t, "A2", accepted[0].ApplicationID)

	assert.Empty(t, p.Applications("C002", ""))
}

func TestStudentApplications(t *testing.T) {
	p, st := seededProjector(t)
	err := st.Update(func() error {
		return st.Applications.Insert(&models.Application{
			ID: "A1", StudentID: "S001", JobID: "J002", CompanyID: "C002",
			Status: models.ApplicationStatusPending,
		})
	})
	assert.NoError(t, err)

	entries := p.StudentApplications("S001")
	assert.Len(t, entries, 1)
	assert.Equal(t, "Data Science Intern", entries[0].JobTitle)
	assert.Equal(t, "DataInsight Analytics", entries[0].CompanyName)
	assert.Equal(t, "pending", entries[0].Status)

	assert.Empty(t, p.StudentApplications("S002"))
}

func TestCompanyJobsInPostingOrder(t *testing.T) {
	p, _ := seededProjector(t)

	items := p.CompanyJobs("C001")
	assert.Len(t, items, 2)
	assert.Equal(t, "J001", items[0].JobID)
	assert.Equal(t, "J003", items[1].JobID)
	assert.Equal(t, 3, items[0].Applications)
}

func TestStudentProfileView(t *testing.T) {
	p, _ := seededProjector(t)

	view, err := p.StudentProfile("S001")
	assert.NoError(t, err)
	assert.Equal(t, "Arjun Patel", view.Name)
	assert.Equal(t, "AP", view.Initials)
	assert.Equal(t, 247, view.Connections)
	assert.Equal(t, 534, view.ProfileViews)

	_, err = p.StudentProfile("S999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCompanyProfileView(t *testing.T) {
	p, _ := seededProjector(t)

	view, err := p.CompanyProfile("C002")
	assert.NoError(t, err)
	assert.Equal(t, "DataInsight Analytics", view.Name)
	assert.Equal(t, "Data Science", view.Industry)

	_, err = p.CompanyProfile("C999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
