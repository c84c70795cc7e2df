package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutes_Authorization(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewUserBuilder().
		WithUsername("admin").
		WithPassword("Valid1!pw").
		AsAdmin().
		Build(t, ts.DB.DB)
	testutil.NewUserBuilder().
		WithUsername("pleb").
		WithPassword("Valid1!pw").
		Build(t, ts.DB.DB)
	target := testutil.NewUserBuilder().Unapproved().Build(t, ts.DB.DB)

	adminCookie := ts.Login(t, "admin", "Valid1!pw")
	plebCookie := ts.Login(t, "pleb", "Valid1!pw")

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/users"},
		{http.MethodPut, fmt.Sprintf("/admin/users/%s/approve", target.ID)},
		{http.MethodPut, fmt.Sprintf("/admin/users/%s/make-admin", target.ID)},
		{http.MethodGet, "/admin/actions"},
	}

	for _, route := range routes {
		t.Run(fmt.Sprintf("no cookie %s %s", route.method, route.path), func(t *testing.T) {
			resp := ts.Do(t, route.method, route.path)
			testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
		})

		t.Run(fmt.Sprintf("non-admin %s %s", route.method, route.path), func(t *testing.T) {
			resp := ts.Do(t, route.method, route.path, plebCookie)
			testutil.AssertStatusCode(t, resp, http.StatusForbidden)
		})

		t.Run(fmt.Sprintf("admin %s %s", route.method, route.path), func(t *testing.T) {
			resp := ts.Do(t, route.method, route.path, adminCookie)
			testutil.AssertStatusCode(t, resp, http.StatusOK)
		})
	}
}

func TestAdminHandler_ApproveUser(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewUserBuilder().
		WithUsername("admin").
		WithPassword("Valid1!pw").
		AsAdmin().
		Build(t, ts.DB.DB)
	target := testutil.NewUserBuilder().Unapproved().Build(t, ts.DB.DB)
	cookie := ts.Login(t, "admin", "Valid1!pw")

	resp := ts.PutJSON(t, fmt.Sprintf("/admin/users/%s/approve", target.ID), nil, cookie)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var updated domain.User
	require.NoError(t, ts.DB.DB.First(&updated, "id = ?", target.ID).Error)
	assert.True(t, updated.IsApproved)

	// The approval shows up in the audit history
	resp = ts.Get(t, "/admin/actions", cookie)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var records []struct {
		ActionType     string `json:"action_type"`
		AdminUsername  string `json:"admin_username"`
		TargetUsername string `json:"target_username"`
	}
	testutil.AssertJSONResponse(t, resp, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "approve", records[0].ActionType)
	assert.Equal(t, "admin", records[0].AdminUsername)
	assert.Equal(t, target.Username, records[0].TargetUsername)
}

func TestAdminHandler_MissingTarget(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewUserBuilder().
		WithUsername("admin").
		WithPassword("Valid1!pw").
		AsAdmin().
		Build(t, ts.DB.DB)
	cookie := ts.Login(t, "admin", "Valid1!pw")

	missing := uuid.New()
	resp := ts.PutJSON(t, fmt.Sprintf("/admin/users/%s/approve", missing), nil, cookie)
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)

	// Failed mutation leaves no audit entry behind
	var count int64
	require.NoError(t, ts.DB.DB.Model(&domain.AdminAction{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewUserBuilder().
		WithUsername("admin").
		WithPassword("Valid1!pw").
		AsAdmin().
		Build(t, ts.DB.DB)
	testutil.NewUserBuilder().
		WithUsername("victim").
		WithPassword("Valid1!pw").
		Build(t, ts.DB.DB)
	adminCookie := ts.Login(t, "admin", "Valid1!pw")
	victimCookie := ts.Login(t, "victim", "Valid1!pw")

	var victim domain.User
	require.NoError(t, ts.DB.DB.First(&victim, "username = ?", "victim").Error)

	resp := ts.Delete(t, fmt.Sprintf("/admin/users/%s", victim.ID), adminCookie)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	// Cascade revokes the deleted user's sessions immediately
	resp = ts.Get(t, "/check-session", victimCookie)
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)

	resp = ts.Delete(t, fmt.Sprintf("/admin/users/%s", victim.ID), adminCookie)
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}
