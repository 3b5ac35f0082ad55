package identity_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrganisationEndpointsRequireAuth(t *testing.T) {
	baseURL := setupServer(t)

	t.Run("no token", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodGet, baseURL+"/api/organisations", "", nil)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("garbage token", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodGet, baseURL+"/api/organisations", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		// Signed with the right structure but the wrong key.
		forged := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
			"eyJzdWIiOiJ4IiwiaXNzIjoiaWRlbnRpdHktdGVzdCJ9." +
			"Wr0ngS1gnatureWr0ngS1gnatureWr0ngS1gnature0"
		status, _ := doJSON(t, http.MethodGet, baseURL+"/api/organisations", forged, nil)
		require.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestOrganisationManagement(t *testing.T) {
	baseURL := setupServer(t)
	owner := registerUser(t, baseURL, "Erin", "erin@example.com")

	t.Run("fetch organisation by id", func(t *testing.T) {
		_, env := doJSON(t, http.MethodGet, baseURL+"/api/organisations", owner.AccessToken, nil)
		var list apiOrganisationList
		decodeData(t, env, &list)
		require.Len(t, list.Organisations, 1)
		orgID := list.Organisations[0].OrgID

		status, env := doJSON(t, http.MethodGet, baseURL+"/api/organisations/"+orgID, owner.AccessToken, nil)
		require.Equal(t, http.StatusOK, status)

		var org apiOrganisation
		decodeData(t, env, &org)
		require.Equal(t, orgID, org.OrgID)
		require.Equal(t, orgNameFor("Erin"), org.Name)
		require.Equal(t, org.Name+" description", org.Description)
	})

	t.Run("unknown organisation is not found", func(t *testing.T) {
		status, env := doJSON(t, http.MethodGet, baseURL+"/api/organisations/missing", owner.AccessToken, nil)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "Organisation not found", env.Message)
	})

	t.Run("create organisation does not join the creator", func(t *testing.T) {
		status, env := doJSON(t, http.MethodPost, baseURL+"/api/organisations", owner.AccessToken, map[string]string{
			"name":        "Acme",
			"description": "Widgets",
		})
		require.Equal(t, http.StatusCreated, status)

		var org apiOrganisation
		decodeData(t, env, &org)
		require.NotEmpty(t, org.OrgID)
		require.Equal(t, "Acme", org.Name)

		_, listEnv := doJSON(t, http.MethodGet, baseURL+"/api/organisations", owner.AccessToken, nil)
		var list apiOrganisationList
		decodeData(t, listEnv, &list)
		for _, o := range list.Organisations {
			require.NotEqual(t, org.OrgID, o.OrgID, "creator should not be auto-joined")
		}
	})

	t.Run("create organisation requires a name", func(t *testing.T) {
		status, env := doJSON(t, http.MethodPost, baseURL+"/api/organisations", owner.AccessToken, map[string]string{
			"description": "nameless",
		})
		require.Equal(t, http.StatusBadRequest, status)

		_, ok := findFieldError(env, "name")
		require.True(t, ok, "expected a field error on name")
	})
}

func TestAddUserToOrganisation(t *testing.T) {
	baseURL := setupServer(t)
	owner := registerUser(t, baseURL, "Frank", "frank@example.com")
	guest := registerUser(t, baseURL, "Grace", "grace@example.com")

	_, env := doJSON(t, http.MethodGet, baseURL+"/api/organisations", owner.AccessToken, nil)
	var list apiOrganisationList
	decodeData(t, env, &list)
	require.Len(t, list.Organisations, 1)
	orgID := list.Organisations[0].OrgID

	membersURL := baseURL + "/api/organisations/" + orgID + "/users"

	t.Run("adds an existing user", func(t *testing.T) {
		status, env := doJSON(t, http.MethodPost, membersURL, "", map[string]string{
			"userId": guest.User.UserID,
		})
		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, "User added to organisation successfully", env.Message)

		var membership apiMembership
		decodeData(t, env, &membership)
		require.Equal(t, guest.User.UserID, membership.UserID)
		require.Equal(t, orgID, membership.OrgID)

		// The new member now sees the organisation in their own list.
		_, listEnv := doJSON(t, http.MethodGet, baseURL+"/api/organisations", guest.AccessToken, nil)
		var guestList apiOrganisationList
		decodeData(t, listEnv, &guestList)
		require.Len(t, guestList.Organisations, 2)
	})

	t.Run("adding twice is a conflict", func(t *testing.T) {
		status, env := doJSON(t, http.MethodPost, membersURL, "", map[string]string{
			"userId": guest.User.UserID,
		})
		require.Equal(t, http.StatusConflict, status)
		require.Equal(t, "User already belongs to organisation", env.Message)
	})

	t.Run("missing userId is a bad request", func(t *testing.T) {
		status, env := doJSON(t, http.MethodPost, membersURL, "", map[string]string{})
		require.Equal(t, http.StatusBadRequest, status)

		_, ok := findFieldError(env, "userId")
		require.True(t, ok, "expected a field error on userId")
	})

	t.Run("unknown organisation is not found", func(t *testing.T) {
		status, env := doJSON(t, http.MethodPost, baseURL+"/api/organisations/missing/users", "", map[string]string{
			"userId": guest.User.UserID,
		})
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "Organisation not found", env.Message)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		status, env := doJSON(t, http.MethodPost, membersURL, "", map[string]string{
			"userId": "does-not-exist",
		})
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "User not found", env.Message)
	})
}
