package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nmaksimov/userdir/internal/mock"
	"github.com/nmaksimov/userdir/internal/service"
	"github.com/nmaksimov/userdir/internal/store"
	"github.com/nmaksimov/userdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUsersHandler(t *testing.T) (*Handler, *mock.MockDirectoryService, *mock.MockPolicyService, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	directory := mock.NewMockDirectoryService(ctrl)
	policy := mock.NewMockPolicyService(ctrl)
	auth := mock.NewMockAuthService(ctrl)

	h := newHandlerWithServices(&service.Services{
		Directory: directory,
		Auth:      auth,
		Policy:    policy,
	})
	return h, directory, policy, auth
}

// authorizeActor wires the ParseToken expectation used by the auth
// middleware for a request that carries "Bearer <login>-token".
func authorizeActor(auth *mock.MockAuthService, login string) {
	auth.EXPECT().
		ParseToken(gomock.Any(), login+"-token").
		Return(tokenWithSubject(login), nil).
		AnyTimes()
}

func doRequest(h *Handler, method, target, actorLogin string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req = injectNopLogger(req)
	if actorLogin != "" {
		req.Header.Set("Authorization", "Bearer "+actorLogin+"-token")
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// POST /api/users
// ─────────────────────────────────────────────

func TestCreateUsersHandler_Success(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	request := models.CreateUsersRequest{Users: []models.CreateUserItem{
		{Login: "alice", Password: "pass1", Name: "Alice"},
	}}

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{ID: "id-admin", Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		CreateUsers(gomock.Any(), request, "admin").
		Return([]models.User{{ID: "id-1", Login: "alice"}}, nil)

	rr := doRequest(h, http.MethodPost, "/api/users", "admin", request)

	require.Equal(t, http.StatusCreated, rr.Code)

	var response models.CreatedUsersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, []string{"id-1"}, response.IDs)
}

func TestCreateUsersHandler_NonAdminForbidden(t *testing.T) {
	h, _, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "john")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "john").
		Return(models.User{}, service.ErrForbidden)

	rr := doRequest(h, http.MethodPost, "/api/users", "john",
		models.CreateUsersRequest{Users: []models.CreateUserItem{{Login: "x", Password: "y", Name: "Z"}}})

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCreateUsersHandler_DuplicateLoginConflict(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		CreateUsers(gomock.Any(), gomock.Any(), "admin").
		Return(nil, store.ErrLoginAlreadyExists)

	rr := doRequest(h, http.MethodPost, "/api/users", "admin",
		models.CreateUsersRequest{Users: []models.CreateUserItem{{Login: "alice", Password: "p1", Name: "A"}}})

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCreateUsersHandler_InvalidBatchBadRequest(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		CreateUsers(gomock.Any(), gomock.Any(), "admin").
		Return(nil, service.ErrInvalidDataProvided)

	rr := doRequest(h, http.MethodPost, "/api/users", "admin",
		models.CreateUsersRequest{Users: []models.CreateUserItem{{Login: "bad login"}}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateUsersHandler_NoToken(t *testing.T) {
	h, _, _, _ := newUsersHandler(t)

	rr := doRequest(h, http.MethodPost, "/api/users", "", models.CreateUsersRequest{})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// PUT /api/user/{id}/...
// ─────────────────────────────────────────────

func TestUpdateUserDetailsHandler_Success(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "john")

	request := models.UpdateDetailsRequest{Name: "New Name", Gender: 1}

	policy.EXPECT().
		AuthorizeSelfOrAdmin(gomock.Any(), "john", "id-john").
		Return(models.User{ID: "id-john", Login: "john"}, models.User{ID: "id-john", Login: "john"}, nil)
	directory.EXPECT().
		UpdateDetails(gomock.Any(), "id-john", request, "john").
		Return(nil)

	rr := doRequest(h, http.MethodPut, "/api/user/id-john/details", "john", request)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateUserDetailsHandler_TargetNotFound(t *testing.T) {
	h, _, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "john")

	policy.EXPECT().
		AuthorizeSelfOrAdmin(gomock.Any(), "john", "id-ghost").
		Return(models.User{}, models.User{}, store.ErrNoUserWasFound)

	rr := doRequest(h, http.MethodPut, "/api/user/id-ghost/details", "john",
		models.UpdateDetailsRequest{Name: "X"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateUserPasswordHandler_WrongOldPassword(t *testing.T) {
	h, _, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "john")

	policy.EXPECT().
		AuthorizePasswordChange(gomock.Any(), "john", "id-john", "wrong").
		Return(models.User{}, models.User{}, service.ErrWrongPassword)

	rr := doRequest(h, http.MethodPut, "/api/user/id-john/password", "john",
		models.UpdatePasswordRequest{OldPassword: "wrong", NewPassword: "newpass1"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateUserLoginHandler_Conflict(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "john")

	request := models.UpdateLoginRequest{NewLogin: "taken"}

	policy.EXPECT().
		AuthorizeSelfOrAdmin(gomock.Any(), "john", "id-john").
		Return(models.User{ID: "id-john", Login: "john"}, models.User{ID: "id-john", Login: "john"}, nil)
	directory.EXPECT().
		UpdateLogin(gomock.Any(), "id-john", request, "john").
		Return(store.ErrLoginAlreadyExists)

	rr := doRequest(h, http.MethodPut, "/api/user/id-john/login", "john", request)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

// ─────────────────────────────────────────────
// GET /api/users/...
// ─────────────────────────────────────────────

func TestListActiveUsersHandler_Success(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		ListActive(gomock.Any()).
		Return([]models.User{
			{ID: "id-1", Login: "alice", Password: "secret"},
			{ID: "id-2", Login: "bob"},
		}, nil)

	rr := doRequest(h, http.MethodGet, "/api/users/active", "admin", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret", "passwords must never leak into listings")

	var summaries []models.UserSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "alice", summaries[0].Login)
}

func TestGetUserByLoginHandler_Success(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		GetByLogin(gomock.Any(), "alice").
		Return(models.User{Login: "alice", Name: "Alice"}, nil)

	rr := doRequest(h, http.MethodGet, "/api/users/alice", "admin", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile.Login)
	assert.True(t, profile.IsActive)
}

func TestGetUserByLoginHandler_RevokedIsNotFound(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		GetByLogin(gomock.Any(), "alice").
		Return(models.User{}, store.ErrNoUserWasFound)

	rr := doRequest(h, http.MethodGet, "/api/users/alice", "admin", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetOwnProfileHandler_Success(t *testing.T) {
	h, _, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "john")

	policy.EXPECT().
		AuthorizeSelfProfile(gomock.Any(), "john", "john", "secret1").
		Return(models.User{ID: "id-john", Login: "john", Password: "secret1"}, nil)

	rr := doRequest(h, http.MethodGet, "/api/users/self?login=john&password=secret1", "john", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret1", "the password must not round-trip in the profile")
	assert.True(t, strings.Contains(rr.Body.String(), "id-john"))
}

func TestListUsersOlderThanHandler_Success(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		OlderThan(gomock.Any(), 65).
		Return([]models.AgedUser{{Login: "elder", Name: "Elder", Age: 71}}, nil)

	rr := doRequest(h, http.MethodGet, "/api/users/older-than/65", "admin", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var agedUsers []models.AgedUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &agedUsers))
	require.Len(t, agedUsers, 1)
	assert.Equal(t, 71, agedUsers[0].Age)
}

func TestListUsersOlderThanHandler_NonNumericYears(t *testing.T) {
	h, _, _, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	rr := doRequest(h, http.MethodGet, "/api/users/older-than/abc", "admin", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/users/{login}, PUT /api/users/{login}/restore
// ─────────────────────────────────────────────

func TestDeleteUserHandler_Success(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		SoftDelete(gomock.Any(), "alice", "admin").
		Return(models.User{Login: "alice"}, nil)

	rr := doRequest(h, http.MethodDelete, "/api/users/alice", "admin", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteUserHandler_NotFound(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		SoftDelete(gomock.Any(), "ghost", "admin").
		Return(models.User{}, store.ErrNoUserWasFound)

	rr := doRequest(h, http.MethodDelete, "/api/users/ghost", "admin", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRestoreUserHandler_LoginReusedConflict(t *testing.T) {
	h, directory, policy, auth := newUsersHandler(t)
	authorizeActor(auth, "admin")

	policy.EXPECT().
		AuthorizeAdmin(gomock.Any(), "admin").
		Return(models.User{Login: "admin", Admin: true}, nil)
	directory.EXPECT().
		Restore(gomock.Any(), "alice", "admin").
		Return(models.User{}, store.ErrLoginAlreadyExists)

	rr := doRequest(h, http.MethodPut, "/api/users/alice/restore", "admin", nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
}
