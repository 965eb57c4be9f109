package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Matheus-hora48/Teste-Conectar/internal/api"
	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/internal/mocks"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

type testAPI struct {
	auth    *mocks.MockAuthService
	users   *mocks.MockUserService
	clients *mocks.MockClientService
	tokens  *mocks.MockTokenVerifier
	admin   entity.Caller
	user    entity.Caller
	handler http.Handler
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	a := testAPI{
		auth:    mocks.NewMockAuthService(ctrl),
		users:   mocks.NewMockUserService(ctrl),
		clients: mocks.NewMockClientService(ctrl),
		tokens:  mocks.NewMockTokenVerifier(ctrl),
		admin:   entity.Caller{ID: uuid.Must(uuid.NewV4()), Email: "admin@conectar.com", Role: entity.RoleAdmin},
		user:    entity.Caller{ID: uuid.Must(uuid.NewV4()), Email: "user@conectar.com", Role: entity.RoleUser},
	}

	a.tokens.EXPECT().VerifyToken(gomock.Any(), adminToken).Return(a.admin, nil).AnyTimes()
	a.tokens.EXPECT().VerifyToken(gomock.Any(), userToken).Return(a.user, nil).AnyTimes()

	h := api.NewHandler(a.auth, a.users, a.clients, "http://localhost:8080")
	a.handler = api.NewRouter(h, api.NewMiddleware(a.tokens, "http://localhost:8080"))

	return a
}

func (a testAPI) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		session := entity.Session{
			AccessToken: "jwt",
			User:        entity.UserSummary{ID: a.admin.ID, Email: a.admin.Email, Role: entity.RoleAdmin},
		}
		a.auth.EXPECT().Login(gomock.Any(), "admin@conectar.com", "admin123").Return(session, nil)

		rec := a.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Email: "admin@conectar.com", Password: "admin123"})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[map[string]any](t, rec)
		require.Equal(t, "jwt", body["access_token"])
		require.Contains(t, body, "user")
		require.NotContains(t, body["user"], "password")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.auth.EXPECT().Login(gomock.Any(), "admin@conectar.com", "wrong-pass").Return(entity.Session{}, entity.ErrInvalidCredentials)

		rec := a.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Email: "admin@conectar.com", Password: "wrong-pass"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, entity.ErrMsgInvalidCredentials, decode[api.ResponseError](t, rec).Message)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Email: "not-an-email", Password: "123"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decode[api.ResponseError](t, rec)
		require.Equal(t, entity.ErrMsgValidation, resp.Message)
		require.Len(t, resp.Details, 2)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		a.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	req := api.RegisterRequest{Name: "Maria", Email: "maria@conectar.com", Password: "secret123"}

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.auth.EXPECT().Register(gomock.Any(), entity.CreateUserData{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		}).Return(entity.Session{AccessToken: "jwt"}, nil)

		rec := a.do(t, http.MethodPost, "/auth/register", "", req)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entity.Session{}, entity.ErrDuplicateEmail)

		rec := a.do(t, http.MethodPost, "/auth/register", "", req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, entity.ErrMsgEmailTaken, decode[api.ResponseError](t, rec).Message)
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		bad := req
		bad.Role = "ROOT"

		rec := a.do(t, http.MethodPost, "/auth/register", "", bad)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_OAuth(t *testing.T) {
	t.Parallel()

	t.Run("redirect", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.auth.EXPECT().OAuthRedirectURL(gomock.Any(), entity.ProviderGoogle).
			Return("https://accounts.google.com/o/oauth2/v2/auth?state=abc", nil)

		rec := a.do(t, http.MethodGet, "/auth/google", "", nil)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=abc", rec.Header().Get("Location"))
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/auth/github", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("callback redirects to frontend", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.auth.EXPECT().OAuthCallback(gomock.Any(), entity.ProviderMicrosoft, "code-1", "state-1").
			Return(entity.Session{AccessToken: "jwt.token"}, nil)

		rec := a.do(t, http.MethodGet, "/auth/microsoft/callback?code=code-1&state=state-1", "", nil)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "http://localhost:8080/#/auth/callback?token=jwt.token", rec.Header().Get("Location"))
	})

	t.Run("callback with bad state", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.auth.EXPECT().OAuthCallback(gomock.Any(), entity.ProviderGoogle, "code", "forged").
			Return(entity.Session{}, entity.ErrInvalidOAuthState)

		rec := a.do(t, http.MethodGet, "/auth/google/callback?code=code&state=forged", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("callback with provider error", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/auth/google/callback?error=access_denied", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("callback with unreadable provider response", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.auth.EXPECT().OAuthCallback(gomock.Any(), entity.ProviderGoogle, "code", "state").
			Return(entity.Session{}, fmt.Errorf("%w: google: decode token response: %w", entity.ErrOAuthProvider, errors.New("invalid character '<'")))

		rec := a.do(t, http.MethodGet, "/auth/google/callback?code=code&state=state", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Empty(t, rec.Header().Get("Location"))
	})
}

func TestHandler_Users(t *testing.T) {
	t.Parallel()

	t.Run("list requires admin", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/users", userToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, entity.ErrMsgAdminOnly, decode[api.ResponseError](t, rec).Message)
	})

	t.Run("list with filters", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		role := entity.RoleAdmin
		a.users.EXPECT().FindAll(gomock.Any(), entity.UserFilter{
			Role:    &role,
			SortBy:  entity.UserSortByName,
			OrderBy: entity.DESC,
		}).Return([]entity.User{{ID: uuid.Must(uuid.NewV4()), Password: "hash"}}, nil)

		rec := a.do(t, http.MethodGet, "/users?role=ADMIN&sortBy=name&order=desc", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("list with unknown role", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/users?role=ROOT", adminToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("profile uses caller id", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.users.EXPECT().FindOne(gomock.Any(), a.user, a.user.ID).Return(entity.User{ID: a.user.ID}, nil)

		rec := a.do(t, http.MethodGet, "/users/profile/me", userToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("read other user", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		other := uuid.Must(uuid.NewV4())
		a.users.EXPECT().FindOne(gomock.Any(), a.user, other).Return(entity.User{}, entity.ErrForbidden)

		rec := a.do(t, http.MethodGet, "/users/"+other.String(), userToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/users/42", adminToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update profile", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		name := "Novo Nome"
		a.users.EXPECT().Update(gomock.Any(), a.user, a.user.ID, entity.UpdateUserData{Name: &name}).
			Return(entity.User{ID: a.user.ID, Name: name}, nil)

		rec := a.do(t, http.MethodPatch, "/users/profile/me", userToken, map[string]any{"name": name})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, name, decode[entity.User](t, rec).Name)
	})

	t.Run("wrong current password", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.users.EXPECT().UpdatePassword(gomock.Any(), a.user, a.user.ID, "guess12", "newpass1").Return(entity.ErrWrongPassword)

		rec := a.do(t, http.MethodPatch, "/users/"+a.user.ID.String()+"/password", userToken,
			api.UpdatePasswordRequest{CurrentPassword: "guess12", NewPassword: "newpass1"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, entity.ErrMsgWrongPassword, decode[api.ResponseError](t, rec).Message)
	})

	t.Run("delete self", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.users.EXPECT().Remove(gomock.Any(), a.admin, a.admin.ID).Return(entity.ErrSelfDelete)

		rec := a.do(t, http.MethodDelete, "/users/"+a.admin.ID.String(), adminToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete by user", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodDelete, "/users/"+uuid.Must(uuid.NewV4()).String(), userToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("inactive list", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.users.EXPECT().FindInactiveUsers(gomock.Any(), 45).Return([]entity.User{}, nil)

		rec := a.do(t, http.MethodGet, "/users/inactive/list?days=45", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("inactive list with bad days", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/users/inactive/list?days=abc", adminToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Clients(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		req := api.CreateClientRequest{
			StoreFrontName: "Padaria do João",
			CNPJ:           "12.345.678/0001-90",
			CompanyName:    "João Silva Padaria LTDA",
			CEP:            "01234-567",
			Street:         "Rua das Flores",
			Neighborhood:   "Centro",
			City:           "São Paulo",
			State:          "SP",
			Number:         "123",
		}
		a.clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entity.Client{ID: uuid.Must(uuid.NewV4())}, nil)

		rec := a.do(t, http.MethodPost, "/clients", userToken, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create with duplicate cnpj", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entity.Client{}, entity.ErrDuplicateCNPJ)

		rec := a.do(t, http.MethodPost, "/clients", adminToken, api.CreateClientRequest{
			StoreFrontName: "a", CNPJ: "b", CompanyName: "c", CEP: "d", Street: "e",
			Neighborhood: "f", City: "g", State: "h", Number: "i",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, entity.ErrMsgCNPJTaken, decode[api.ResponseError](t, rec).Message)
	})

	t.Run("create missing fields", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/clients", userToken, map[string]any{"cnpj": "12.345.678/0001-90", "status": "Arquivado"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list passes filters", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		name := "padaria"
		status := entity.ClientStatusActive
		a.clients.EXPECT().FindAll(gomock.Any(), a.user, entity.ClientFilter{
			Name:    &name,
			Status:  &status,
			SortBy:  entity.ClientSortByStatus,
			OrderBy: entity.ASC,
		}).Return(nil, nil)

		rec := a.do(t, http.MethodGet, "/clients?name=padaria&status=Ativo&sortBy=status&order=ASC", userToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list order is case insensitive", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.clients.EXPECT().FindAll(gomock.Any(), a.admin, entity.ClientFilter{
			SortBy:  entity.ClientSortByCompanyName,
			OrderBy: entity.DESC,
		}).Return(nil, nil)

		rec := a.do(t, http.MethodGet, "/clients?sortBy=companyName&order=desc", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invisible client", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		id := uuid.Must(uuid.NewV4())
		a.clients.EXPECT().FindOne(gomock.Any(), a.user, id).Return(entity.Client{}, entity.ErrClientNotFound)

		rec := a.do(t, http.MethodGet, "/clients/"+id.String(), userToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, entity.ErrMsgClientNotFound, decode[api.ResponseError](t, rec).Message)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		id := uuid.Must(uuid.NewV4())
		status := entity.ClientStatusPending
		a.clients.EXPECT().Update(gomock.Any(), a.user, id, entity.UpdateClientData{Status: &status}).
			Return(entity.Client{ID: id, Status: status}, nil)

		rec := a.do(t, http.MethodPatch, "/clients/"+id.String(), userToken, map[string]any{"status": "Pendente"})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete by user", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodDelete, "/clients/"+uuid.Must(uuid.NewV4()).String(), userToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("assign by user", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodPatch, "/clients/not-an-id/assign/also-not", userToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("assign by admin", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		clientID := uuid.Must(uuid.NewV4())
		userID := uuid.Must(uuid.NewV4())
		a.clients.EXPECT().AssignUser(gomock.Any(), a.admin, clientID, userID).
			Return(entity.Client{ID: clientID, AssignedUserID: &userID}, nil)

		rec := a.do(t, http.MethodPatch, "/clients/"+clientID.String()+"/assign/"+userID.String(), adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, &userID, decode[entity.Client](t, rec).AssignedUserID)
	})
}
