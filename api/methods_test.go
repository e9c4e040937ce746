package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"inteko-cli/auth"
	"inteko-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	prev := GetApiHost()
	SetApiHost(srv.URL)

	prevAuth := auth.Current
	auth.Current = nil

	t.Cleanup(func() {
		srv.Close()
		SetApiHost(prev)
		auth.Current = prevAuth
	})

	return srv
}

func signIn(t *testing.T) {
	t.Helper()
	auth.Current = &types.ClientAuth{
		Token: "test-token",
		User:  &types.User{Id: 1, Email: "alice@example.com"},
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestSignInSuccess(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/users/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a credential")

		writeJSON(t, w, http.StatusOK, `{"success":true,"token":"issued-token","user":{"id":1,"email":"alice@example.com"}}`)
	}))

	res, apiErr := Client.SignIn(context.Background(), types.SignInRequest{Email: "alice@example.com", Password: "pw"})
	require.Nil(t, apiErr)
	assert.Equal(t, "issued-token", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "alice@example.com", res.User.Email)
}

func TestSignInDomainFailure(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP success carrying a false business flag is a failure
		writeJSON(t, w, http.StatusOK, `{"success":false,"message":"Invalid credentials"}`)
	}))

	res, apiErr := Client.SignIn(context.Background(), types.SignInRequest{Email: "a@b.c", Password: "bad"})
	assert.Nil(t, res)
	require.NotNil(t, apiErr)
	assert.Equal(t, types.ApiErrorTypeDomain, apiErr.Type)
	assert.Equal(t, "Invalid credentials", apiErr.Msg)
}

func TestSignInDomainFailureGenericMessage(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, `{"success":false}`)
	}))

	_, apiErr := Client.SignIn(context.Background(), types.SignInRequest{})
	require.NotNil(t, apiErr)
	assert.Equal(t, types.ApiErrorTypeDomain, apiErr.Type)
	assert.Equal(t, "request failed", apiErr.Msg)
}

func TestListCitizenPostsAttachesBearer(t *testing.T) {
	var calls int
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v1/post/citizen", r.URL.Path)

		writeJSON(t, w, http.StatusOK, `{"success":true,"data":[{"id":3,"title":"Umuganda"}]}`)
	}))
	signIn(t)

	posts, apiErr := Client.ListCitizenPosts(context.Background())
	require.Nil(t, apiErr)
	require.Len(t, posts, 1)
	assert.Equal(t, "Umuganda", posts[0].Title)
	assert.Equal(t, 1, calls, "exactly one request per action")
}

func TestAuthenticatedCallWithoutSession(t *testing.T) {
	var calls int
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	posts, apiErr := Client.ListCitizenPosts(context.Background())
	assert.Nil(t, posts)
	require.NotNil(t, apiErr)
	assert.Equal(t, types.ApiErrorTypeUnauthorized, apiErr.Type)
	assert.Equal(t, 0, calls, "no request may go out with an absent token")
}

func TestUnauthorizedStatus(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, `{"success":false,"message":"jwt expired"}`)
	}))
	signIn(t)

	_, apiErr := Client.ListCitizenPosts(context.Background())
	require.NotNil(t, apiErr)
	assert.Equal(t, types.ApiErrorTypeUnauthorized, apiErr.Type)
}

func TestEmptyPostsIsNotAnError(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"success":true,"data":[]}`)
	}))
	signIn(t)

	posts, apiErr := Client.ListCitizenPosts(context.Background())
	require.Nil(t, apiErr, "an empty collection is a neutral state, not a failure")
	assert.Empty(t, posts)
}

func TestListMyPenaltiesBareArray(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/penalties/mypenarities", r.URL.Path)

		// this endpoint replies without the envelope
		writeJSON(t, w, http.StatusOK, `[{"id":5,"penarity":"5000","status":"un paid"}]`)
	}))
	signIn(t)

	penalties, apiErr := Client.ListMyPenalties(context.Background())
	require.Nil(t, apiErr)
	require.Len(t, penalties, 1)
	assert.Equal(t, "un paid", penalties[0].Status)
	assert.False(t, penalties[0].IsPaid())
}

func TestPayPenaltySuccess(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/penalties/pay", r.URL.Path)

		writeJSON(t, w, http.StatusOK, `{"success":true,"message":"Payment received"}`)
	}))
	signIn(t)

	message, apiErr := Client.PayPenalty(context.Background(), types.PayPenaltyRequest{PenaltyId: 5, Number: "0781234567"})
	require.Nil(t, apiErr)
	assert.Equal(t, "Payment received", message)
}

func TestPayPenaltyDomainFailure(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"success":false,"message":"Insufficient balance"}`)
	}))
	signIn(t)

	_, apiErr := Client.PayPenalty(context.Background(), types.PayPenaltyRequest{PenaltyId: 5, Number: "0781234567"})
	require.NotNil(t, apiErr)
	assert.Equal(t, types.ApiErrorTypeDomain, apiErr.Type)
	assert.Equal(t, "Insufficient balance", apiErr.Msg)
}

func TestNotificationActions(t *testing.T) {
	var method, path string
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		writeJSON(t, w, http.StatusOK, `{"success":true}`)
	}))
	signIn(t)

	apiErr := Client.MarkNotificationRead(context.Background(), 9)
	require.Nil(t, apiErr)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/v1/notification/read/9", path)

	apiErr = Client.DeleteNotification(context.Background(), 9)
	require.Nil(t, apiErr)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/v1/notification/delete/9", path)
}

func TestListNotifications(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"success":true,"data":[{"id":1,"title":"Meeting","isRead":false},{"id":2,"title":"Fine","isRead":true}]}`)
	}))
	signIn(t)

	notifications, apiErr := Client.ListNotifications(context.Background())
	require.Nil(t, apiErr)
	require.Len(t, notifications, 2)
	assert.False(t, notifications[0].IsRead)
	assert.True(t, notifications[1].IsRead)
}

func TestListNotificationsWithoutBusinessFlag(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// some endpoints omit the success flag; a 2xx without it is a
		// success judged by HTTP status alone
		writeJSON(t, w, http.StatusOK, `{"data":[{"id":1,"title":"Meeting","isRead":false}]}`)
	}))
	signIn(t)

	notifications, apiErr := Client.ListNotifications(context.Background())
	require.Nil(t, apiErr)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Meeting", notifications[0].Title)
}

func TestChangePasswordWithoutBusinessFlag(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"message":"Password updated"}`)
	}))
	signIn(t)

	message, apiErr := Client.ChangePassword(context.Background(), types.ChangePasswordRequest{
		OldPassword: "old", NewPassword: "new", ConfirmPassword: "new",
	})
	require.Nil(t, apiErr)
	assert.Equal(t, "Password updated", message)
}

func TestNetworkFailure(t *testing.T) {
	srv := useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	signIn(t)
	srv.Close()

	_, apiErr := Client.ListCitizenPosts(context.Background())
	require.NotNil(t, apiErr)
	assert.Equal(t, types.ApiErrorTypeNetwork, apiErr.Type)
}

func TestGetPost(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/post/one/3", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"success":true,"data":{"id":3,"title":"Umuganda","comments":[{"id":1,"comment":"I will attend","user":{"firstname":"Alice","lastname":"Uwase"}}]}}`)
	}))
	signIn(t)

	post, apiErr := Client.GetPost(context.Background(), 3)
	require.Nil(t, apiErr)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "I will attend", post.Comments[0].Comment)
}

func TestChangePassword(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/users/changePassword", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, `{"success":true,"message":"Password updated"}`)
	}))
	signIn(t)

	message, apiErr := Client.ChangePassword(context.Background(), types.ChangePasswordRequest{
		OldPassword: "old", NewPassword: "new", ConfirmPassword: "new",
	})
	require.Nil(t, apiErr)
	assert.Equal(t, "Password updated", message)
}

func TestListAddressTree(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/address", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "address list needs no credential")
		writeJSON(t, w, http.StatusOK, `{"success":true,"data":[{"id":1,"name":"Kigali City","districts":[{"id":11,"name":"Gasabo","sectors":[]}]}]}`)
	}))

	provinces, apiErr := Client.ListAddressTree(context.Background())
	require.Nil(t, apiErr)
	require.Len(t, provinces, 1)
	assert.Equal(t, "Kigali City", provinces[0].Name)
	require.Len(t, provinces[0].Districts, 1)
	assert.Equal(t, "Gasabo", provinces[0].Districts[0].Name)
}
