package auth

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"inteko-cli/fs"
	"inteko-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempAuthPath(t *testing.T) {
	t.Helper()

	prev := fs.HomeAuthPath
	fs.HomeAuthPath = filepath.Join(t.TempDir(), "auth.json")

	prevCurrent := Current
	Current = nil

	prevSubscribers := subscribers
	subscribers = nil

	t.Cleanup(func() {
		fs.HomeAuthPath = prev
		Current = prevCurrent
		subscribers = prevSubscribers
	})
}

func testSession() *types.ClientAuth {
	return &types.ClientAuth{
		Token: "test-token",
		User: &types.User{
			Id:        7,
			Firstname: "Alice",
			Lastname:  "Uwase",
			Email:     "alice@example.com",
			Phone:     "0781234567",
		},
	}
}

func TestLoadAuthAbsent(t *testing.T) {
	useTempAuthPath(t)

	auth, err := loadAuth()
	require.NoError(t, err)
	assert.Nil(t, auth, "missing auth.json must mean not authenticated, not an error")
}

func TestSetAndLoadAuth(t *testing.T) {
	useTempAuthPath(t)

	require.NoError(t, setAuth(testSession()))

	loaded, err := loadAuth()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "test-token", loaded.Token)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "alice@example.com", loaded.User.Email)
}

func TestLoadAuthCorrupt(t *testing.T) {
	useTempAuthPath(t)

	require.NoError(t, os.WriteFile(fs.HomeAuthPath, []byte("{not json"), 0600))

	_, err := loadAuth()
	assert.Error(t, err)
}

func TestClearAuth(t *testing.T) {
	useTempAuthPath(t)

	require.NoError(t, setAuth(testSession()))
	require.NoError(t, ClearAuth())

	assert.Nil(t, Current)

	// token and profile live in one file: after clear, a load observes
	// neither
	loaded, err := loadAuth()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestClearAuthWhenAbsent(t *testing.T) {
	useTempAuthPath(t)

	assert.NoError(t, ClearAuth())
}

func TestSetAuthHeader(t *testing.T) {
	useTempAuthPath(t)

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)

	err = SetAuthHeader(req)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, req.Header.Get("Authorization"))

	require.NoError(t, setAuth(testSession()))

	require.NoError(t, SetAuthHeader(req))
	assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
}

func TestSubscribers(t *testing.T) {
	useTempAuthPath(t)

	var observed []*types.ClientAuth
	Subscribe(func(auth *types.ClientAuth) {
		observed = append(observed, auth)
	})

	require.NoError(t, setAuth(testSession()))
	require.NoError(t, ClearAuth())

	require.Len(t, observed, 2)
	assert.NotNil(t, observed[0])
	assert.Nil(t, observed[1], "clearing must notify subscribers with a nil session")
}
