package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glintler/auth-gateway/internal/config"
	"github.com/glintler/auth-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{
		DirectoryBaseURL:    baseURL,
		DirectoryPublicKey:  "pub",
		DirectoryPrivateKey: "priv",
	})
}

func TestComputeSignature_Deterministic(t *testing.T) {
	a := ComputeSignature("pub", "priv")
	b := ComputeSignature("pub", "priv")
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, ComputeSignature("pub", "other"))
}

func TestListAccounts_SignedRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/userlist", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "pub", r.Header.Get("publickey"))
		assert.Equal(t, ComputeSignature("pub", "priv"), r.Header.Get("key"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		require.NoError(t, r.ParseForm())
		_, hasUserID := r.PostForm["userid"]
		assert.True(t, hasUserID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"admin_id":"7","admin_name":"Ada Lovelace","admin_email":"Ada@X.com","is_registered":true}]}`))
	}))
	defer srv.Close()

	accounts, err := newTestClient(srv.URL).ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "7", accounts[0].AccountID)
	assert.Equal(t, "Ada Lovelace", accounts[0].DisplayName)
	assert.Equal(t, "Ada@X.com", accounts[0].Email)
	assert.True(t, accounts[0].Registered)
}

func TestListAccounts_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv.URL).ListAccounts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryUnavailable))
}

func TestListAccounts_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListAccounts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryProtocol))
}

func TestListAccounts_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListAccounts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryProtocol))
}

func TestProvisionAccount_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ProvisionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "new@x.com", req.Email)
		assert.Equal(t, "New User", req.Name)
		assert.NotEmpty(t, req.Password)
		assert.True(t, req.GoogleSignup)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"admin_id":"99","admin_name":"New User","admin_email":"new@x.com"}}`))
	}))
	defer srv.Close()

	acct, err := newTestClient(srv.URL).ProvisionAccount(context.Background(), ProvisionRequest{
		Email:        "new@x.com",
		Name:         "New User",
		Password:     "p",
		FirstName:    "New",
		LastName:     "User",
		GoogleSignup: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "99", acct.AccountID)
}

func TestProvisionAccount_DataShapeWithBareID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"12","admin_email":"new@x.com"}}`))
	}))
	defer srv.Close()

	acct, err := newTestClient(srv.URL).ProvisionAccount(context.Background(), ProvisionRequest{Email: "new@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "12", acct.AccountID)
}

func TestProvisionAccount_DirectoryRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"duplicate email"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ProvisionAccount(context.Background(), ProvisionRequest{Email: "new@x.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProvisioningFailed))
}

func TestProvisionAccount_MissingAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ProvisionAccount(context.Background(), ProvisionRequest{Email: "new@x.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryProtocol))
}
