package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/glintler/auth-gateway/internal/config"
	"github.com/glintler/auth-gateway/internal/domain"
	"github.com/glintler/auth-gateway/internal/pkg/id"
)

// Client talks to the external account directory. Every request carries the
// shared public key and a keyed hash derived from it; the private key never
// leaves the process. The directory offers no targeted lookup, so callers
// list accounts and scan.
type Client struct {
	baseURL    string
	publicKey  string
	privateKey string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.DirectoryBaseURL, "/"),
		publicKey:  cfg.DirectoryPublicKey,
		privateKey: cfg.DirectoryPrivateKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ProvisionRequest carries the fields the directory's signup endpoint
// requires. Fields this gateway has no value for are sent empty.
type ProvisionRequest struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Password          string `json:"password"`
	FirstName         string `json:"f_name"`
	LastName          string `json:"l_name"`
	Phone             string `json:"phone"`
	CompanyName       string `json:"company_name"`
	BusinessCardTitle string `json:"business_card_title"`
	FirmDescription   string `json:"firm_description"`
	Country           string `json:"country"`
	Message           string `json:"message"`
	Subscription      int    `json:"subscription"`
	GoogleSignup      bool   `json:"google_signup"`
}

// wireAccount is the directory's account shape. Lookup responses use the
// admin_* field names; provisioning responses have been observed with both
// admin_id and a bare id.
type wireAccount struct {
	AdminID    string `json:"admin_id"`
	ID         string `json:"id"`
	AdminName  string `json:"admin_name"`
	AdminEmail string `json:"admin_email"`
	Registered bool   `json:"is_registered"`
}

func (w wireAccount) toDomain() domain.Account {
	accountID := w.AdminID
	if accountID == "" {
		accountID = w.ID
	}
	return domain.Account{
		AccountID:   accountID,
		DisplayName: w.AdminName,
		Email:       w.AdminEmail,
		Registered:  w.Registered,
	}
}

type listResponse struct {
	Data []wireAccount `json:"data"`
}

type provisionResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *wireAccount `json:"user"`
	Data    *wireAccount `json:"data"`
}

// ListAccounts fetches the directory's full account listing over the signed
// lookup endpoint.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	form := url.Values{"userid": {""}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/userlist", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("publickey", c.publicKey)
	req.Header.Set("key", ComputeSignature(c.publicKey, c.privateKey))
	req.Header.Set("X-Request-Id", id.New())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory userlist: %v: %w", err, domain.ErrDirectoryUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory userlist returned %d: %w", resp.StatusCode, domain.ErrDirectoryProtocol)
	}
	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode userlist response: %w", domain.ErrDirectoryProtocol)
	}
	accounts := make([]domain.Account, 0, len(out.Data))
	for _, w := range out.Data {
		accounts = append(accounts, w.toDomain())
	}
	return accounts, nil
}

// ProvisionAccount creates a directory account for a new identity and
// returns it. A directory-reported rejection is a provisioning failure, not
// a protocol error.
func (c *Client) ProvisionAccount(ctx context.Context, p ProvisionRequest) (*domain.Account, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/signup", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", id.New())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory signup: %v: %w", err, domain.ErrDirectoryUnavailable)
	}
	defer resp.Body.Close()

	var out provisionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode signup response: %w", domain.ErrDirectoryProtocol)
	}
	if !out.Success {
		return nil, fmt.Errorf("directory rejected signup: %s: %w", out.Message, domain.ErrProvisioningFailed)
	}
	wire := out.User
	if wire == nil {
		wire = out.Data
	}
	if wire == nil {
		return nil, fmt.Errorf("signup response carries no account: %w", domain.ErrDirectoryProtocol)
	}
	acct := wire.toDomain()
	if acct.AccountID == "" {
		return nil, fmt.Errorf("signup response carries no account id: %w", domain.ErrDirectoryProtocol)
	}
	return &acct, nil
}
