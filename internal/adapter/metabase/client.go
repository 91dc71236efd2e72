// Package metabase is the HTTP client for the remote BI service. Every call
// except Login takes a session token obtained from Login.
package metabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/chartboard-backend/internal/config"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const sessionHeader = "X-Metabase-Session"

// APIError is returned when the remote service answers with a non-2xx status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("metabase: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client talks to the Metabase REST API.
type Client struct {
	baseURL    string
	email      string
	password   string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// New creates a Client from configuration.
func New(cfg config.MetabaseConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		email:      cfg.Email,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "metabase"),
	}
}

// Login opens a session with the service-account credentials and returns
// its token.
func (c *Client) Login(ctx context.Context) (string, error) {
	body := map[string]string{"username": c.email, "password": c.password}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/session", "", body, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", errors.New("metabase: login returned an empty session id")
	}
	return resp.ID, nil
}

// Ping checks that the service is reachable and the credentials are valid.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Login(ctx)
	return err
}

// Collections lists the collections visible to the session.
func (c *Client) Collections(ctx context.Context, token string) ([]Collection, error) {
	raw, err := c.getRaw(ctx, "/api/collection", token)
	if err != nil {
		return nil, err
	}

	items := listItems(raw)
	out := make([]Collection, 0, len(items))
	for _, item := range items {
		col := Collection{Name: item.Get("name").String()}
		if id := item.Get("id"); id.Type == gjson.Number {
			n := int(id.Int())
			col.ID = &n
		}
		out = append(out, col)
	}
	return out, nil
}

// Databases lists the databases registered in the service.
func (c *Client) Databases(ctx context.Context, token string) ([]Database, error) {
	raw, err := c.getRaw(ctx, "/api/database", token)
	if err != nil {
		return nil, err
	}

	items := listItems(raw)
	out := make([]Database, 0, len(items))
	for _, item := range items {
		out = append(out, Database{
			ID:     int(item.Get("id").Int()),
			Name:   item.Get("name").String(),
			Engine: item.Get("engine").String(),
		})
	}
	return out, nil
}

// CreateCard creates a saved question.
func (c *Client) CreateCard(ctx context.Context, token string, req CardRequest) (Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodPost, "/api/card", token, req, &card); err != nil {
		return Card{}, err
	}
	if card.ID == 0 {
		return Card{}, errors.New("metabase: card created without an id")
	}
	return card, nil
}

// RunCard executes a card and returns its rows with column order preserved.
func (c *Client) RunCard(ctx context.Context, token string, cardID int) (domain.ResultSet, error) {
	path := "/api/card/" + strconv.Itoa(cardID) + "/query/json"

	raw, err := c.send(ctx, http.MethodPost, path, token, map[string]any{})
	if err != nil {
		return domain.ResultSet{}, err
	}
	return parseRows(raw)
}

// CreateDatabase registers a new database connection.
func (c *Client) CreateDatabase(ctx context.Context, token string, req DatabaseRequest) (Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodPost, "/api/database", token, req, &db); err != nil {
		return Database{}, err
	}
	return db, nil
}

// UpdateDatabase replaces the connection settings of database id.
func (c *Client) UpdateDatabase(ctx context.Context, token string, id int, req DatabaseRequest) (Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodPut, "/api/database/"+strconv.Itoa(id), token, req, &db); err != nil {
		return Database{}, err
	}
	if db.ID == 0 {
		db.ID = id
	}
	return db, nil
}

// DatabaseMetadata returns the tables and fields of database id.
func (c *Client) DatabaseMetadata(ctx context.Context, token string, id int) (Metadata, error) {
	var md Metadata
	raw, err := c.getRaw(ctx, "/api/database/"+strconv.Itoa(id)+"/metadata", token)
	if err != nil {
		return Metadata{}, err
	}
	if err := json.Unmarshal(raw, &md); err != nil {
		return Metadata{}, fmt.Errorf("metabase: decode metadata: %w", err)
	}
	return md, nil
}

// Table returns a single table with its fields.
func (c *Client) Table(ctx context.Context, token string, id int) (Table, error) {
	var t Table
	raw, err := c.getRaw(ctx, "/api/table/"+strconv.Itoa(id), token)
	if err != nil {
		return Table{}, err
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return Table{}, fmt.Errorf("metabase: decode table: %w", err)
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// transport
// ---------------------------------------------------------------------------

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	raw, err := c.send(ctx, method, path, token, in)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("metabase: decode %s %s: %w", method, path, err)
	}
	return nil
}

// getRaw performs a GET, retrying once on 5xx or network errors.
func (c *Client) getRaw(ctx context.Context, path, token string) ([]byte, error) {
	raw, err := c.send(ctx, http.MethodGet, path, token, nil)
	if err == nil || !retryable(err) || ctx.Err() != nil {
		return raw, err
	}

	c.log.WarnContext(ctx, "metabase retry", slog.String("path", path), slog.String("reason", err.Error()))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.send(ctx, http.MethodGet, path, token, nil)
}

func (c *Client) send(ctx context.Context, method, path, token string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("metabase: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("metabase: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(sessionHeader, token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metabase: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("metabase: read body: %w", err)
	}

	c.log.DebugContext(ctx, "metabase call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: errorMessage(raw)}
	}
	return raw, nil
}

func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}

// errorMessage extracts a readable message from an error body.
func errorMessage(raw []byte) string {
	if gjson.ValidBytes(raw) {
		for _, key := range []string{"message", "error_description", "error", "errors"} {
			if v := gjson.GetBytes(raw, key); v.Exists() {
				return v.String()
			}
		}
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}

// listItems accepts both a bare array and a {"data": [...]} envelope.
func listItems(raw []byte) []gjson.Result {
	res := gjson.ParseBytes(raw)
	if res.IsArray() {
		return res.Array()
	}
	return res.Get("data").Array()
}

// parseRows decodes an array of row objects, keeping the key order of the
// first row as the column order.
func parseRows(raw []byte) (domain.ResultSet, error) {
	if !gjson.ValidBytes(raw) {
		return domain.ResultSet{}, errors.New("metabase: card result is not valid JSON")
	}
	res := gjson.ParseBytes(raw)
	if !res.IsArray() {
		return domain.ResultSet{}, fmt.Errorf("metabase: card result is not an array: %s", errorMessage(raw))
	}

	rs := domain.ResultSet{Columns: []string{}, Rows: []map[string]any{}}
	seen := map[string]bool{}
	for _, item := range res.Array() {
		row := map[string]any{}
		item.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if !seen[name] {
				seen[name] = true
				rs.Columns = append(rs.Columns, name)
			}
			row[name] = value.Value()
			return true
		})
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}
